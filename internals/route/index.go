package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceroute "pengawasku_backend/internals/features/attendance/ledger/route"
	examroute "pengawasku_backend/internals/features/exams/exam/route"
	resolverroute "pengawasku_backend/internals/features/exams/resolver/route"
	auth "pengawasku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything under /api behind the auth middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api", auth.AuthMiddleware())

	// Order matters: /exams/closest and /exams/activate must be registered
	// before the catalog's /exams/:id routes.
	resolverroute.ResolverRoutes(api, db)
	attendanceroute.AttendanceRoutes(api, db)
	examroute.ExamRoutes(api, db)
}
