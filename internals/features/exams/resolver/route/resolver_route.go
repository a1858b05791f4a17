package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengawasku_backend/internals/features/exams/resolver/controller"
)

// ResolverRoutes mounts the closest-exam query. Must be registered before
// the exam catalog routes so "closest" is not swallowed by "/exams/:id".
func ResolverRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResolverController(db)
	api.Get("/exams/closest", ctrl.ClosestExam)
}
