package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengawasku_backend/internals/constants"
	ledgercontroller "pengawasku_backend/internals/features/attendance/ledger/controller"
	transfercontroller "pengawasku_backend/internals/features/attendance/transfer/controller"
	auth "pengawasku_backend/internals/middlewares/auth"
)

// AttendanceRoutes mounts the ledger and transfer endpoints.
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ledger := ledgercontroller.NewAttendanceController(db)
	transfer := transfercontroller.NewTransferController(db)

	staff := auth.RequireRoles(constants.RoleAdmin, constants.RoleSupervisor)

	api.Post("/exams/activate", staff, ledger.ActivateExam)
	api.Get("/exams/:id/attendance", ledger.ListByExam)

	att := api.Group("/attendance", staff)
	att.Post("/transfer", transfer.Transfer)
	att.Patch("/:id/status", ledger.SetStatus)
	att.Patch("/:id/toilet", ledger.ToggleToilet)
	att.Patch("/:id/addTime", ledger.AddExtraTime)
}
