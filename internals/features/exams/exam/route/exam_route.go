package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengawasku_backend/internals/constants"
	"pengawasku_backend/internals/features/exams/exam/controller"
	auth "pengawasku_backend/internals/middlewares/auth"
)

// ExamRoutes mounts the exam catalog endpoints under the given group.
func ExamRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamController(db)

	exams := api.Group("/exams")

	exams.Get("/", ctrl.ListExams)
	exams.Get("/:id", ctrl.GetExam)

	admin := exams.Group("/", auth.RequireRoles(constants.RoleAdmin))
	admin.Post("/", ctrl.CreateExam)
	admin.Post("/import", ctrl.ImportExams)
	admin.Put("/:id", ctrl.UpdateExam)
	admin.Delete("/:id", ctrl.DeleteExam)

	staff := exams.Group("/", auth.RequireRoles(constants.RoleAdmin, constants.RoleSupervisor))
	staff.Patch("/:id/addTime", ctrl.AddExamTime)
	staff.Patch("/:id/callLecturer", ctrl.CallLecturer)
	staff.Delete("/:id/callLecturer", ctrl.ClearCalledLecturer)
	staff.Patch("/:id", ctrl.FinishExam)
}
