package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengawasku_backend/internals/configs"
	"pengawasku_backend/internals/features/exams/exam/dto"
	"pengawasku_backend/internals/features/exams/resolver/service"
	helper "pengawasku_backend/internals/helpers"
)

type ResolverController struct {
	Resolver *service.Resolver
}

func NewResolverController(db *gorm.DB) *ResolverController {
	return &ResolverController{
		Resolver: service.NewResolver(service.NewGormExamSource(db), configs.ExamTimezone),
	}
}

/* ===================== CLOSEST ===================== */
// GET /api/exams/closest?supervisorId=
// Falls back to the authenticated user when the query param is absent.
func (ctrl *ResolverController) ClosestExam(c *fiber.Ctx) error {
	raw := c.Query("supervisorId")
	if raw == "" {
		raw, _ = c.Locals("user_id").(string)
	}
	supervisorID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or missing supervisorId")
	}

	exam, err := ctrl.Resolver.ResolveForSupervisor(supervisorID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if exam == nil {
		return helper.Success(c, "No relevant exam right now", nil)
	}
	return helper.Success(c, "OK", dto.NewExamResponse(*exam))
}
