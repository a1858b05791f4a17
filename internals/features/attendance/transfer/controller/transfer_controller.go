package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengawasku_backend/internals/features/attendance/ledger/dto"
	"pengawasku_backend/internals/features/attendance/transfer/service"
	auditsvc "pengawasku_backend/internals/features/audit/service"
	helper "pengawasku_backend/internals/helpers"
)

type TransferController struct {
	DB          *gorm.DB
	Coordinator *service.Coordinator
}

func NewTransferController(db *gorm.DB) *TransferController {
	return &TransferController{DB: db, Coordinator: service.NewCoordinator(db)}
}

var validate = validator.New()

/* ===================== TRANSFER ===================== */
// POST /api/attendance/transfer
func (ctrl *TransferController) Transfer(c *fiber.Ctx) error {
	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	newRec, err := ctrl.Coordinator.Transfer(req.AttendanceID, req.TargetExamID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionStudentTransfer, fiber.Map{
		"source_attendance_id": req.AttendanceID,
		"target_exam_id":       req.TargetExamID,
		"new_attendance_id":    newRec.AttendanceID,
	})
	return helper.Success(c, "Student transferred", dto.NewAttendanceResponse(newRec))
}
