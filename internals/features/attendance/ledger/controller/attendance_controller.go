package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengawasku_backend/internals/features/attendance/ledger/dto"
	"pengawasku_backend/internals/features/attendance/ledger/service"
	auditsvc "pengawasku_backend/internals/features/audit/service"
	examdto "pengawasku_backend/internals/features/exams/exam/dto"
	helper "pengawasku_backend/internals/helpers"
)

type AttendanceController struct {
	DB     *gorm.DB
	Ledger *service.Ledger
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Ledger: service.NewLedger(db)}
}

var validate = validator.New()

/* ===================== ACTIVATE ===================== */
// POST /api/exams/activate
func (ctrl *AttendanceController) ActivateExam(c *fiber.Ctx) error {
	var req dto.ActivateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	exam, records, err := ctrl.Ledger.Activate(req.ExamID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamActivated,
		fiber.Map{"exam_id": req.ExamID, "records": len(records)})
	return helper.Success(c, "Exam activated", fiber.Map{
		"exam":               examdto.NewExamResponse(exam),
		"attendance_records": dto.NewAttendanceResponses(records),
	})
}

/* ===================== STATUS ===================== */
// PATCH /api/attendance/:id/status
func (ctrl *AttendanceController) SetStatus(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var req dto.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	rec, err := ctrl.Ledger.SetStatus(attendanceID, req.Status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionStatusChanged,
		fiber.Map{"attendance_id": attendanceID, "status": req.Status})
	return helper.Success(c, "Attendance status updated", dto.NewAttendanceResponse(rec))
}

/* ===================== TOILET ===================== */
// PATCH /api/attendance/:id/toilet
func (ctrl *AttendanceController) ToggleToilet(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	actorID, _ := helper.GetActorID(c, nil)

	rec, err := ctrl.Ledger.ToggleToilet(attendanceID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionToiletToggled,
		fiber.Map{"attendance_id": attendanceID, "on_toilet": rec.AttendanceIsOnToilet})
	return helper.Success(c, "Toilet flag toggled", dto.NewAttendanceResponse(rec))
}

/* ===================== EXTRA TIME ===================== */
// PATCH /api/attendance/:id/addTime
func (ctrl *AttendanceController) AddExtraTime(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var req dto.AddExtraTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	rec, err := ctrl.Ledger.AddExtraTime(attendanceID, req.MinutesToAdd)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExtraTimeAdded,
		fiber.Map{"attendance_id": attendanceID, "minutes": req.MinutesToAdd})
	return helper.Success(c, "Extra time added", dto.NewAttendanceResponse(rec))
}

/* ===================== READ ===================== */
// GET /api/exams/:id/attendance
func (ctrl *AttendanceController) ListByExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	records, err := ctrl.Ledger.ListByExam(examID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewAttendanceResponses(records))
}
