package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "pengawasku_backend/internals/features/attendance/ledger/model"
	exammodel "pengawasku_backend/internals/features/exams/exam/model"
	helper "pengawasku_backend/internals/helpers"
)

// Coordinator moves a student's live attendance between two active exams.
// The freeze of the source and the creation of the destination record are
// one transaction: the student is never in neither exam nor in both.
type Coordinator struct {
	DB *gorm.DB
}

func NewCoordinator(db *gorm.DB) *Coordinator {
	return &Coordinator{DB: db}
}

func (t *Coordinator) Transfer(attendanceID, targetExamID uuid.UUID) (m.AttendanceModel, error) {
	var newRec m.AttendanceModel

	err := t.DB.Transaction(func(tx *gorm.DB) error {
		var src m.AttendanceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&src, "attendance_id = ?", attendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
			}
			return err
		}
		if src.AttendanceStatus == m.StatusTransferred {
			return fiber.NewError(fiber.StatusConflict, "Attendance record was already transferred")
		}
		if src.AttendanceExamID == targetExamID {
			return fiber.NewError(fiber.StatusBadRequest, "Student is already in the target exam")
		}

		// Lock the target exam row: serializes seat numbering against
		// concurrent transfers into the same exam.
		var target exammodel.ExamModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "exam_id = ?", targetExamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Target exam not found")
			}
			return err
		}
		if target.ExamStatus != exammodel.StatusActive {
			return fiber.NewError(fiber.StatusConflict, "Target exam is not active")
		}

		// Seat numbers are append-only per exam: retired (transferred-out)
		// records still count, so numbers are never reused.
		var count int64
		if err := tx.Model(&m.AttendanceModel{}).
			Where("attendance_exam_id = ?", targetExamID).
			Count(&count).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&m.AttendanceModel{}).
			Where("attendance_id = ?", src.AttendanceID).
			Updates(map[string]interface{}{
				"attendance_status":                 m.StatusTransferred,
				"attendance_is_on_toilet":           false,
				"attendance_transferred_at":         now,
				"attendance_transferred_to_exam_id": targetExamID,
			}).Error; err != nil {
			return err
		}

		newRec = m.AttendanceModel{
			AttendanceExamID:                      targetExamID,
			AttendanceStudentID:                   src.AttendanceStudentID,
			AttendanceStudentNumInExam:            int(count) + 1,
			AttendanceStatus:                      m.StatusAbsent,
			AttendanceTransferredFromAttendanceID: &src.AttendanceID,
		}
		if err := tx.Create(&newRec).Error; err != nil {
			if helper.IsConflictViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Student already has a live record in the target exam")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return newRec, err
	}
	return newRec, nil
}
