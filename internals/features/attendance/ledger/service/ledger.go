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
	examsvc "pengawasku_backend/internals/features/exams/exam/service"
	helper "pengawasku_backend/internals/helpers"
)

// Ledger owns attendance records: batch creation at activation, status
// changes, toilet exclusivity and per-student extra time.
type Ledger struct {
	DB *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

/* ===================== ACTIVATE ===================== */

// Activate materializes the attendance rows for an exam and moves it to
// active, stamping the actual start time exactly once. Idempotent: if rows
// already exist they are returned unchanged, so a double-activation race
// cannot produce 2N records.
func (l *Ledger) Activate(examID uuid.UUID) (exammodel.ExamModel, []m.AttendanceModel, error) {
	var exam exammodel.ExamModel
	var records []m.AttendanceModel

	err := l.DB.Transaction(func(tx *gorm.DB) error {
		// Row lock on the exam serializes concurrent activations.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&exam, "exam_id = ?", examID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Exam not found")
			}
			return err
		}

		if err := tx.
			Where("attendance_exam_id = ?", examID).
			Order("attendance_student_num_in_exam ASC").
			Find(&records).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			// Already activated; return the existing batch unchanged.
			return nil
		}

		next, changed, err := examsvc.NextStatus(exam.ExamStatus, examsvc.EventActivate)
		if err != nil {
			return err
		}

		var roster []exammodel.ExamStudentModel
		if err := tx.
			Where("exam_student_exam_id = ?", examID).
			Order("exam_student_position ASC").
			Find(&roster).Error; err != nil {
			return err
		}

		for i, rs := range roster {
			rec := m.AttendanceModel{
				AttendanceExamID:           examID,
				AttendanceStudentID:        rs.ExamStudentUserID,
				AttendanceStudentNumInExam: i + 1,
				AttendanceStatus:           m.StatusAbsent,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			records = append(records, rec)
		}

		if changed {
			updates := map[string]interface{}{"exam_status": next}
			if exam.ExamActualStartTime == nil {
				now := time.Now()
				updates["exam_actual_start_time"] = now
				exam.ExamActualStartTime = &now
			}
			if err := tx.Model(&exammodel.ExamModel{}).
				Where("exam_id = ?", examID).
				Updates(updates).Error; err != nil {
				return err
			}
			exam.ExamStatus = next
		}
		return nil
	})
	if err != nil {
		return exam, nil, err
	}
	return exam, records, nil
}

/* ===================== STATUS ===================== */

func (l *Ledger) SetStatus(attendanceID uuid.UUID, newStatus string) (m.AttendanceModel, error) {
	var rec m.AttendanceModel
	if err := l.DB.First(&rec, "attendance_id = ?", attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return rec, err
	}

	if err := ApplyStatus(&rec, newStatus, time.Now()); err != nil {
		return rec, err
	}

	if err := l.DB.Model(&m.AttendanceModel{}).
		Where("attendance_id = ?", attendanceID).
		Updates(map[string]interface{}{
			"attendance_status":       rec.AttendanceStatus,
			"attendance_start_time":   rec.AttendanceStartTime,
			"attendance_end_time":     rec.AttendanceEndTime,
			"attendance_is_on_toilet": rec.AttendanceIsOnToilet,
		}).Error; err != nil {
		return rec, err
	}
	return rec, nil
}

/* ===================== TOILET ===================== */

// ToggleToilet flips the toilet flag. Going out is one conditional UPDATE
// that only succeeds while no sibling record in the same exam is out, so
// two students can never be on toilet at once; losing the race yields 409.
func (l *Ledger) ToggleToilet(attendanceID uuid.UUID) (m.AttendanceModel, error) {
	var rec m.AttendanceModel
	if err := l.DB.First(&rec, "attendance_id = ?", attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return rec, err
	}

	if rec.AttendanceIsOnToilet {
		// Coming back is unconditional.
		if err := l.DB.Model(&m.AttendanceModel{}).
			Where("attendance_id = ?", attendanceID).
			Update("attendance_is_on_toilet", false).Error; err != nil {
			return rec, err
		}
		rec.AttendanceIsOnToilet = false
		return rec, nil
	}

	if rec.AttendanceStatus != m.StatusPresent {
		return rec, fiber.NewError(fiber.StatusBadRequest, "Only a present student can go to the toilet")
	}

	res := l.DB.Exec(`
		UPDATE attendances
		   SET attendance_is_on_toilet = TRUE, attendance_updated_at = now()
		 WHERE attendance_id = ?
		   AND NOT attendance_is_on_toilet
		   AND NOT EXISTS (
		       SELECT 1 FROM attendances s
		        WHERE s.attendance_exam_id = ?
		          AND s.attendance_is_on_toilet
		   )`, attendanceID, rec.AttendanceExamID)
	if res.Error != nil {
		if helper.IsConflictViolation(res.Error) {
			return rec, fiber.NewError(fiber.StatusConflict, "Toilet is occupied by another student")
		}
		return rec, res.Error
	}
	if res.RowsAffected == 0 {
		return rec, fiber.NewError(fiber.StatusConflict, "Toilet is occupied by another student")
	}
	rec.AttendanceIsOnToilet = true
	return rec, nil
}

/* ===================== EXTRA TIME ===================== */

// AddExtraTime accumulates per-student extra minutes with an atomic SQL
// increment; two concurrent grants both land.
func (l *Ledger) AddExtraTime(attendanceID uuid.UUID, minutes int) (m.AttendanceModel, error) {
	var rec m.AttendanceModel
	if minutes <= 0 {
		return rec, fiber.NewError(fiber.StatusBadRequest, "minutes_to_add must be a positive integer")
	}

	res := l.DB.Model(&m.AttendanceModel{}).
		Where("attendance_id = ?", attendanceID).
		Update("attendance_extra_time_minutes", gorm.Expr("attendance_extra_time_minutes + ?", minutes))
	if res.Error != nil {
		return rec, res.Error
	}
	if res.RowsAffected == 0 {
		return rec, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
	}

	if err := l.DB.First(&rec, "attendance_id = ?", attendanceID).Error; err != nil {
		return rec, err
	}
	return rec, nil
}

/* ===================== READ ===================== */

func (l *Ledger) ListByExam(examID uuid.UUID) ([]m.AttendanceModel, error) {
	var records []m.AttendanceModel
	err := l.DB.
		Where("attendance_exam_id = ?", examID).
		Order("attendance_student_num_in_exam ASC").
		Find(&records).Error
	return records, err
}
