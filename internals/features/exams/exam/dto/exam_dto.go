package dto

import (
	"time"

	"github.com/google/uuid"

	m "pengawasku_backend/internals/features/exams/exam/model"
	helper "pengawasku_backend/internals/helpers"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create / Update (JSON). Staff and students are national ID numbers,
// resolved through the identity directory.
type CreateExamRequest struct {
	ExamCourseName string `json:"exam_course_name" validate:"required,max=200"`
	ExamCourseCode int    `json:"exam_course_code" validate:"required,min=1"`

	ExamDate      string `json:"exam_date"       validate:"required"` // YYYY-MM-DD
	ExamStartTime string `json:"exam_start_time" validate:"required"` // HH:MM
	ExamEndTime   string `json:"exam_end_time"   validate:"required"` // HH:MM

	ExamLocation string  `json:"exam_location" validate:"required,max=120"`
	ExamRules    *string `json:"exam_rules"    validate:"omitempty,max=5000"`

	SupervisorNationalIDs []string `json:"supervisor_ids" validate:"required,min=1,dive,required"`
	LecturerNationalIDs   []string `json:"lecturer_ids"   validate:"omitempty,dive,required"`
	StudentNationalIDs    []string `json:"student_ids"    validate:"omitempty,dive,required"`

	ActorID *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

type FinishExamRequest struct {
	ActorID *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

type AddExamTimeRequest struct {
	MinutesToAdd int        `json:"minutes_to_add" validate:"required,min=1"`
	ActorID      *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

type CallLecturerRequest struct {
	LecturerNationalID string     `json:"lecturer_id" validate:"required"`
	ActorID            *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ExamResponse struct {
	ExamID uuid.UUID `json:"exam_id"`

	ExamCourseName string `json:"exam_course_name"`
	ExamCourseCode int    `json:"exam_course_code"`

	ExamDate      string `json:"exam_date"`
	ExamStartTime string `json:"exam_start_time"`
	ExamEndTime   string `json:"exam_end_time"`

	ExamLocation        string  `json:"exam_location"`
	ExamDurationMinutes int     `json:"exam_duration_minutes"`
	ExamRules           *string `json:"exam_rules,omitempty"`

	ExamStatus          string     `json:"exam_status"`
	ExamActualStartTime *time.Time `json:"exam_actual_start_time,omitempty"`

	ExamCalledLecturerID *uuid.UUID `json:"exam_called_lecturer_id,omitempty"`
	ExamCalledLecturerAt *time.Time `json:"exam_called_lecturer_at,omitempty"`

	ExamCreatedAt time.Time  `json:"exam_created_at"`
	ExamUpdatedAt *time.Time `json:"exam_updated_at,omitempty"`
}

func NewExamResponse(mdl m.ExamModel) ExamResponse {
	return ExamResponse{
		ExamID:               mdl.ExamID,
		ExamCourseName:       mdl.ExamCourseName,
		ExamCourseCode:       mdl.ExamCourseCode,
		ExamDate:             mdl.ExamDate.Format("2006-01-02"),
		ExamStartTime:        helper.FormatClock(mdl.ExamStartMinutes),
		ExamEndTime:          helper.FormatClock(mdl.ExamEndMinutes),
		ExamLocation:         mdl.ExamLocation,
		ExamDurationMinutes:  mdl.ExamDurationMinutes,
		ExamRules:            mdl.ExamRules,
		ExamStatus:           mdl.ExamStatus,
		ExamActualStartTime:  mdl.ExamActualStartTime,
		ExamCalledLecturerID: mdl.ExamCalledLecturerID,
		ExamCalledLecturerAt: mdl.ExamCalledLecturerAt,
		ExamCreatedAt:        mdl.ExamCreatedAt,
		ExamUpdatedAt:        mdl.ExamUpdatedAt,
	}
}
