package dto

import (
	"time"

	"github.com/google/uuid"

	m "pengawasku_backend/internals/features/attendance/ledger/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type ActivateExamRequest struct {
	ExamID  uuid.UUID  `json:"exam_id" validate:"required"`
	ActorID *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

type SetStatusRequest struct {
	Status  string     `json:"status" validate:"required,oneof=absent present finished"`
	ActorID *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

type AddExtraTimeRequest struct {
	MinutesToAdd int        `json:"minutes_to_add" validate:"required,min=1"`
	ActorID      *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

type TransferRequest struct {
	AttendanceID uuid.UUID  `json:"attendance_id" validate:"required"`
	TargetExamID uuid.UUID  `json:"target_exam_id" validate:"required"`
	ActorID      *uuid.UUID `json:"actor_id" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AttendanceResponse struct {
	AttendanceID               uuid.UUID `json:"attendance_id"`
	AttendanceExamID           uuid.UUID `json:"attendance_exam_id"`
	AttendanceStudentID        uuid.UUID `json:"attendance_student_id"`
	AttendanceStudentNumInExam int       `json:"attendance_student_num_in_exam"`
	AttendanceStatus           string    `json:"attendance_status"`

	AttendanceStartTime *time.Time `json:"attendance_start_time,omitempty"`
	AttendanceEndTime   *time.Time `json:"attendance_end_time,omitempty"`

	AttendanceIsOnToilet       bool `json:"attendance_is_on_toilet"`
	AttendanceExtraTimeMinutes int  `json:"attendance_extra_time_minutes"`

	AttendanceTransferredAt               *time.Time `json:"attendance_transferred_at,omitempty"`
	AttendanceTransferredToExamID         *uuid.UUID `json:"attendance_transferred_to_exam_id,omitempty"`
	AttendanceTransferredFromAttendanceID *uuid.UUID `json:"attendance_transferred_from_attendance_id,omitempty"`

	AttendanceCreatedAt time.Time  `json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `json:"attendance_updated_at,omitempty"`
}

func NewAttendanceResponse(mdl m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:                          mdl.AttendanceID,
		AttendanceExamID:                      mdl.AttendanceExamID,
		AttendanceStudentID:                   mdl.AttendanceStudentID,
		AttendanceStudentNumInExam:            mdl.AttendanceStudentNumInExam,
		AttendanceStatus:                      mdl.AttendanceStatus,
		AttendanceStartTime:                   mdl.AttendanceStartTime,
		AttendanceEndTime:                     mdl.AttendanceEndTime,
		AttendanceIsOnToilet:                  mdl.AttendanceIsOnToilet,
		AttendanceExtraTimeMinutes:            mdl.AttendanceExtraTimeMinutes,
		AttendanceTransferredAt:               mdl.AttendanceTransferredAt,
		AttendanceTransferredToExamID:         mdl.AttendanceTransferredToExamID,
		AttendanceTransferredFromAttendanceID: mdl.AttendanceTransferredFromAttendanceID,
		AttendanceCreatedAt:                   mdl.AttendanceCreatedAt,
		AttendanceUpdatedAt:                   mdl.AttendanceUpdatedAt,
	}
}

func NewAttendanceResponses(models []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewAttendanceResponse(mdl))
	}
	return out
}
