package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses.
const (
	StatusAbsent      = "absent"
	StatusPresent     = "present"
	StatusFinished    = "finished"
	StatusTransferred = "transferred"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceExamID    uuid.UUID `gorm:"type:uuid;not null;column:attendance_exam_id" json:"attendance_exam_id"`
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_id" json:"attendance_student_id"`

	// 1-based seat/roll number, assigned at creation, never reused within
	// an exam (append-only even across transfers out).
	AttendanceStudentNumInExam int `gorm:"not null;column:attendance_student_num_in_exam" json:"attendance_student_num_in_exam"`

	AttendanceStatus string `gorm:"size:20;not null;default:'absent';column:attendance_status" json:"attendance_status"`

	AttendanceStartTime *time.Time `gorm:"column:attendance_start_time" json:"attendance_start_time,omitempty"`
	AttendanceEndTime   *time.Time `gorm:"column:attendance_end_time" json:"attendance_end_time,omitempty"`

	AttendanceIsOnToilet       bool `gorm:"not null;default:false;column:attendance_is_on_toilet" json:"attendance_is_on_toilet"`
	AttendanceExtraTimeMinutes int  `gorm:"not null;default:0;column:attendance_extra_time_minutes" json:"attendance_extra_time_minutes"`

	// Transfer linkage: the frozen source points forward to the target
	// exam, the fresh destination record points back at its source.
	AttendanceTransferredAt                *time.Time `gorm:"column:attendance_transferred_at" json:"attendance_transferred_at,omitempty"`
	AttendanceTransferredToExamID          *uuid.UUID `gorm:"type:uuid;column:attendance_transferred_to_exam_id" json:"attendance_transferred_to_exam_id,omitempty"`
	AttendanceTransferredFromAttendanceID  *uuid.UUID `gorm:"type:uuid;column:attendance_transferred_from_attendance_id" json:"attendance_transferred_from_attendance_id,omitempty"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
