package model

import (
	"time"

	"github.com/google/uuid"
)

// Exam statuses. Monotonic: scheduled → active → finished, no cycle.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusFinished  = "finished"
)

type ExamModel struct {
	ExamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`

	ExamCourseName string `gorm:"size:200;not null;column:exam_course_name" json:"exam_course_name"`
	ExamCourseCode int    `gorm:"not null;column:exam_course_code" json:"exam_course_code"`

	// Wall-clock civil day plus start/end as minutes since midnight.
	// Interpreted only in the fixed reference timezone.
	ExamDate         time.Time `gorm:"type:date;not null;column:exam_date" json:"exam_date"`
	ExamStartMinutes int       `gorm:"not null;column:exam_start_minutes" json:"exam_start_minutes"`
	ExamEndMinutes   int       `gorm:"not null;column:exam_end_minutes" json:"exam_end_minutes"`

	ExamLocation string `gorm:"size:120;not null;column:exam_location" json:"exam_location"`

	// Computed from end-start at creation; independently mutable afterwards
	// via the exam-level time extension. Never recomputed.
	ExamDurationMinutes int `gorm:"not null;column:exam_duration_minutes" json:"exam_duration_minutes"`

	ExamRules *string `gorm:"column:exam_rules" json:"exam_rules,omitempty"`

	ExamStatus string `gorm:"size:20;not null;default:'scheduled';column:exam_status" json:"exam_status"`

	// Set exactly once on the scheduled→active transition.
	ExamActualStartTime *time.Time `gorm:"column:exam_actual_start_time" json:"exam_actual_start_time,omitempty"`

	// Transient "please come to the room" flag; no history kept.
	ExamCalledLecturerID *uuid.UUID `gorm:"type:uuid;column:exam_called_lecturer_id" json:"exam_called_lecturer_id,omitempty"`
	ExamCalledLecturerAt *time.Time `gorm:"column:exam_called_lecturer_at" json:"exam_called_lecturer_at,omitempty"`

	ExamCreatedAt time.Time  `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt *time.Time `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }
