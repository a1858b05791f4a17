package model

import "github.com/google/uuid"

type ExamSupervisorModel struct {
	ExamSupervisorID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_supervisor_id" json:"exam_supervisor_id"`
	ExamSupervisorExamID uuid.UUID `gorm:"type:uuid;not null;column:exam_supervisor_exam_id" json:"exam_supervisor_exam_id"`
	ExamSupervisorUserID uuid.UUID `gorm:"type:uuid;not null;column:exam_supervisor_user_id" json:"exam_supervisor_user_id"`
}

func (ExamSupervisorModel) TableName() string { return "exam_supervisors" }

type ExamLecturerModel struct {
	ExamLecturerID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_lecturer_id" json:"exam_lecturer_id"`
	ExamLecturerExamID uuid.UUID `gorm:"type:uuid;not null;column:exam_lecturer_exam_id" json:"exam_lecturer_exam_id"`
	ExamLecturerUserID uuid.UUID `gorm:"type:uuid;not null;column:exam_lecturer_user_id" json:"exam_lecturer_user_id"`
}

func (ExamLecturerModel) TableName() string { return "exam_lecturers" }

// ExamStudentModel keeps the roster position: attendance seat numbers are
// assigned 1..N in this order at activation.
type ExamStudentModel struct {
	ExamStudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_student_id" json:"exam_student_id"`
	ExamStudentExamID   uuid.UUID `gorm:"type:uuid;not null;column:exam_student_exam_id" json:"exam_student_exam_id"`
	ExamStudentUserID   uuid.UUID `gorm:"type:uuid;not null;column:exam_student_user_id" json:"exam_student_user_id"`
	ExamStudentPosition int       `gorm:"not null;column:exam_student_position" json:"exam_student_position"`
}

func (ExamStudentModel) TableName() string { return "exam_students" }
