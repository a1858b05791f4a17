package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "pengawasku_backend/internals/features/exams/exam/model"
)

// GormExamSource is the storage-backed ExamSource.
type GormExamSource struct {
	DB *gorm.DB
}

func NewGormExamSource(db *gorm.DB) *GormExamSource {
	return &GormExamSource{DB: db}
}

func (s *GormExamSource) ActiveBySupervisor(supervisorID uuid.UUID) ([]m.ExamModel, error) {
	return s.bySupervisorAndStatus(supervisorID, m.StatusActive)
}

func (s *GormExamSource) ScheduledBySupervisor(supervisorID uuid.UUID) ([]m.ExamModel, error) {
	return s.bySupervisorAndStatus(supervisorID, m.StatusScheduled)
}

func (s *GormExamSource) bySupervisorAndStatus(supervisorID uuid.UUID, status string) ([]m.ExamModel, error) {
	var exams []m.ExamModel
	err := s.DB.
		Joins("JOIN exam_supervisors ON exam_supervisor_exam_id = exam_id").
		Where("exam_supervisor_user_id = ? AND exam_status = ?", supervisorID, status).
		Find(&exams).Error
	return exams, err
}
