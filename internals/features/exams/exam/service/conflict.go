package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "pengawasku_backend/internals/features/exams/exam/model"
)

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Minutes since midnight; touching intervals (end == start) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// FindRoomConflict looks for a scheduled or active exam at the same location
// and civil date whose time window overlaps [startMin, endMin), excluding
// excludeID (the exam being updated). Finished exams have vacated the room.
//
// Must run inside the same transaction as the write. It takes an advisory
// lock on (location, date) first, so two concurrent creates for the same
// room serialize and cannot both pass the check; the schema's exclusion
// constraint remains as a backstop.
func FindRoomConflict(tx *gorm.DB, location string, date time.Time, startMin, endMin int, excludeID uuid.UUID) (*m.ExamModel, error) {
	if err := tx.Exec(
		"SELECT pg_advisory_xact_lock(hashtext(? || '|' || ?))",
		location, date.Format("2006-01-02"),
	).Error; err != nil {
		return nil, err
	}

	q := tx.
		Where("exam_location = ? AND exam_date = ? AND exam_status IN ?",
			location, date.Format("2006-01-02"), []string{m.StatusScheduled, m.StatusActive}).
		Where("exam_start_minutes < ? AND ? < exam_end_minutes", endMin, startMin)
	if excludeID != uuid.Nil {
		q = q.Where("exam_id <> ?", excludeID)
	}

	var conflict m.ExamModel
	if err := q.First(&conflict).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conflict, nil
}
