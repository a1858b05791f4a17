package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "pengawasku_backend/internals/features/attendance/ledger/model"
)

func absentRecord() m.AttendanceModel {
	return m.AttendanceModel{
		AttendanceID:               uuid.New(),
		AttendanceExamID:           uuid.New(),
		AttendanceStudentID:        uuid.New(),
		AttendanceStudentNumInExam: 2,
		AttendanceStatus:           m.StatusAbsent,
	}
}

func TestApplyStatusPresent(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 5, 0, 0, time.UTC)
	rec := absentRecord()
	rec.AttendanceIsOnToilet = true

	if err := ApplyStatus(&rec, m.StatusPresent, now); err != nil {
		t.Fatalf("to present: %v", err)
	}
	if rec.AttendanceStatus != m.StatusPresent {
		t.Fatalf("status %s", rec.AttendanceStatus)
	}
	if rec.AttendanceStartTime == nil || !rec.AttendanceStartTime.Equal(now) {
		t.Fatal("present must stamp start time")
	}
	if rec.AttendanceIsOnToilet {
		t.Fatal("present must clear the toilet flag")
	}
}

func TestApplyStatusAbsentClearsTimes(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 5, 0, 0, time.UTC)
	rec := absentRecord()
	if err := ApplyStatus(&rec, m.StatusPresent, now); err != nil {
		t.Fatalf("to present: %v", err)
	}
	if err := ApplyStatus(&rec, m.StatusFinished, now.Add(time.Hour)); err != nil {
		t.Fatalf("to finished: %v", err)
	}

	if err := ApplyStatus(&rec, m.StatusAbsent, now.Add(2*time.Hour)); err != nil {
		t.Fatalf("back to absent: %v", err)
	}
	if rec.AttendanceStartTime != nil || rec.AttendanceEndTime != nil {
		t.Fatal("absent must clear start and end times")
	}
}

func TestApplyStatusFinished(t *testing.T) {
	now := time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)
	rec := absentRecord()
	rec.AttendanceStatus = m.StatusPresent
	rec.AttendanceIsOnToilet = true

	if err := ApplyStatus(&rec, m.StatusFinished, now); err != nil {
		t.Fatalf("to finished: %v", err)
	}
	if rec.AttendanceEndTime == nil || !rec.AttendanceEndTime.Equal(now) {
		t.Fatal("finished must stamp end time")
	}
	if rec.AttendanceIsOnToilet {
		t.Fatal("finished must clear the toilet flag")
	}
}

func TestApplyStatusTransferredIsCoordinatorOnly(t *testing.T) {
	rec := absentRecord()
	err := ApplyStatus(&rec, m.StatusTransferred, time.Now())
	if err == nil {
		t.Fatal("direct transfer status must be rejected")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestApplyStatusFrozenAfterTransfer(t *testing.T) {
	rec := absentRecord()
	rec.AttendanceStatus = m.StatusTransferred

	err := ApplyStatus(&rec, m.StatusPresent, time.Now())
	if err == nil {
		t.Fatal("a transferred record must be frozen")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func TestApplyStatusUnknownTarget(t *testing.T) {
	rec := absentRecord()
	err := ApplyStatus(&rec, "sleeping", time.Now())
	if err == nil {
		t.Fatal("unknown status must be rejected")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
