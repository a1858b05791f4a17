package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	m "pengawasku_backend/internals/features/attendance/ledger/model"
)

// ApplyStatus mutates a in place according to the ledger's transition rules.
// `transferred` is never a legal target here: only the transfer coordinator
// retires a record.
func ApplyStatus(a *m.AttendanceModel, newStatus string, now time.Time) error {
	if a.AttendanceStatus == m.StatusTransferred {
		return fiber.NewError(fiber.StatusConflict, "Attendance record is frozen after transfer")
	}

	switch newStatus {
	case m.StatusPresent:
		t := now
		a.AttendanceStatus = m.StatusPresent
		a.AttendanceStartTime = &t
		a.AttendanceIsOnToilet = false
	case m.StatusAbsent:
		a.AttendanceStatus = m.StatusAbsent
		a.AttendanceStartTime = nil
		a.AttendanceEndTime = nil
		a.AttendanceIsOnToilet = false
	case m.StatusFinished:
		t := now
		a.AttendanceStatus = m.StatusFinished
		a.AttendanceEndTime = &t
		a.AttendanceIsOnToilet = false
	case m.StatusTransferred:
		return fiber.NewError(fiber.StatusBadRequest, "Status transferred is set by the transfer operation only")
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Unknown attendance status: "+newStatus)
	}
	return nil
}
