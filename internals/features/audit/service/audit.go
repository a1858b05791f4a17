package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pengawasku_backend/internals/features/audit/model"
)

// Audit action names emitted by the core.
const (
	ActionExamCreated      = "exam.created"
	ActionExamUpdated      = "exam.updated"
	ActionExamDeleted      = "exam.deleted"
	ActionExamActivated    = "exam.activated"
	ActionExamFinished     = "exam.finished"
	ActionExamTimeAdded    = "exam.time_added"
	ActionLecturerCalled   = "exam.lecturer_called"
	ActionStatusChanged    = "attendance.status_changed"
	ActionToiletToggled    = "attendance.toilet_toggled"
	ActionExtraTimeAdded   = "attendance.extra_time_added"
	ActionStudentTransfer  = "attendance.transferred"
	ActionExamBulkImported = "exam.bulk_imported"
)

// Emit writes one audit event. Fire-and-forget: a failing sink must never
// fail or roll back the primary state change, so errors are only logged.
// Call it after the primary transaction has committed.
func Emit(db *gorm.DB, actorID uuid.UUID, action string, payload any) {
	var actor *uuid.UUID
	if actorID != uuid.Nil {
		actor = &actorID
	}

	var raw datatypes.JSON
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[AUDIT] marshal %s err: %v", action, err)
		} else {
			raw = datatypes.JSON(b)
		}
	}

	ev := model.AuditEventModel{
		AuditEventActorID: actor,
		AuditEventAction:  action,
		AuditEventPayload: raw,
	}
	if err := db.Create(&ev).Error; err != nil {
		log.Printf("[AUDIT] emit %s err: %v", action, err)
	}
}
