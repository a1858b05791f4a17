package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditEventModel struct {
	AuditEventID      uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:audit_event_id" json:"audit_event_id"`
	AuditEventActorID *uuid.UUID     `gorm:"type:uuid;column:audit_event_actor_id" json:"audit_event_actor_id,omitempty"`
	AuditEventAction  string         `gorm:"size:60;not null;column:audit_event_action" json:"audit_event_action"`
	AuditEventPayload datatypes.JSON `gorm:"column:audit_event_payload" json:"audit_event_payload,omitempty"`

	AuditEventCreatedAt time.Time `gorm:"column:audit_event_created_at;autoCreateTime" json:"audit_event_created_at"`
}

func (AuditEventModel) TableName() string { return "audit_events" }
