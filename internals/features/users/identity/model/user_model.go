package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// National ID number as presented on the exam sheet; the directory
	// resolves these to user IDs.
	UserNationalID string `gorm:"size:20;not null;uniqueIndex;column:user_national_id" json:"user_national_id"`
	UserFullName   string `gorm:"size:120;not null;column:user_full_name" json:"user_full_name"`
	UserRole       string `gorm:"size:20;not null;column:user_role" json:"user_role"`

	UserPasswordHash string `gorm:"size:100;not null;default:'';column:user_password_hash" json:"-"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
