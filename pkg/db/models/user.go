package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/enums"
)

// User is the resident profile plus the credential it is keyed by. Exactly one
// row exists per identity; rows are never deleted, only status-transitioned.
type User struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Email         string           `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash  string           `gorm:"column:password_hash;not null"`
	FullName      string           `gorm:"column:full_name;not null"`
	ContactNo     string           `gorm:"column:contact_no;not null"`
	Address       string           `gorm:"column:address;not null"`
	AgreedToTerms bool             `gorm:"column:agreed_to_terms;not null;default:false"`
	Status        enums.UserStatus `gorm:"type:text;not null;default:'pending_approval'"`
	Role          enums.UserRole   `gorm:"type:text;not null;default:'user'"`
	ApprovedAt    *time.Time       `gorm:"column:approved_at"`
	ApprovedBy    *uuid.UUID       `gorm:"type:uuid;column:approved_by"`
	LastLoginAt   *time.Time       `gorm:"column:last_login_at"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
