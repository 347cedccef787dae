package models

import (
	"time"

	"github.com/google/uuid"
)

// Pet is a household pet registered under a resident profile.
type Pet struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;column:owner_id;not null;index"`
	Name      string     `gorm:"column:name;not null"`
	Type      string     `gorm:"column:type;not null"`
	Breed     *string    `gorm:"column:breed"`
	Birthdate *time.Time `gorm:"column:birthdate"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}
