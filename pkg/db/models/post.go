package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is an announcement or scheduled event published by an administrator.
// Posts are immutable once created; there is no edit or delete path.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	UserName    string    `gorm:"column:user_name;not null"`
	Title       *string   `gorm:"column:title"`
	Description string    `gorm:"column:description;not null"`
	EventDate   time.Time `gorm:"column:event_date;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index"`
}
