package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/enums"
)

// LostFoundItem is a resident-filed report of a lost or found item.
type LostFoundItem struct {
	ID                  uuid.UUID             `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID             `gorm:"type:uuid;column:user_id;not null;index"`
	UserName            string                `gorm:"column:user_name;not null"`
	UserContact         *string               `gorm:"column:user_contact"`
	Type                enums.LostFoundType   `gorm:"type:text;not null"`
	ItemName            string                `gorm:"column:item_name;not null"`
	Description         string                `gorm:"column:description;not null"`
	DateReported        time.Time             `gorm:"column:date_reported;not null;index"`
	DateLostOrFound     *time.Time            `gorm:"column:date_lost_or_found"`
	LocationLostOrFound *string               `gorm:"column:location_lost_or_found"`
	Status              enums.LostFoundStatus `gorm:"type:text;not null;default:'active'"`
}
