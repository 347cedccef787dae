package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// DocumentRequest is a resident's request for a barangay-issued document.
// RequestID is the human-readable reference shown on receipts.
type DocumentRequest struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID                   `gorm:"type:uuid;column:user_id;not null;index"`
	UserName      string                      `gorm:"column:user_name;not null"`
	RequestID     string                      `gorm:"column:request_id;not null;uniqueIndex"`
	DocumentName  enums.DocumentTypeName      `gorm:"column:document_name;type:text;not null"`
	Purpose       string                      `gorm:"column:purpose;not null"`
	DateRequested time.Time                   `gorm:"column:date_requested;not null;index"`
	Fee           decimal.Decimal             `gorm:"column:fee;type:numeric(10,2);not null"`
	Status        enums.DocumentRequestStatus `gorm:"type:text;not null;default:'Pending'"`
	DateReleased  *time.Time                  `gorm:"column:date_released"`
}
