package lostfound

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
)

// ItemDTO is the transport shape for a lost-and-found report.
type ItemDTO struct {
	ID                  uuid.UUID             `json:"id"`
	UserID              uuid.UUID             `json:"user_id"`
	UserName            string                `json:"user_name"`
	UserContact         *string               `json:"user_contact,omitempty"`
	Type                enums.LostFoundType   `json:"type"`
	ItemName            string                `json:"item_name"`
	Description         string                `json:"description"`
	DateReported        time.Time             `json:"date_reported"`
	DateLostOrFound     *time.Time            `json:"date_lost_or_found,omitempty"`
	LocationLostOrFound *string               `json:"location_lost_or_found,omitempty"`
	Status              enums.LostFoundStatus `json:"status"`
}

// CreateRequest is the resident-facing report form.
type CreateRequest struct {
	Type                string  `json:"type" validate:"required,oneof=lost found"`
	ItemName            string  `json:"item_name" validate:"required"`
	Description         string  `json:"description" validate:"required"`
	UserContact         *string `json:"user_contact,omitempty"`
	DateLostOrFound     *string `json:"date_lost_or_found,omitempty"`
	LocationLostOrFound *string `json:"location_lost_or_found,omitempty"`
}

func FromModel(item *models.LostFoundItem) *ItemDTO {
	if item == nil {
		return nil
	}
	return &ItemDTO{
		ID:                  item.ID,
		UserID:              item.UserID,
		UserName:            item.UserName,
		UserContact:         item.UserContact,
		Type:                item.Type,
		ItemName:            item.ItemName,
		Description:         item.Description,
		DateReported:        item.DateReported,
		DateLostOrFound:     item.DateLostOrFound,
		LocationLostOrFound: item.LocationLostOrFound,
		Status:              item.Status,
	}
}
