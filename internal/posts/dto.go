package posts

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
)

// PostDTO is the transport shape for announcements and scheduled events.
type PostDTO struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	Title       *string   `json:"title,omitempty"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRequest is the admin-only post submit form. The date and time fields
// use the fixed wire formats the mobile forms produce.
type CreateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description string  `json:"description" validate:"required"`
	EventDate   string  `json:"event_date" validate:"required"`
	EventTime   string  `json:"event_time" validate:"required"`
}

func FromModel(p *models.Post) *PostDTO {
	if p == nil {
		return nil
	}
	return &PostDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		UserName:    p.UserName,
		Title:       p.Title,
		Description: p.Description,
		EventDate:   p.EventDate,
		CreatedAt:   p.CreatedAt,
	}
}
