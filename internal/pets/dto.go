package pets

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
)

// PetDTO is the transport shape for a registered pet.
type PetDTO struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Breed     *string    `json:"breed,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateRequest registers a pet under the calling resident.
type CreateRequest struct {
	Name      string  `json:"name" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Breed     *string `json:"breed,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
}

// UpdateRequest edits a pet's details. Nil fields are left untouched.
type UpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	Type      *string `json:"type,omitempty"`
	Breed     *string `json:"breed,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
}

func FromModel(pet *models.Pet) *PetDTO {
	if pet == nil {
		return nil
	}
	return &PetDTO{
		ID:        pet.ID,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Type:      pet.Type,
		Breed:     pet.Breed,
		Birthdate: pet.Birthdate,
		CreatedAt: pet.CreatedAt,
	}
}
