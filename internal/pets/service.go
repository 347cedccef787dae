package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/validators"
	"github.com/residensync/residensync-backend/pkg/db/models"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service manages the pets registered under a resident profile. Every
// operation is scoped to the calling owner.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*PetDTO, error)
	ListMine(ctx context.Context, ownerID uuid.UUID, limit int) ([]PetDTO, error)
	Get(ctx context.Context, ownerID, petID uuid.UUID) (*PetDTO, error)
	Update(ctx context.Context, ownerID, petID uuid.UUID, req UpdateRequest) (*PetDTO, error)
	Delete(ctx context.Context, ownerID, petID uuid.UUID) error
}

type petRepository interface {
	Create(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	pets petRepository
}

// ServiceParams bundles the dependencies required to build a pets service.
type ServiceParams struct {
	PetRepo petRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.PetRepo == nil {
		return nil, fmt.Errorf("pet repository is required")
	}
	return &service{pets: params.PetRepo}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*PetDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	petType := strings.TrimSpace(req.Type)
	if petType == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type is required")
	}
	birthdate, err := parseOptionalBirthdate(req.Birthdate)
	if err != nil {
		return nil, err
	}

	pet := &models.Pet{
		OwnerID:   ownerID,
		Name:      name,
		Type:      petType,
		Breed:     trimmedOrNil(req.Breed),
		Birthdate: birthdate,
	}
	created, err := s.pets.Create(ctx, pet)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create pet")
	}
	return FromModel(created), nil
}

func (s *service) ListMine(ctx context.Context, ownerID uuid.UUID, limit int) ([]PetDTO, error) {
	rows, err := s.pets.ListByOwner(ctx, ownerID, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pets")
	}
	out := make([]PetDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, ownerID, petID uuid.UUID) (*PetDTO, error) {
	pet, err := s.loadOwned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	return FromModel(pet), nil
}

func (s *service) Update(ctx context.Context, ownerID, petID uuid.UUID, req UpdateRequest) (*PetDTO, error) {
	pet, err := s.loadOwned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be blank")
		}
		pet.Name = name
	}
	if req.Type != nil {
		petType := strings.TrimSpace(*req.Type)
		if petType == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "type cannot be blank")
		}
		pet.Type = petType
	}
	if req.Breed != nil {
		pet.Breed = trimmedOrNil(req.Breed)
	}
	if req.Birthdate != nil {
		birthdate, err := parseOptionalBirthdate(req.Birthdate)
		if err != nil {
			return nil, err
		}
		pet.Birthdate = birthdate
	}

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update pet")
	}
	return FromModel(pet), nil
}

func (s *service) Delete(ctx context.Context, ownerID, petID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, ownerID, petID); err != nil {
		return err
	}
	if err := s.pets.Delete(ctx, petID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete pet")
	}
	return nil
}

// loadOwned fetches a pet and verifies it belongs to the caller. A pet owned
// by someone else reads as not found so ids are not probeable.
func (s *service) loadOwned(ctx context.Context, ownerID, petID uuid.UUID) (*models.Pet, error) {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pet not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup pet")
	}
	if pet.OwnerID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pet not found")
	}
	return pet, nil
}

func parseOptionalBirthdate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := validators.ParseDate("birthdate", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
