package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/internal/sessiongate"
	"github.com/residensync/residensync-backend/pkg/db/models"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the profile reads needed by controllers and the approval
// middleware.
type Service interface {
	Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	GateProfile(ctx context.Context, userID uuid.UUID) (*sessiongate.Profile, error)
}

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type service struct {
	users userRepository
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	UserRepo userRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{users: params.UserRepo}, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup profile")
	}
	return FromModel(user), nil
}

// GateProfile returns the gate-relevant slice of the profile, or nil when
// the record does not exist.
func (s *service) GateProfile(ctx context.Context, userID uuid.UUID) (*sessiongate.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sessiongate.Profile{
		UserID: user.ID,
		Status: user.Status,
		Role:   user.Role,
	}, nil
}
