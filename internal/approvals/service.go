package approvals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/internal/users"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service is the admin approval queue: list pending signups and decide them.
type Service interface {
	ListPending(ctx context.Context, limit int) ([]users.UserDTO, error)
	Approve(ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error)
	Reject(ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error)
}

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListByStatus(ctx context.Context, status enums.UserStatus, limit int) ([]models.User, error)
	SetApprovalDecision(ctx context.Context, id uuid.UUID, status enums.UserStatus, decidedBy uuid.UUID, at time.Time) error
}

type service struct {
	users userRepository
}

// ServiceParams bundles the dependencies required to build an approvals service.
type ServiceParams struct {
	UserRepo userRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{users: params.UserRepo}, nil
}

func (s *service) ListPending(ctx context.Context, limit int) ([]users.UserDTO, error) {
	rows, err := s.users.ListByStatus(ctx, enums.UserStatusPendingApproval, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pending users")
	}

	out := make([]users.UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *users.FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Approve(ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error) {
	return s.decide(ctx, adminID, userID, enums.UserStatusApproved)
}

func (s *service) Reject(ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error) {
	return s.decide(ctx, adminID, userID, enums.UserStatusRejected)
}

func (s *service) decide(ctx context.Context, adminID, userID uuid.UUID, target enums.UserStatus) (*users.UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	// Decisions apply only to accounts still waiting in the queue.
	if user.Status != enums.UserStatusPendingApproval {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "user is not pending approval").
			WithDetails(map[string]any{"status": string(user.Status)})
	}

	now := time.Now().UTC()
	if err := s.users.SetApprovalDecision(ctx, userID, target, adminID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record decision")
	}

	user.Status = target
	user.ApprovedAt = &now
	user.ApprovedBy = &adminID
	return users.FromModel(user), nil
}
