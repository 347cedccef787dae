package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/residensync/residensync-backend/internal/users"
	"github.com/residensync/residensync-backend/pkg/config"
	"github.com/residensync/residensync-backend/pkg/db"
	"github.com/residensync/residensync-backend/pkg/db/models"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/security"
	"gorm.io/gorm"
)

const passwordMismatchMessage = "Passwords do not match."

// RegisterService handles resident signup. New accounts always land in
// pending_approval and wait for an admin decision.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	TxRunner        txRunner
	UserRepoFactory func(tx *gorm.DB) registerUserRepository
	PasswordConfig  config.PasswordConfig
}

type registerService struct {
	tx          txRunner
	userRepoFor func(tx *gorm.DB) registerUserRepository
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	userRepoFor := params.UserRepoFactory
	if userRepoFor == nil {
		userRepoFor = func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		}
	}
	return &registerService{
		tx:          params.TxRunner,
		userRepoFor: userRepoFor,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	// The mismatch check runs before any hashing or persistence work.
	if req.Password != req.ConfirmPassword {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, passwordMismatchMessage)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !req.AgreeToTerms {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "agree_to_terms must be true")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *users.UserDTO
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := s.userRepoFor(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:         email,
			PasswordHash:  passwordHash,
			FullName:      strings.TrimSpace(req.FullName),
			ContactNo:     strings.TrimSpace(req.ContactNo),
			Address:       strings.TrimSpace(req.Address),
			AgreedToTerms: req.AgreeToTerms,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "idx_users_email") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{User: created}, nil
}
