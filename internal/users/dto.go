package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID            uuid.UUID        `json:"id"`
	Email         string           `json:"email"`
	FullName      string           `json:"full_name"`
	ContactNo     string           `json:"contact_no"`
	Address       string           `json:"address"`
	Status        enums.UserStatus `json:"status"`
	Role          enums.UserRole   `json:"role"`
	ApprovedAt    *time.Time       `json:"approved_at,omitempty"`
	ApprovedBy    *uuid.UUID       `json:"approved_by,omitempty"`
	LastLoginAt   *time.Time       `json:"last_login_at,omitempty"`
	AgreedToTerms bool             `json:"agreed_to_terms"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email         string
	PasswordHash  string
	FullName      string
	ContactNo     string
	Address       string
	AgreedToTerms bool
	Role          enums.UserRole
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		ContactNo:     u.ContactNo,
		Address:       u.Address,
		Status:        u.Status,
		Role:          u.Role,
		ApprovedAt:    u.ApprovedAt,
		ApprovedBy:    u.ApprovedBy,
		LastLoginAt:   u.LastLoginAt,
		AgreedToTerms: u.AgreedToTerms,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if !role.IsValid() {
		role = enums.UserRoleUser
	}

	return &models.User{
		ID:            uuid.New(),
		Email:         c.Email,
		PasswordHash:  c.PasswordHash,
		FullName:      c.FullName,
		ContactNo:     c.ContactNo,
		Address:       c.Address,
		AgreedToTerms: c.AgreedToTerms,
		Status:        enums.UserStatusPendingApproval,
		Role:          role,
	}
}
