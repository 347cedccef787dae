package auth

import (
	"github.com/residensync/residensync-backend/internal/sessiongate"
	"github.com/residensync/residensync-backend/internal/users"
)

// RegisterRequest captures the resident signup form.
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ContactNo       string `json:"contact_no" validate:"required"`
	Address         string `json:"address" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

// RegisterResponse returns the pending profile created by signup.
type RegisterResponse struct {
	User *users.UserDTO `json:"user"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the tokens, user, and resolved gate snapshot. Any
// profile status may sign in; the session state tells the client where to go.
type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         *users.UserDTO       `json:"user"`
	Session      sessiongate.Snapshot `json:"session"`
}

// RefreshRequest carries the expired access token plus the refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
