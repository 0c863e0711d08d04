// File: services/user/interface.go
package user

import (
	"context"

	userRepo "entrega/database/repository/user"
)

// UserService handles operator registration and sign-in.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
