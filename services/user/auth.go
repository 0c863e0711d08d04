// File: services/user/auth.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"entrega/models"
	"entrega/utils"
)

// Sign-in failures carry the exact marker strings the error classifier
// recognizes, so clients always see the matching category message.
var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrEmailNotConfirmed  = errors.New("Email not confirmed")
	ErrAlreadyRegistered  = errors.New("User already registered")
)

// Register creates an operator account. The address must be confirmed before
// sign-in succeeds.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(account.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: account.ID, Token: token, Name: account.Name, Email: account.Email}, nil
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !account.EmailConfirmed {
		return nil, ErrEmailNotConfirmed
	}

	token, err := utils.GenerateToken(account.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: account.ID, Token: token, Name: account.Name, Email: account.Email}, nil
}
