// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tasktag/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the user and the issued credential after a successful
// registration or login.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user and issues a credential for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies a username/password pair and issues a credential.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// AutoLogin re-validates an already authenticated principal and returns
	// its user record.
	AutoLogin(ctx context.Context, principal entity.Principal) (*entity.User, error)
}
