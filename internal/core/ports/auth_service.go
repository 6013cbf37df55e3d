package ports

import (
	"context"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

// SignupInput carries the fields accepted at account creation.
type SignupInput struct {
	FullName string
	Email    string
	Password string
	// Role defaults to "user" when empty.
	Role string
}

// AuthService defines account and token use-cases.
type AuthService interface {
	// Signup creates an account and returns a signed token alongside the user.
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token alongside the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ListUsers returns every registered account, password hashes excluded
	// from serialization.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
