package ports

import (
	"context"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// SignupInput carries the fields accepted on account creation.
type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Avatar          string
	Password        string
	PasswordConfirm string
}

// AuthService implements signup and login flows.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
