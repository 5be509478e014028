package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/moviehub/accounts-api/internal/core/domain"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

// AuthService implements signup and login. Every failure branch returns
// immediately so exactly one outcome reaches the transport layer.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Signup creates the account and issues a token for it. The password is
// stored only as a bcrypt hash; the confirmation field is checked here, the
// way the store's own validation did in the original model.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, string, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	if in.Password != in.PasswordConfirm {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Avatar:       in.Avatar,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login resolves the account by email and compares the password against the
// stored hash. Unknown email and wrong password both come back as
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
