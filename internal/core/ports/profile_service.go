package ports

import (
	"context"
	"io"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// ImageStore persists profile images keyed by account email.
type ImageStore interface {
	Save(ctx context.Context, email, contentType string, r io.Reader) error
	Open(ctx context.Context, email string) (io.ReadCloser, string, error)
}

// ProfileService handles profile-image storage and user search.
type ProfileService interface {
	SaveProfileImage(ctx context.Context, user *domain.User, contentType string, r io.Reader) error
	ProfileImage(ctx context.Context, user *domain.User) (io.ReadCloser, string, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}
