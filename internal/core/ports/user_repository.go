package ports

import (
	"context"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// ListField selects which per-user movie list a repository operation targets.
type ListField string

const (
	ListFavorites ListField = "favorite_movies"
	ListWatch     ListField = "watch_list"
)

// UserRepository defines the persistence interface for account records.
//
// AddToList and RemoveFromList are single atomic conditional updates:
// AddToList appends movieID only when absent and returns
// domain.ErrAlreadyInList otherwise; RemoveFromList removes movieID only
// when present and returns domain.ErrNotInList otherwise. Concurrent
// add/remove calls for the same user are linearizable at the store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	AddToList(ctx context.Context, email string, field ListField, movieID int) error
	RemoveFromList(ctx context.Context, email string, field ListField, movieID int) error
	SetAvatar(ctx context.Context, email, avatar string) error
	Search(ctx context.Context, query string, limit int) ([]domain.User, error)
}
