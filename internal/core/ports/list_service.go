package ports

import (
	"context"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// ListService manages the favorites and watch movie lists of an account.
// Add/Remove surface domain.ErrAlreadyInList / domain.ErrNotInList when the
// conditional store update finds the id already present or absent.
type ListService interface {
	Favorites(ctx context.Context, user *domain.User) ([]domain.Movie, error)
	AddFavorite(ctx context.Context, user *domain.User, movieID int) error
	RemoveFavorite(ctx context.Context, user *domain.User, movieID int) error

	WatchList(ctx context.Context, user *domain.User) ([]domain.Movie, error)
	AddToWatchList(ctx context.Context, user *domain.User, movieID int) error
	RemoveFromWatchList(ctx context.Context, user *domain.User, movieID int) error
}
