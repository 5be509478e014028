package service

import (
	"context"

	"github.com/moviehub/accounts-api/internal/core/domain"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

// ListService manages the favorites and watch lists. Membership checks and
// mutations are delegated to the repository's atomic conditional updates
// rather than the request's user snapshot, so concurrent add/remove calls
// for the same user cannot double-insert.
type ListService struct {
	repo    ports.UserRepository
	catalog ports.MovieCatalog
}

func NewListService(repo ports.UserRepository, catalog ports.MovieCatalog) *ListService {
	return &ListService{repo: repo, catalog: catalog}
}

func (s *ListService) Favorites(ctx context.Context, user *domain.User) ([]domain.Movie, error) {
	return s.catalog.Resolve(ctx, user.FavoriteMovies)
}

func (s *ListService) AddFavorite(ctx context.Context, user *domain.User, movieID int) error {
	return s.repo.AddToList(ctx, user.Email, ports.ListFavorites, movieID)
}

func (s *ListService) RemoveFavorite(ctx context.Context, user *domain.User, movieID int) error {
	return s.repo.RemoveFromList(ctx, user.Email, ports.ListFavorites, movieID)
}

func (s *ListService) WatchList(ctx context.Context, user *domain.User) ([]domain.Movie, error) {
	return s.catalog.Resolve(ctx, user.WatchList)
}

func (s *ListService) AddToWatchList(ctx context.Context, user *domain.User, movieID int) error {
	return s.repo.AddToList(ctx, user.Email, ports.ListWatch, movieID)
}

func (s *ListService) RemoveFromWatchList(ctx context.Context, user *domain.User, movieID int) error {
	return s.repo.RemoveFromList(ctx, user.Email, ports.ListWatch, movieID)
}
