package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// stubCatalog resolves every id to a bare movie record.
type stubCatalog struct{}

func (stubCatalog) Resolve(_ context.Context, ids []int) ([]domain.Movie, error) {
	movies := make([]domain.Movie, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, domain.Movie{ID: id})
	}
	return movies, nil
}

func seedListUser(t *testing.T, repo *stubUserRepo, favorites ...int) *domain.User {
	t.Helper()
	user := &domain.User{
		FirstName:      "Alice",
		Email:          "alice@example.com",
		FavoriteMovies: favorites,
	}
	created, err := repo.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func favoritesOf(repo *stubUserRepo, email string) []int {
	return repo.byEmail[email].FavoriteMovies
}

func TestListService_FavoritesScenario(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewListService(repo, stubCatalog{})
	ctx := context.Background()

	user := seedListUser(t, repo, 10, 22)

	// add(22): already present, set unchanged
	if err := svc.AddFavorite(ctx, user, 22); err != domain.ErrAlreadyInList {
		t.Fatalf("expected ErrAlreadyInList, got %v", err)
	}
	if got := favoritesOf(repo, user.Email); !reflect.DeepEqual(got, []int{10, 22}) {
		t.Fatalf("set changed on duplicate add: %v", got)
	}

	// add(5): set becomes {10, 22, 5}
	if err := svc.AddFavorite(ctx, user, 5); err != nil {
		t.Fatalf("add(5): %v", err)
	}
	if got := favoritesOf(repo, user.Email); !reflect.DeepEqual(got, []int{10, 22, 5}) {
		t.Fatalf("unexpected set after add(5): %v", got)
	}

	// remove(10): set becomes {22, 5}
	if err := svc.RemoveFavorite(ctx, user, 10); err != nil {
		t.Fatalf("remove(10): %v", err)
	}
	if got := favoritesOf(repo, user.Email); !reflect.DeepEqual(got, []int{22, 5}) {
		t.Fatalf("unexpected set after remove(10): %v", got)
	}

	// remove(10) again: absent, failure, set unchanged
	if err := svc.RemoveFavorite(ctx, user, 10); err != domain.ErrNotInList {
		t.Fatalf("expected ErrNotInList, got %v", err)
	}
	if got := favoritesOf(repo, user.Email); !reflect.DeepEqual(got, []int{22, 5}) {
		t.Fatalf("set changed on absent remove: %v", got)
	}
}

func TestListService_AddRemoveRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewListService(repo, stubCatalog{})
	ctx := context.Background()

	user := seedListUser(t, repo, 10, 22)

	if err := svc.AddFavorite(ctx, user, 7); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveFavorite(ctx, user, 7); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := favoritesOf(repo, user.Email); !reflect.DeepEqual(got, []int{10, 22}) {
		t.Fatalf("round trip did not restore set: %v", got)
	}
}

func TestListService_Favorites_ResolvesThroughCatalog(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewListService(repo, stubCatalog{})

	user := seedListUser(t, repo, 10, 22)

	movies, err := svc.Favorites(context.Background(), user)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(movies) != 2 || movies[0].ID != 10 || movies[1].ID != 22 {
		t.Fatalf("unexpected movies: %+v", movies)
	}
}

func TestListService_WatchListMirror(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewListService(repo, stubCatalog{})
	ctx := context.Background()

	user := seedListUser(t, repo)

	if err := svc.AddToWatchList(ctx, user, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddToWatchList(ctx, user, 3); err != domain.ErrAlreadyInList {
		t.Fatalf("expected ErrAlreadyInList, got %v", err)
	}

	movies, err := svc.WatchList(ctx, &domain.User{Email: user.Email, WatchList: repo.byEmail[user.Email].WatchList})
	if err != nil {
		t.Fatalf("watch list: %v", err)
	}
	if len(movies) != 1 || movies[0].ID != 3 {
		t.Fatalf("unexpected movies: %+v", movies)
	}

	if err := svc.RemoveFromWatchList(ctx, user, 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveFromWatchList(ctx, user, 3); err != domain.ErrNotInList {
		t.Fatalf("expected ErrNotInList, got %v", err)
	}
}
