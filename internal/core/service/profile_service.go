package service

import (
	"context"
	"io"
	"strings"

	"github.com/moviehub/accounts-api/internal/core/domain"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

const searchLimit = 20

// ProfileService stores profile images and answers user searches.
type ProfileService struct {
	repo   ports.UserRepository
	images ports.ImageStore
}

func NewProfileService(repo ports.UserRepository, images ports.ImageStore) *ProfileService {
	return &ProfileService{repo: repo, images: images}
}

// SaveProfileImage stores the image and points the account's avatar at the
// serving route.
func (s *ProfileService) SaveProfileImage(ctx context.Context, user *domain.User, contentType string, r io.Reader) error {
	if err := s.images.Save(ctx, user.Email, contentType, r); err != nil {
		return err
	}
	return s.repo.SetAvatar(ctx, user.Email, "/profile-img")
}

func (s *ProfileService) ProfileImage(ctx context.Context, user *domain.User) (io.ReadCloser, string, error) {
	return s.images.Open(ctx, user.Email)
}

// SearchUsers matches the query against names and emails. Results are
// sanitized: no password hash, no movie lists.
func (s *ProfileService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	users, err := s.repo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, domain.User{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Avatar:    u.Avatar,
		})
	}
	return out, nil
}
