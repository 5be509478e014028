package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// MovieCatalog resolves movie ids against the catalog cache.
// Key format: movie:<id>, value: the movie document as JSON.
type MovieCatalog struct {
	client *redis.Client
}

// NewMovieCatalog creates a MovieCatalog wrapping the given Redis client.
func NewMovieCatalog(client *redis.Client) *MovieCatalog {
	return &MovieCatalog{client: client}
}

// Resolve fetches the cached documents for ids in one MGET. Ids the cache
// does not know come back as bare {id} records so a stale cache never hides
// list membership.
func (c *MovieCatalog) Resolve(ctx context.Context, ids []int) ([]domain.Movie, error) {
	if len(ids) == 0 {
		return []domain.Movie{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("catalog mget: %w", err)
	}

	movies := make([]domain.Movie, 0, len(ids))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			movies = append(movies, domain.Movie{ID: ids[i]})
			continue
		}
		var m domain.Movie
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("catalog decode movie %d: %w", ids[i], err)
		}
		m.ID = ids[i]
		movies = append(movies, m)
	}
	return movies, nil
}

func (c *MovieCatalog) key(id int) string {
	return fmt.Sprintf("movie:%d", id)
}
