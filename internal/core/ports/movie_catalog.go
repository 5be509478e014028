package ports

import (
	"context"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

// MovieCatalog resolves movie ids into full movie data. Implementations may
// return partial records for ids the catalog does not know.
type MovieCatalog interface {
	Resolve(ctx context.Context, ids []int) ([]domain.Movie, error)
}
