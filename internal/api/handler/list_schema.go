package handler

import "github.com/moviehub/accounts-api/internal/core/domain"

// statusResponse is the envelope for list mutations and bare failures.
type statusResponse struct {
	Status string `json:"status"`
}

type moviesResponse struct {
	Status string         `json:"status"`
	Data   []domain.Movie `json:"data"`
}
