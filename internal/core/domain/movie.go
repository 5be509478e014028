package domain

// Movie is the catalog projection resolved for list reads. Ids missing from
// the catalog resolve to a bare record carrying only the id.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}
