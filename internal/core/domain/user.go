package domain

import "time"

// User models a registered account. The password hash is never serialized;
// FavoriteMovies and WatchList hold movie ids whose uniqueness is enforced
// by the repository's conditional updates.
type User struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Avatar            string     `json:"avatar,omitempty"`
	PasswordHash      string     `json:"-"`
	PasswordChangedAt *time.Time `json:"-"`
	FavoriteMovies    []int      `json:"favoriteMovies,omitempty"`
	WatchList         []int      `json:"watchList,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ChangedPasswordAfter reports whether the password was changed strictly
// after the given instant. Comparison is at second precision because JWT
// iat claims carry unix seconds.
func (u *User) ChangedPasswordAfter(t time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.Unix() > t.Unix()
}
