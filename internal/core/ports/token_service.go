package ports

import "time"

// TokenClaims is the decoded identity a verified token carries. IssuedAt is
// compared against the account's password-change timestamp by the guard.
type TokenClaims struct {
	UserID   string
	IssuedAt time.Time
}

// TokenService issues and verifies signed bearer tokens. Verify collapses
// signature, algorithm and expiry failures into domain.ErrInvalidToken; the
// distinction is never surfaced to clients.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
