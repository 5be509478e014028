package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/moviehub/accounts-api/internal/core/domain"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

// JWTConfig is the explicit signing configuration handed to the token
// service at construction. Nothing reads the environment ad hoc.
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewTokenService(cfg JWTConfig) *TokenService {
	expiresIn := cfg.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return &TokenService{
		secret:    []byte(cfg.Secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

// Issue produces a signed token carrying the user id as subject, with the
// configured expiry window.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry. All failures collapse into
// domain.ErrInvalidToken — callers never learn why a token was rejected.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" || claims.IssuedAt == nil {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID:   claims.Subject,
		IssuedAt: claims.IssuedAt.Time,
	}, nil
}
