// Package auth issues and verifies session tokens and carries the verified
// caller identity through request contexts.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultValidity is the session token lifetime used when none is configured.
const DefaultValidity = 24 * time.Hour

// Claims carries the standard registered claims plus the account identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// Identity is the verified caller of a request.
type Identity struct {
	UserID   string
	Username string
}

// TokenService signs and verifies HS256 session tokens.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

type Option func(*TokenService)

// WithClock overrides the time source used for issuing and checking expiry.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret []byte, validity time.Duration, opts ...Option) *TokenService {
	if validity <= 0 {
		validity = DefaultValidity
	}
	s := &TokenService{secret: secret, validity: validity, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Validity returns the lifetime of issued tokens.
func (s *TokenService) Validity() time.Duration { return s.validity }

// Issue returns a signed token for the account that expires after the
// configured validity.
func (s *TokenService) Issue(userID, username string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", common.Wrap(common.ErrInternal, err)
	}
	return tokenString, nil
}

// Verify checks the signature, algorithm and expiry of tokenString.
// It returns common.ErrTokenExpired for an expired token and
// common.ErrTokenMalformed for anything else that does not verify.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.Wrap(common.ErrTokenMalformed, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrTokenMalformed
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
