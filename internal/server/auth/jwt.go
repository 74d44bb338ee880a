// Package auth issues and verifies the signed identity tokens carried by
// API clients, and holds the role predicates used by the HTTP guards.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Roles a user may hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the set of claims embedded at issuance and handed to
// handlers after verification.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the identity may use admin-only endpoints.
func IsAdmin(id Identity) bool {
	return id.Role == RoleAdmin
}

// Claims is the JWT payload: registered claims plus the identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity Identity `json:"identity"`
}

// Issuer signs and verifies HS256 tokens with a fixed lifetime.
type Issuer struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

func NewIssuer(secretKey []byte, validityDuration time.Duration) *Issuer {
	return &Issuer{secretKey: secretKey, validityDuration: validityDuration, now: time.Now}
}

// Issue returns a signed token for id that expires after the configured
// validity duration.
func (i *Issuer) Issue(id Identity) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validityDuration)),
		},
		Identity: id,
	})

	return token.SignedString(i.secretKey)
}

// Verify checks signature, signing method and expiry, and returns the
// embedded identity. Expired tokens yield common.ErrTokenExpired, every
// other failure common.ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, common.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, common.ErrTokenExpired
		}
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return claims.Identity, nil
}
