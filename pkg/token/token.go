package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "acecourt"

var (
	ErrMissing   = errors.New("token string is empty")
	ErrNoSecret  = errors.New("jwt secret key is empty")
	ErrExpired   = errors.New("token has expired")
	ErrSignature = errors.New("token signature is invalid")
	ErrMalformed = errors.New("token is malformed")
)

// Claims carry the account id and role of an access token. The registered
// ID (jti) is what logout revokes.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issued is a signed token together with the claims needed to revoke it.
type Issued struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// GenerateJWT signs a token for the user. Every token carries a fresh id so
// it can be revoked on its own.
func GenerateJWT(userID uint, userRole string, secretKey string, expiryMinutes int) (*Issued, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(expiryMinutes) * time.Minute)
	claims := Claims{
		UserID: userID,
		Role:   userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Issued{Token: signed, ID: claims.ID, ExpiresAt: expiresAt}, nil
}

// ValidateJWT checks the signature, issuer and expiry of an HS256 token and
// returns its claims.
func ValidateJWT(raw string, secretKey string) (*Claims, error) {
	switch {
	case raw == "":
		return nil, ErrMissing
	case secretKey == "":
		return nil, ErrNoSecret
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignature
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.UserID == 0 || claims.ID == "" {
		return nil, fmt.Errorf("%w: user_id and jti claims are required", ErrMalformed)
	}
	return &claims, nil
}
