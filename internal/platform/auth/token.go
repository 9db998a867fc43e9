package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the actor profile inside the session token so the
// portal never needs a user lookup after login.
type Claims struct {
	jwt.RegisteredClaims
	Username   string `json:"username"`
	Role       string `json:"role"`
	ClinicID   string `json:"clinic_id"`
	ClinicName string `json:"clinic_name"`
}

// TokenIssuer signs and verifies portal session tokens with a shared
// HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if secret == "" {
		// Dev fallback so the portal runs without configuration.
		secret = "mysage-dev-secret-do-not-use-in-production"
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed session token for the actor.
func (ti *TokenIssuer) Issue(actor Actor) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    "mysage-portal",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
		Username:   actor.Username,
		Role:       actor.Role,
		ClinicID:   actor.ClinicID,
		ClinicName: actor.ClinicName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and returns the actor it encodes.
func (ti *TokenIssuer) Parse(tokenStr string) (Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer("mysage-portal"))
	if err != nil {
		return Actor{}, fmt.Errorf("parsing session token: %w", err)
	}
	if !token.Valid {
		return Actor{}, fmt.Errorf("invalid session token")
	}

	return Actor{
		ID:         claims.Subject,
		Username:   claims.Username,
		Role:       claims.Role,
		ClinicID:   claims.ClinicID,
		ClinicName: claims.ClinicName,
	}, nil
}
