package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	coreport "luckyten/internal/domain/port/core"
)

// ErrInvalidToken is returned when a token fails parsing or validation
var ErrInvalidToken = errors.New("invalid token")

// PlayerClaims are the JWT claims carried by an issued session token
type PlayerClaims struct {
	jwt.RegisteredClaims
	PlayerID uint64 `json:"playerId"`
	Login    string `json:"login"`
}

// Issuer issues and verifies HS256 session tokens for authenticated players
type Issuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewIssuer creates a token issuer. The secret must be non-empty.
func NewIssuer(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &Issuer{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for the given player, returning the token string and
// its expiry
func (i *Issuer) Issue(playerID uint64, login string) (string, time.Time, error) {
	now := i.timeProvider.Now()
	expiresAt := now.Add(i.ttl)

	claims := PlayerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "luckyten",
			Subject:   fmt.Sprintf("%d", playerID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		PlayerID: playerID,
		Login:    login,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses a token string and returns its claims. Expired, malformed
// and wrongly signed tokens all return ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*PlayerClaims, error) {
	claims := &PlayerClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.timeProvider.Now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.PlayerID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
