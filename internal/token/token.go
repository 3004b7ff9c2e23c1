// Package token issues and checks the bearer tokens handed out at login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("token: signing secret is empty")
	ErrInvalidToken = errors.New("token: invalid or expired token")
)

// Claims carried by every token.
type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Signer interface {
	Sign(userID int, email string) (string, error)
}

type Verifier interface {
	Verify(raw string) (*Claims, error)
}

// HMAC signs HS256 tokens with a shared secret.
type HMAC struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ Signer   = (*HMAC)(nil)
	_ Verifier = (*HMAC)(nil)
)

func NewHMAC(secret string, ttl time.Duration) (*HMAC, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &HMAC{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (h *HMAC) TTL() time.Duration { return h.ttl }

func (h *HMAC) Sign(userID int, email string) (string, error) {
	now := h.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

func (h *HMAC) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	return claims, nil
}
