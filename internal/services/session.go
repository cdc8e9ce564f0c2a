package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/velja/jobboard-api/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionRevoked     = errors.New("session has been closed")
)

type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionToken is the opened admin session handed back to the caller.
type SessionToken struct {
	Token     string
	ExpiresIn int64
}

// SessionService is the gate in front of the admin area: a password exchange
// opens a time-bound session token, closing a session revokes its id until
// the token would have expired anyway.
type SessionService struct {
	secret       []byte
	passwordHash [sha256.Size]byte
	expiry       time.Duration
	sessions     storage.SessionStore
}

func NewSessionService(secret, adminPassword string, expiry time.Duration, sessions storage.SessionStore) *SessionService {
	return &SessionService{
		secret:       []byte(secret),
		passwordHash: sha256.Sum256([]byte(adminPassword)),
		expiry:       expiry,
		sessions:     sessions,
	}
}

func (s *SessionService) Open(password string) (*SessionToken, error) {
	supplied := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(supplied[:], s.passwordHash[:]) != 1 {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "jobboard-api",
			Subject:   "admin",
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &SessionToken{
		Token:     signed,
		ExpiresIn: int64(s.expiry.Seconds()),
	}, nil
}

func (s *SessionService) Validate(ctx context.Context, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session state: %w", err)
	}
	if revoked {
		return nil, ErrSessionRevoked
	}

	return claims, nil
}

// Close revokes the session carried by the token. Closing an already
// invalid or expired token is a no-op success.
func (s *SessionService) Close(ctx context.Context, tokenString string) error {
	claims, err := s.Validate(ctx, tokenString)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.sessions.Revoke(ctx, claims.ID, ttl)
}

func (s *SessionService) Expiry() time.Duration {
	return s.expiry
}
