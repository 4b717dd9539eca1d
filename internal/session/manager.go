package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "bookshelf"

// Claims carry the session id (jti) and the owner; the marker in the Store is authoritative
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

/* Manager issues signed tokens that point at a server-side marker.
 * A token is accepted only while its signature is valid, it is not expired and its marker exists,
 * so deleting the marker revokes the token.
 */
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

// TTL is the lifetime of issued tokens
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for marker and returns its token
func (m *Manager) Issue(ctx context.Context, marker Marker) (string, error) {
	id := uuid.NewString()
	now := time.Now()
	claims := Claims{
		Username: marker.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   marker.Email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	if err := m.store.Save(ctx, id, marker, m.ttl); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return token, nil
}

// Verify returns the marker behind a valid token
func (m *Manager) Verify(ctx context.Context, token string) (Marker, error) {
	claims, err := m.parse(token)
	if err != nil {
		return Marker{}, err
	}
	marker, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return Marker{}, err
	}
	if marker.Email != claims.Subject {
		return Marker{}, ErrInvalidToken
	}
	return marker, nil
}

// Revoke deletes the marker behind token; revoking an unknown session is not an error
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	if err := m.store.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

func (m *Manager) parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
