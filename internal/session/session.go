package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/indigenous-connect/server/internal/upstream"
)

// session tokens expire after 7 days
const tokenTTL = 7 * 24 * time.Hour

// Exchanger performs the one credential exchange against the content API
type Exchanger interface {
	Login(ctx context.Context, email, password string) (*upstream.Identity, error)
}

// Manager mints, verifies and transports session claims
type Manager struct {
	secret    []byte
	exchanger Exchanger
	cookies   *cookieJar
}

// creates a session manager. environment selects cookie security flags.
func NewManager(secret, environment string, exchanger Exchanger) *Manager {
	return &Manager{
		secret:    []byte(secret),
		exchanger: exchanger,
		cookies:   newCookieJar(secret, environment),
	}
}

// Authenticate exchanges credentials for session claims. One attempt, no
// retry. Every failure mode - rejection, transport error, malformed
// identity - wraps ErrAuthFailed.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*Claims, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrAuthFailed)
	}

	identity, err := m.exchanger.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	// role and status are mandatory; an identity without either cannot be
	// gated and is treated as a failed exchange rather than minted
	if identity == nil || identity.Role == "" || identity.Status == "" {
		return nil, fmt.Errorf("%w: incomplete identity", ErrAuthFailed)
	}

	return NewClaims(identity), nil
}

// NewClaims projects an identity into session claims, field for field.
// Pure: the same identity always yields the same claims.
func NewClaims(identity *upstream.Identity) *Claims {
	return &Claims{
		UserID:   identity.ID,
		Fullname: identity.Fullname,
		Email:    identity.Email,
		Avatar:   identity.Avatar,
		Whatsapp: identity.Whatsapp,
		APIToken: identity.Token,
		Role:     identity.Role,
		Status:   identity.Status,
	}
}

// signs claims into a session token
func (m *Manager) Mint(claims *Claims) (string, error) {
	now := time.Now()

	// copy before stamping so the input claims stay untouched
	stamped := *claims
	stamped.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, stamped)
	return token.SignedString(m.secret)
}

// verifies a session token and returns its claims.
// any failure means "no session" to callers - never fail open.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// View strips the upstream bearer token from the claims for page payloads
func (c *Claims) View() View {
	return View{
		UserID:   c.UserID,
		Fullname: c.Fullname,
		Email:    c.Email,
		Avatar:   c.Avatar,
		Whatsapp: c.Whatsapp,
		Role:     c.Role,
		Status:   c.Status,
	}
}
