package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// roles recognized by the admin gate
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// account lifecycle states
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
)

// ErrAuthFailed is the single failure surfaced by Authenticate.
// Credential rejection and transport errors are indistinguishable to
// callers; the distinction lives only in the wrapped detail for logs.
var ErrAuthFailed = errors.New("authentication failed")

// Claims is the signed session payload: a verbatim projection of the
// identity returned by the content API at login. APIToken is the opaque
// bearer credential for privileged upstream writes; it is a capability,
// not a display attribute, and never appears in page payloads.
type Claims struct {
	UserID   string `json:"user_id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Whatsapp string `json:"whatsapp"`
	APIToken string `json:"token"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	jwt.RegisteredClaims
}

// View is the identity as exposed to rendering code, without the
// upstream bearer token
type View struct {
	UserID   string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Whatsapp string `json:"whatsapp"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}
