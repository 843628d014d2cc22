package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "ic_session"
	cookieKey  = "token"
)

// cookieJar carries the signed session token in an HttpOnly cookie.
// the client owns the cookie for the life of one browser session; the
// server only reads it.
type cookieJar struct {
	store *sessions.CookieStore
}

func newCookieJar(secret, environment string) *cookieJar {
	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   environment == "production",
		SameSite: http.SameSiteLaxMode,
	}

	return &cookieJar{store: store}
}

// stores a freshly minted session token on the response
func (m *Manager) IssueCookie(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := m.cookies.store.Get(r, cookieName) //nolint:errcheck // a broken cookie yields a fresh session
	sess.Values[cookieKey] = token
	return sess.Save(r, w)
}

// removes the session cookie
func (m *Manager) ClearCookie(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.cookies.store.Get(r, cookieName) //nolint:errcheck
	sess.Options.MaxAge = -1
	delete(sess.Values, cookieKey)
	return sess.Save(r, w)
}

// reads and verifies session claims from the request cookie.
// returns nil on absence or any verification failure - the gate treats
// both identically as "no session".
func (m *Manager) ClaimsFromRequest(r *http.Request) *Claims {
	sess, err := m.cookies.store.Get(r, cookieName)
	if err != nil {
		return nil
	}

	token, ok := sess.Values[cookieKey].(string)
	if !ok || token == "" {
		return nil
	}

	claims, err := m.Verify(token)
	if err != nil {
		return nil
	}

	return claims
}
