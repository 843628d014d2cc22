package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueAndExtract(t *testing.T, mgr *Manager, token string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, mgr.IssueCookie(rec, req, token))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestCookie_Roundtrip(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	token, err := mgr.Mint(NewClaims(testIdentity()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/blog/1", nil)
	req.AddCookie(issueAndExtract(t, mgr, token))

	claims := mgr.ClaimsFromRequest(req)
	require.NotNil(t, claims)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, StatusActive, claims.Status)
}

func TestCookie_AbsentMeansNoSession(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	req := httptest.NewRequest(http.MethodGet, "/blog/1", nil)

	assert.Nil(t, mgr.ClaimsFromRequest(req))
}

func TestCookie_GarbageMeansNoSession(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	req := httptest.NewRequest(http.MethodGet, "/blog/1", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "garbage"})

	assert.Nil(t, mgr.ClaimsFromRequest(req))
}

func TestCookie_ForeignSecretMeansNoSession(t *testing.T) {
	// a cookie minted under a different secret must verify as absent,
	// never as a session
	other := NewManager("other-secret", "test", nil)
	token, err := other.Mint(NewClaims(testIdentity()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/blog/1", nil)
	req.AddCookie(issueAndExtract(t, other, token))

	mgr := NewManager("secret", "test", nil)
	assert.Nil(t, mgr.ClaimsFromRequest(req))
}

func TestCookie_SecurityAttributes(t *testing.T) {
	mgr := NewManager("secret", "production", nil)

	cookie := issueAndExtract(t, mgr, "token-value")

	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
}

func TestCookie_ClearExpiresIt(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, mgr.ClearCookie(rec, req))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}
