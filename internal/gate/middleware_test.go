package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(t *testing.T, mgr *session.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(mgr))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/", ok)
	router.GET("/pending", ok)
	router.GET("/login", ok)
	router.GET("/blog/:id", ok)
	router.GET("/admin/login", ok)
	router.GET("/admin/dashboard", ok)

	return router
}

// issues a cookie for the given claims and returns its header value
func sessionCookie(t *testing.T, mgr *session.Manager, claims *session.Claims) *http.Cookie {
	t.Helper()

	token, err := mgr.Mint(claims)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, mgr.IssueCookie(rec, req, token))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestMiddleware_AnonymousBlogRedirects(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)
	router := newGatedRouter(t, mgr)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/42", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fblog%2F42", rec.Header().Get("Location"))
}

func TestMiddleware_GarbageCookieTreatedAsAnonymous(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)
	router := newGatedRouter(t, mgr)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "ic_session", Value: "not-a-session"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fadmin%2Fdashboard", rec.Header().Get("Location"))
}

func TestMiddleware_ActiveAdminPassesAndClaimsInContext(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(mgr))
	router.GET("/admin/dashboard", func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		require.NotNil(t, claims)
		assert.Equal(t, session.RoleAdmin, claims.Role)
		c.Status(http.StatusOK)
	})

	claims := &session.Claims{UserID: "1", Role: session.RoleAdmin, Status: session.StatusActive}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(sessionCookie(t, mgr, claims))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_PendingAdminInterceptedEverywhere(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)
	router := newGatedRouter(t, mgr)

	claims := &session.Claims{UserID: "1", Role: session.RoleAdmin, Status: session.StatusPending}
	cookie := sessionCookie(t, mgr, claims)

	for _, path := range []string{"/admin/dashboard", "/admin/login", "/blog/42", "/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, "path %s", path)
		assert.Equal(t, "/pending", rec.Header().Get("Location"), "path %s", path)
	}
}

func TestMiddleware_NonAdminRedirectedHome(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)
	router := newGatedRouter(t, mgr)

	claims := &session.Claims{UserID: "1", Role: session.RoleModerator, Status: session.StatusActive}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(sessionCookie(t, mgr, claims))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestMiddleware_AuthenticatedBouncedOffLoginPage(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)
	router := newGatedRouter(t, mgr)

	claims := &session.Claims{UserID: "1", Role: session.RoleUser, Status: session.StatusActive}

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(sessionCookie(t, mgr, claims))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
}

func TestMiddleware_PublicPathUntouchedForAnonymous(t *testing.T) {
	mgr := session.NewManager("test-secret", "test", nil)
	router := newGatedRouter(t, mgr)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
