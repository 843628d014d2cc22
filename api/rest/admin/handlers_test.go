package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/gate"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spins up a fake content API and a gated admin router in front of it
func newAdminFixture(t *testing.T, apiHandler http.HandlerFunc) (*gin.Engine, *session.Manager) {
	t.Helper()

	api := httptest.NewServer(apiHandler)
	t.Cleanup(api.Close)

	client := upstream.NewClient(api.URL)
	mgr := session.NewManager("secret", "test", nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gate.Middleware(mgr))
	RegisterRoutes(router, client)

	return router, mgr
}

func adminCookie(t *testing.T, mgr *session.Manager, role, status string) *http.Cookie {
	t.Helper()

	token, err := mgr.Mint(&session.Claims{
		UserID:   "1",
		Role:     role,
		Status:   status,
		APIToken: "admin-bearer",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.IssueCookie(rec, httptest.NewRequest(http.MethodGet, "/", nil), token))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestDashboard_ForwardsBearerToken(t *testing.T) {
	var sawAuth string

	router, mgr := newAdminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/analytics/overview" {
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(upstream.Overview{TotalUsers: 12}) //nolint:errcheck
			return
		}
		w.Write([]byte("[]")) //nolint:errcheck
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(adminCookie(t, mgr, session.RoleAdmin, session.StatusActive))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer admin-bearer", sawAuth)
	assert.Contains(t, rec.Body.String(), `"totalUsers":12`)
}

func TestDashboard_ChartsDegradeIndependently(t *testing.T) {
	router, mgr := newAdminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/analytics/overview":
			json.NewEncoder(w).Encode(upstream.Overview{TotalVisits: 7}) //nolint:errcheck
		case strings.HasPrefix(r.URL.Path, "/analytics/visit/"):
			w.WriteHeader(http.StatusInternalServerError)
		case r.URL.Path == "/analytics/country":
			json.NewEncoder(w).Encode([]upstream.CountryStat{{Country: "NZ", Visits: 5}}) //nolint:errcheck
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(adminCookie(t, mgr, session.RoleAdmin, session.StatusActive))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// broken visit chart must not take down the dashboard
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalVisits":7`)
	assert.Contains(t, rec.Body.String(), `"country":[{"country":"NZ","visits":5}]`)
}

func TestAdminArea_ModeratorRedirectedHome(t *testing.T) {
	router, mgr := newAdminFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("[]")) //nolint:errcheck
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/comments", nil)
	req.AddCookie(adminCookie(t, mgr, session.RoleModerator, session.StatusActive))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAdminArea_PendingAdminIntercepted(t *testing.T) {
	router, mgr := newAdminFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("[]")) //nolint:errcheck
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(adminCookie(t, mgr, session.RoleAdmin, session.StatusPending))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/pending", rec.Header().Get("Location"))
}

func TestUpdateUserStatus_ValidatesAndForwards(t *testing.T) {
	var sawPath, sawStatus string

	router, mgr := newAdminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		sawPath = r.URL.Path

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		sawStatus = body["status"]

		w.WriteHeader(http.StatusOK)
	})

	cookie := adminCookie(t, mgr, session.RoleAdmin, session.StatusActive)

	req := httptest.NewRequest(http.MethodPut, "/admin/users/7/status",
		strings.NewReader(`{"status":"active"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/users/7/status", sawPath)
	assert.Equal(t, "active", sawStatus)

	// unknown status values are rejected before any upstream call
	bad := httptest.NewRequest(http.MethodPut, "/admin/users/7/status",
		strings.NewReader(`{"status":"banned"}`))
	bad.Header.Set("Content-Type", "application/json")
	bad.AddCookie(cookie)

	badRec := httptest.NewRecorder()
	router.ServeHTTP(badRec, bad)

	assert.Equal(t, http.StatusBadRequest, badRec.Code)
}

func TestLoginPage_ReachableAnonymously(t *testing.T) {
	router, _ := newAdminFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("[]")) //nolint:errcheck
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
