package gate

import (
	"testing"

	"github.com/indigenous-connect/server/internal/session"
	"github.com/stretchr/testify/assert"
)

func activeUser(role string) *session.Claims {
	return &session.Claims{
		UserID:   "1",
		Fullname: "Test User",
		Email:    "a@x.com",
		Role:     role,
		Status:   session.StatusActive,
	}
}

func pendingUser(role string) *session.Claims {
	claims := activeUser(role)
	claims.Status = session.StatusPending
	return claims
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want RouteCategory
	}{
		{"/admin/login", CategoryAuthEntry},
		{"/admin", CategoryProtectedAdmin},
		{"/admin/dashboard", CategoryProtectedAdmin},
		{"/admin/users/42/role", CategoryProtectedAdmin},
		{"/blog", CategoryProtectedMembership},
		{"/blog/42", CategoryProtectedMembership},
		{"/", CategoryPublic},
		{"/projects", CategoryPublic},
		{"/pending", CategoryPublic},
		{"/login", CategoryPublic},
		{"/contact", CategoryPublic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.path), "path %s", tt.path)
	}
}

func TestDecide_AnonymousProtectedPathsRedirectToLogin(t *testing.T) {
	tests := []struct {
		path     string
		rawQuery string
		want     string
	}{
		{"/admin/dashboard", "", "/login?from=%2Fadmin%2Fdashboard"},
		{"/admin/users", "", "/login?from=%2Fadmin%2Fusers"},
		{"/blog", "", "/login?from=%2Fblog"},
		{"/blog/42", "", "/login?from=%2Fblog%2F42"},
		// original query string travels along in the from parameter
		{"/admin/dashboard", "tab=users", "/login?from=%2Fadmin%2Fdashboard%3Ftab%3Dusers"},
	}

	for _, tt := range tests {
		d := Decide(tt.path, tt.rawQuery, nil)
		assert.False(t, d.Allow, "path %s", tt.path)
		assert.Equal(t, tt.want, d.RedirectTo, "path %s", tt.path)
	}
}

func TestDecide_AnonymousAuthEntryAllowed(t *testing.T) {
	d := Decide(PathAuthEntry, "", nil)
	assert.True(t, d.Allow)
}

func TestDecide_AnonymousPublicPathsAllowed(t *testing.T) {
	// the matcher is exhaustive: paths outside /admin and /blog always
	// pass, even with no session
	for _, path := range []string{"/", "/projects", "/skills", "/contact", "/pending", "/login", "/register"} {
		d := Decide(path, "", nil)
		assert.True(t, d.Allow, "path %s", path)
	}
}

func TestDecide_PendingDominatesEverything(t *testing.T) {
	// a pending account has no usable privileges regardless of role
	for _, role := range []string{session.RoleUser, session.RoleModerator, session.RoleAdmin} {
		for _, path := range []string{"/", "/blog/42", "/admin/dashboard", "/admin/login", "/projects"} {
			d := Decide(path, "", pendingUser(role))
			assert.False(t, d.Allow, "role %s path %s", role, path)
			assert.Equal(t, PathPending, d.RedirectTo, "role %s path %s", role, path)
		}
	}
}

func TestDecide_PendingPageItselfAllowed(t *testing.T) {
	d := Decide(PathPending, "", pendingUser(session.RoleAdmin))
	assert.True(t, d.Allow)
}

func TestDecide_AuthenticatedBouncedOffAuthEntry(t *testing.T) {
	for _, role := range []string{session.RoleUser, session.RoleModerator, session.RoleAdmin} {
		d := Decide(PathAuthEntry, "", activeUser(role))
		assert.False(t, d.Allow, "role %s", role)
		assert.Equal(t, PathDashboard, d.RedirectTo, "role %s", role)
	}
}

func TestDecide_NonAdminRolesRedirectedHome(t *testing.T) {
	for _, role := range []string{session.RoleUser, session.RoleModerator} {
		for _, path := range []string{"/admin", "/admin/dashboard", "/admin/comments", "/admin/users"} {
			d := Decide(path, "", activeUser(role))
			assert.False(t, d.Allow, "role %s path %s", role, path)
			assert.Equal(t, PathHome, d.RedirectTo, "role %s path %s", role, path)
		}
	}
}

func TestDecide_ActiveAdminAllowedEverywhere(t *testing.T) {
	for _, path := range []string{"/admin", "/admin/dashboard", "/admin/users", "/blog/42", "/"} {
		d := Decide(path, "", activeUser(session.RoleAdmin))
		assert.True(t, d.Allow, "path %s", path)
	}
}

func TestDecide_ActiveMemberAllowedOnBlog(t *testing.T) {
	d := Decide("/blog/42", "", activeUser(session.RoleUser))
	assert.True(t, d.Allow)
}

func TestDecide_SuspendedAndInactiveNotIntercepted(t *testing.T) {
	// only pending has a dedicated interception; other non-active states
	// pass the gate and are the content API's concern
	claims := activeUser(session.RoleUser)
	claims.Status = session.StatusSuspended

	d := Decide("/blog/42", "", claims)
	assert.True(t, d.Allow)
}

func TestDecide_Scenarios(t *testing.T) {
	// active member reads a post
	d := Decide("/blog/42", "", activeUser(session.RoleUser))
	assert.True(t, d.Allow)

	// same identity pending is intercepted
	d = Decide("/blog/42", "", pendingUser(session.RoleUser))
	assert.Equal(t, PathPending, d.RedirectTo)

	// anonymous deep link keeps its destination and query
	d = Decide("/admin/dashboard", "tab=users", nil)
	assert.Equal(t, "/login?from=%2Fadmin%2Fdashboard%3Ftab%3Dusers", d.RedirectTo)

	// active moderator may not enter the admin area
	d = Decide("/admin/comments", "", activeUser(session.RoleModerator))
	assert.Equal(t, PathHome, d.RedirectTo)
}

func TestDecide_Deterministic(t *testing.T) {
	claims := activeUser(session.RoleModerator)

	first := Decide("/admin/comments", "", claims)
	second := Decide("/admin/comments", "", claims)

	assert.Equal(t, first, second)
}
