// Package gate decides, once per request, whether a path may be served
// or where the client is redirected instead. The decision is a pure
// function of the requested path and the session claims; rules are
// evaluated in a fixed order and the first match wins.
package gate

import (
	"net/url"
	"strings"

	"github.com/indigenous-connect/server/internal/session"
)

// literal path contract; redirect correctness depends on these values
const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathPending   = "/pending"
	PathAuthEntry = "/admin/login"
	PathDashboard = "/admin/dashboard"

	prefixAdmin = "/admin"
	prefixBlog  = "/blog"
)

// RouteCategory classifies a path for the gate; recomputed per request
type RouteCategory int

const (
	CategoryPublic RouteCategory = iota
	CategoryAuthEntry
	CategoryProtectedAdmin
	CategoryProtectedMembership
)

// Decision is the gate's verdict for one request
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Classify maps a path onto its route category. Only the /admin and
// /blog families are ever protected; everything else is public by
// contract, even for anonymous requests.
func Classify(path string) RouteCategory {
	switch {
	case strings.HasPrefix(path, PathAuthEntry):
		return CategoryAuthEntry
	case strings.HasPrefix(path, prefixAdmin):
		return CategoryProtectedAdmin
	case strings.HasPrefix(path, prefixBlog):
		return CategoryProtectedMembership
	default:
		return CategoryPublic
	}
}

// Decide runs the rule table. claims is nil when the request carried no
// token or the token failed verification; the two are equivalent here.
func Decide(path, rawQuery string, claims *session.Claims) Decision {
	category := Classify(path)

	// 1. a pending account has no usable privileges regardless of role;
	// intercept before every other rule so a pending admin cannot slip
	// through the admin-role path
	if claims != nil && claims.Status == session.StatusPending && path != PathPending {
		return redirect(PathPending)
	}

	// 2. authenticated users are bounced forward off the sign-in page
	if category == CategoryAuthEntry {
		if claims != nil {
			return redirect(PathDashboard)
		}
		return allow()
	}

	// 3. anonymous access to a protected area returns to login, keeping
	// the original destination for post-login navigation
	if claims == nil && (category == CategoryProtectedAdmin || category == CategoryProtectedMembership) {
		from := path
		if rawQuery != "" {
			from += "?" + rawQuery
		}
		return redirect(PathLogin + "?from=" + url.QueryEscape(from))
	}

	// 4. the admin area requires the admin role
	if category == CategoryProtectedAdmin && claims.Role != session.RoleAdmin {
		return redirect(PathHome)
	}

	// 5. everything else passes through unmodified
	return allow()
}
