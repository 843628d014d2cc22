package gate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/session"
)

// context keys set for downstream handlers once the gate allows a request
const (
	ContextClaims = "session_claims"
)

// Middleware applies the gate decision to every request. Decode failure
// and token absence both yield nil claims; every branch terminates in
// either next() or a silent redirect.
func Middleware(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mgr.ClaimsFromRequest(c.Request)

		decision := Decide(c.Request.URL.Path, c.Request.URL.RawQuery, claims)

		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}

		if claims != nil {
			c.Set(ContextClaims, claims)
		}

		c.Next()
	}
}

// extracts session claims from context after Middleware; nil for
// anonymous requests
func ClaimsFromContext(c *gin.Context) *session.Claims {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil
	}

	claims, ok := value.(*session.Claims)
	if !ok {
		return nil
	}

	return claims
}
