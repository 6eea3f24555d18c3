package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campussync/internal/apperr"
)

// CookieName is the session cookie set at login.
const CookieName = "campussync_session"

// LoginPath is where unauthenticated or wrong-role requests are sent.
// Per the portal's policy this is a navigation outcome, not an error page.
const LoginPath = "/login"

const principalKey = "principal"

// RequireRole resolves the session cookie and rejects requests whose
// principal is absent or holds a different role. Both cases redirect to the
// login page. A session-store outage is not an auth failure: the session may
// still be valid, so the request fails with a generic 500 instead of
// bouncing the user to login. The resolved principal is stored in the gin
// context for the routing layer.
func RequireRole(m *Manager, role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		p, err := m.Authorize(c.Request.Context(), cookie, role)
		if errors.Is(err, apperr.ErrStorage) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperr.ErrRequestFailed.Error()})
			return
		}
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// FromContext returns the principal stored by RequireRole.
func FromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
