package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campussync/internal/apperr"
	"campussync/internal/auth"
	"campussync/internal/metrics"
	"campussync/internal/session"
)

// AuthHandlers serves the login and logout endpoints. Which credential table
// a login hits is decided by the endpoint the form posts to; there is no
// unified identity lookup.
type AuthHandlers struct {
	svc      *auth.Service
	sessions *session.Manager
	secure   bool // Secure flag on the session cookie, on outside dev
}

// NewAuthHandlers builds the handlers.
func NewAuthHandlers(svc *auth.Service, sessions *session.Manager, secureCookie bool) *AuthHandlers {
	return &AuthHandlers{svc: svc, sessions: sessions, secure: secureCookie}
}

// LoginAdmin handles the admin login form (username, password).
func (h *AuthHandlers) LoginAdmin(c *gin.Context) {
	h.login(c, session.RoleAdmin, func() (session.Principal, error) {
		return h.svc.LoginAdmin(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	}, "/admin")
}

// LoginStudent handles the student login form (email, password).
func (h *AuthHandlers) LoginStudent(c *gin.Context) {
	h.login(c, session.RoleStudent, func() (session.Principal, error) {
		return h.svc.LoginStudent(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	}, "/student")
}

// LoginFaculty handles the faculty login form (email, password).
func (h *AuthHandlers) LoginFaculty(c *gin.Context) {
	h.login(c, session.RoleFaculty, func() (session.Principal, error) {
		return h.svc.LoginFaculty(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	}, "/faculty")
}

func (h *AuthHandlers) login(c *gin.Context, role session.Role, attempt func() (session.Principal, error), home string) {
	p, err := attempt()
	switch {
	case errors.Is(err, apperr.ErrAuthFailed):
		metrics.LoginAttempt(string(role), "denied")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	case err != nil:
		metrics.LoginAttempt(string(role), "error")
		log.Printf("login failed for role %s: %v", role, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.ErrRequestFailed.Error()})
		return
	}

	cookie, err := h.sessions.Create(c.Request.Context(), p)
	if err != nil {
		metrics.LoginAttempt(string(role), "error")
		log.Printf("session create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.ErrRequestFailed.Error()})
		return
	}
	metrics.LoginAttempt(string(role), "ok")
	c.SetCookie(session.CookieName, cookie, int(h.sessions.TTL().Seconds()), "/", "", h.secure, true)
	c.Redirect(http.StatusSeeOther, home)
}

// Logout destroys the session and clears the cookie. Logging out without a
// session is not an error.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Destroy(c.Request.Context(), cookie); err != nil {
			log.Printf("session destroy failed: %v", err)
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, session.LoginPath)
}
