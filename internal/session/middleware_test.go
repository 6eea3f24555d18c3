package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMiddlewareEngine(m *Manager, role Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/portal", RequireRole(m, role), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func serveWithCookie(engine *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/portal", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// A session-store outage must fail the request, not bounce a possibly
// still-valid session to the login page.
func TestRequireRoleStorageOutageIsGenericFailure(t *testing.T) {
	kv := newMapKV()
	m := newTestManager(kv)
	cookie, err := m.Create(context.Background(), Principal{Role: RoleAdmin, ID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	engine := newMiddlewareEngine(m, RoleAdmin)

	kv.failing = true
	w := serveWithCookie(engine, cookie)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Errorf("redirected to %q during a store outage", loc)
	}

	kv.failing = false
	if w := serveWithCookie(engine, cookie); w.Code != http.StatusOK {
		t.Errorf("after recovery: status %d, want 200", w.Code)
	}
}

func TestRequireRoleExpiredSessionRedirects(t *testing.T) {
	m := newTestManager(newMapKV())
	cookie, err := m.Create(context.Background(), Principal{Role: RoleAdmin, ID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := m.Destroy(context.Background(), cookie); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	w := serveWithCookie(newMiddlewareEngine(m, RoleAdmin), cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != LoginPath {
		t.Errorf("redirect = %q, want %q", loc, LoginPath)
	}
}
