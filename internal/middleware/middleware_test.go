package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// router installs sessions and a fake login endpoint for the guards.
func router(m *session.Manager) *gin.Engine {
	r := gin.New()
	r.Use(m.Middleware())

	r.GET("/as/:who", func(c *gin.Context) {
		switch c.Param("who") {
		case "admin":
			m.Login(c, user.Identity{ID: 1, Name: "Boss", Admin: true})
		case "user":
			m.Login(c, user.Identity{ID: 3, Name: "Ana"})
		}
		c.Status(http.StatusNoContent)
	})

	ok := func(c *gin.Context) {
		id, _ := Identity(c)
		c.String(http.StatusOK, id.Name)
	}
	r.GET("/any", RequireUser(), ok)
	r.GET("/customer", RequireCustomer(), ok)
	r.GET("/admin", RequireAdmin(), ok)
	return r
}

func cookieFor(t *testing.T, r *gin.Engine, who string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/as/"+who, nil))
	var last *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			last = ck
		}
	}
	if last == nil {
		t.Fatalf("no session cookie for %s", who)
	}
	return last
}

func TestGuards(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore(), session.Options{Secret: "s", TTL: time.Hour}, nil)
	r := router(m)

	anon := cookieFor(t, r, "nobody")
	usr := cookieFor(t, r, "user")
	adm := cookieFor(t, r, "admin")

	cases := []struct {
		path     string
		cookie   *http.Cookie
		status   int
		location string
	}{
		{"/any", anon, http.StatusFound, "/login"},
		{"/any", usr, http.StatusOK, ""},
		{"/any", adm, http.StatusOK, ""},
		{"/customer", usr, http.StatusOK, ""},
		{"/customer", adm, http.StatusFound, "/dashboard"},
		{"/customer", anon, http.StatusFound, "/login"},
		{"/admin", usr, http.StatusFound, "/login"},
		{"/admin", adm, http.StatusOK, ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.AddCookie(tc.cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.status {
			t.Fatalf("%s: status %d, want %d", tc.path, w.Code, tc.status)
		}
		if loc := w.Header().Get("Location"); loc != tc.location {
			t.Fatalf("%s: location %q, want %q", tc.path, loc, tc.location)
		}
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(2, zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("other clients must have their own bucket, got %d", w.Code)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://shelter.example"}))
	r.GET("/availableSlots", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	req := httptest.NewRequest(http.MethodGet, "/availableSlots", nil)
	req.Header.Set("Origin", "https://shelter.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shelter.example" {
		t.Fatalf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/availableSlots", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin should be refused, got %d", w.Code)
	}
}
