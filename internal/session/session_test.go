package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(m *Manager) *gin.Engine {
	r := gin.New()
	r.Use(m.Middleware())

	r.GET("/flash", func(c *gin.Context) {
		Get(c).AddFlash("success", "saved")
		c.Status(http.StatusNoContent)
	})
	r.GET("/read", func(c *gin.Context) {
		var msgs []string
		for _, f := range Get(c).PopFlashes() {
			msgs = append(msgs, f.Message)
		}
		u, ok := Get(c).User()
		c.JSON(http.StatusOK, gin.H{"flashes": msgs, "logged_in": ok, "name": u.Name})
	})
	r.GET("/login", func(c *gin.Context) {
		m.Login(c, user.Identity{ID: 3, Name: "Ana", Email: "ana@example.com"})
		c.Status(http.StatusNoContent)
	})
	r.GET("/logout", func(c *gin.Context) {
		_ = m.Logout(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func lastSID(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			found = ck
		}
	}
	return found
}

func do(r *gin.Engine, path string, ck *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if ck != nil {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFlashSurvivesOneRequest(t *testing.T) {
	m := NewManager(NewMemoryStore(), Options{Secret: "test-secret", TTL: time.Hour}, nil)
	r := newRouter(m)

	w := do(r, "/flash", nil)
	ck := lastSID(t, w)
	if ck == nil || !ck.HttpOnly {
		t.Fatalf("expected an HttpOnly sid cookie, got %+v", ck)
	}

	w = do(r, "/read", ck)
	if body := w.Body.String(); body != `{"flashes":["saved"],"logged_in":false,"name":""}` {
		t.Fatalf("first read = %s", body)
	}
	if lastSID(t, w) != nil {
		t.Fatalf("a valid session must not be reissued")
	}

	w = do(r, "/read", ck)
	if body := w.Body.String(); body != `{"flashes":null,"logged_in":false,"name":""}` {
		t.Fatalf("flash should be consumed, got %s", body)
	}
}

func TestLoginRotatesIDAndLogoutDestroys(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, Options{Secret: "test-secret", TTL: time.Hour}, nil)
	r := newRouter(m)

	anon := lastSID(t, do(r, "/flash", nil))
	anonID, ok := m.verify(anon.Value)
	if !ok {
		t.Fatalf("anonymous cookie should verify")
	}

	logged := lastSID(t, do(r, "/login", anon))
	loggedID, ok := m.verify(logged.Value)
	if !ok || loggedID == anonID {
		t.Fatalf("login must rotate the session id")
	}
	if _, err := store.Load(context.Background(), anonID); err != ErrNotFound {
		t.Fatalf("old session should be deleted, got %v", err)
	}

	w := do(r, "/read", logged)
	if body := w.Body.String(); body != `{"flashes":["saved"],"logged_in":true,"name":"Ana"}` {
		t.Fatalf("flashes and user should carry over, got %s", body)
	}

	w = do(r, "/logout", logged)
	if ck := lastSID(t, w); ck == nil || ck.MaxAge >= 0 {
		t.Fatalf("logout should expire the cookie, got %+v", ck)
	}
	if _, err := store.Load(context.Background(), loggedID); err != ErrNotFound {
		t.Fatalf("session should be gone after logout, got %v", err)
	}

	w = do(r, "/read", logged)
	if body := w.Body.String(); body != `{"flashes":null,"logged_in":false,"name":""}` {
		t.Fatalf("old cookie must not restore the user, got %s", body)
	}
}

func TestTamperedCookieStartsFreshSession(t *testing.T) {
	m := NewManager(NewMemoryStore(), Options{Secret: "test-secret", TTL: time.Hour}, nil)
	other := NewManager(NewMemoryStore(), Options{Secret: "another-secret", TTL: time.Hour}, nil)
	r := newRouter(m)

	forged, err := other.sign("someone-elses-id")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := do(r, "/read", &http.Cookie{Name: CookieName, Value: forged})
	ck := lastSID(t, w)
	if ck == nil {
		t.Fatalf("expected a fresh cookie")
	}
	if id, ok := m.verify(ck.Value); !ok || id == "someone-elses-id" {
		t.Fatalf("forged id must not be adopted")
	}

	if _, ok := m.verify("not-a-jwt"); ok {
		t.Fatalf("garbage must not verify")
	}
}

func TestExpiredCookieIsRejected(t *testing.T) {
	m := NewManager(NewMemoryStore(), Options{Secret: "s", TTL: time.Minute}, nil)
	start := time.Now()
	m.now = func() time.Time { return start }

	raw, err := m.sign("abc")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, ok := m.verify(raw); ok {
		t.Fatalf("expired token must not verify")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	if err := s.Save(ctx, "a", &Data{Flashes: []Flash{{Kind: "info", Message: "hi"}}}, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, "b", &Data{}, time.Hour); err != nil {
		t.Fatalf("Save: %v", err)
	}

	d, err := s.Load(ctx, "a")
	if err != nil || len(d.Flashes) != 1 {
		t.Fatalf("Load = %+v, %v", d, err)
	}

	d.Flashes = nil
	again, _ := s.Load(ctx, "a")
	if len(again.Flashes) != 1 {
		t.Fatalf("loaded data must not alias the store")
	}

	now = now.Add(2 * time.Minute)
	if _, err := s.Load(ctx, "a"); err != ErrNotFound {
		t.Fatalf("expected expiry, got %v", err)
	}
	if n := s.Sweep(); n != 0 {
		t.Fatalf("Sweep removed %d, want 0 (a already evicted, b alive)", n)
	}

	now = now.Add(time.Hour)
	if n := s.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
}

// TestRedisStore runs only when a Redis server is available.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	s := NewRedisStore(client)
	ctx := context.Background()
	u := user.Identity{ID: 9, Name: "Zed", Email: "zed@example.com"}

	if err := s.Save(ctx, "redis-test", &Data{User: &u}, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	d, err := s.Load(ctx, "redis-test")
	if err != nil || d.User == nil || d.User.Name != "Zed" {
		t.Fatalf("Load = %+v, %v", d, err)
	}
	if err := s.Delete(ctx, "redis-test"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "redis-test"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
