package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
)

const (
	CookieName = "sid"
	contextKey = "session"
)

type Options struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

// Manager issues the signed sid cookie and loads/saves the session behind it.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
	log    *zap.Logger
	now    func() time.Time
}

func NewManager(store Store, opts Options, log *zap.Logger) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:  store,
		secret: []byte(opts.Secret),
		ttl:    opts.TTL,
		secure: opts.Secure,
		log:    log,
		now:    time.Now,
	}
}

// Session is the per-request view of the stored data.
type Session struct {
	id        string
	data      Data
	dirty     bool
	destroyed bool
}

func (s *Session) ID() string { return s.id }

func (s *Session) User() (user.Identity, bool) {
	if s.data.User == nil {
		return user.Identity{}, false
	}
	return *s.data.User, true
}

// SetUser replaces the stored identity without rotating the session id.
func (s *Session) SetUser(u user.Identity) {
	s.data.User = &u
	s.dirty = true
}

func (s *Session) AddFlash(kind, message string) {
	s.data.Flashes = append(s.data.Flashes, Flash{Kind: kind, Message: message})
	s.dirty = true
}

// PopFlashes returns pending flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	if len(s.data.Flashes) == 0 {
		return nil
	}
	out := s.data.Flashes
	s.data.Flashes = nil
	s.dirty = true
	return out
}

// ======================================================
// Middleware
// ======================================================

func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.load(c)
		c.Set(contextKey, sess)

		c.Next()

		if sess.destroyed || !sess.dirty {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.store.Save(ctx, sess.id, &sess.data, m.ttl); err != nil {
			m.log.Error("session save failed", zap.Error(err))
		}
	}
}

func (m *Manager) load(c *gin.Context) *Session {
	if raw, err := c.Cookie(CookieName); err == nil {
		if id, ok := m.verify(raw); ok {
			sess := &Session{id: id}
			data, err := m.store.Load(c.Request.Context(), id)
			switch {
			case err == nil:
				sess.data = *data
			case !errors.Is(err, ErrNotFound):
				m.log.Warn("session load failed", zap.Error(err))
			}
			return sess
		}
	}

	sess := &Session{id: uuid.NewString()}
	m.writeCookie(c, sess.id)
	return sess
}

// Get returns the request's session. The middleware must be installed.
func Get(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{id: uuid.NewString()}
}

// Login rotates the session id and stores the identity.
func (m *Manager) Login(c *gin.Context, u user.Identity) {
	sess := Get(c)
	old := sess.id

	sess.id = uuid.NewString()
	sess.SetUser(u)
	m.writeCookie(c, sess.id)

	if err := m.store.Delete(c.Request.Context(), old); err != nil {
		m.log.Warn("old session delete failed", zap.Error(err))
	}
}

// Logout deletes the stored session and expires the cookie.
func (m *Manager) Logout(c *gin.Context) error {
	sess := Get(c)
	sess.destroyed = true
	sess.data = Data{}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)

	return m.store.Delete(c.Request.Context(), sess.id)
}

// ======================================================
// Signed cookie
// ======================================================

func (m *Manager) sign(id string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) verify(raw string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}

func (m *Manager) writeCookie(c *gin.Context, id string) {
	value, err := m.sign(id)
	if err != nil {
		m.log.Error("session sign failed", zap.Error(err))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, int(m.ttl.Seconds()), "/", "", m.secure, true)
}
