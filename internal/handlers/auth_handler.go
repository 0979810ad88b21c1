package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/middleware"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

type AuthHandler struct {
	auth          *ucUser.Auth
	sessions      *session.Manager
	secureCookies bool
}

func NewAuthHandler(
	auth *ucUser.Auth,
	sessions *session.Manager,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

// ======================================================
// REGISTER
// ======================================================

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register", "Register", gin.H{
		"Form": accountForm{},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form accountForm
	if err := bind(c, &form); err != nil {
		h.registerError(c, form, err)
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), form.input()); err != nil {
		h.registerError(c, form, err)
		return
	}

	flash(c, "success", "Registration successful! Please log in.")
	redirect(c, "/login")
}

func (h *AuthHandler) registerError(c *gin.Context, form accountForm, err error) {
	logUnexpected(c, err)
	form.Password = ""
	render(c, statusFor(err), "register", "Register", gin.H{
		"Error": httperr.Message(err),
		"Form":  form,
	})
}

// ======================================================
// LOGIN / LOGOUT
// ======================================================

func (h *AuthHandler) LoginPage(c *gin.Context) {
	email := readRememberedEmail(c)
	render(c, http.StatusOK, "login", "Login", gin.H{
		"Email":      email,
		"RememberMe": email != "",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := bind(c, &form); err != nil {
		h.loginError(c, form, err)
		return
	}

	identity, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		h.loginError(c, form, err)
		return
	}

	h.sessions.Login(c, identity)

	if form.remember() {
		writeRememberedEmail(c, identity.Email, h.secureCookies)
	} else {
		clearRememberedEmail(c, h.secureCookies)
	}

	flash(c, "success", "Welcome back, "+identity.Name+"!")
	if identity.Admin {
		redirect(c, "/dashboard")
		return
	}
	redirect(c, "/")
}

func (h *AuthHandler) loginError(c *gin.Context, form loginForm, err error) {
	logUnexpected(c, err)
	render(c, statusFor(err), "login", "Login", gin.H{
		"Error":      httperr.Message(err),
		"Email":      form.Email,
		"RememberMe": form.remember(),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		middleware.Logger(c).Warn("session delete failed", zap.Error(err))
	}
	redirect(c, "/")
}
