package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
)

const ContextIdentity = "identity"

// Identity returns the signed-in account set by one of the Require* guards.
func Identity(c *gin.Context) (user.Identity, bool) {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(user.Identity); ok {
			return id, true
		}
	}
	return session.Get(c).User()
}

// RequireUser lets any signed-in account through.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.Get(c).User()
		if !ok {
			deny(c, "login_required", "/login")
			return
		}
		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// RequireCustomer admits adopters only; administrators are sent to the
// dashboard.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.Get(c).User()
		if !ok {
			deny(c, "login_required", "/login")
			return
		}
		if id.Admin {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Set(ContextIdentity, id)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.Get(c).User()
		if !ok {
			deny(c, "login_required", "/login")
			return
		}
		if !id.Admin {
			deny(c, "admin_only", "/login")
			return
		}
		c.Set(ContextIdentity, id)
		c.Next()
	}
}

func deny(c *gin.Context, code, to string) {
	session.Get(c).AddFlash("danger", httperr.Message(httperr.Unauthorized(code)))
	c.Redirect(http.StatusFound, to)
	c.Abort()
}
