package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/middleware"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
)

const baseTemplate = "base"

// render fills the layout fields every page reads and draws the base template.
func render(c *gin.Context, status int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := session.Get(c)
	data["Page"] = page
	data["Title"] = title
	data["Flashes"] = sess.PopFlashes()
	if u, ok := sess.User(); ok {
		data["CurrentUser"] = u
	}

	c.HTML(status, baseTemplate, data)
}

// --------------------------------------------------
// Flash + redirect
// --------------------------------------------------

func flash(c *gin.Context, kind, message string) {
	session.Get(c).AddFlash(kind, message)
}

func redirect(c *gin.Context, to string) {
	c.Redirect(http.StatusFound, to)
}

// fail flashes the public message for err and redirects. Errors that are not
// business errors are logged first.
func fail(c *gin.Context, err error, to string) {
	logUnexpected(c, err)
	flash(c, "danger", httperr.Message(err))
	redirect(c, to)
}

// statusFor is the status used when a form is re-rendered with an error.
func statusFor(err error) int {
	if httperr.KindOf(err) == 0 {
		return http.StatusInternalServerError
	}
	return httperr.Status(err)
}

func logUnexpected(c *gin.Context, err error) {
	if err == nil || httperr.KindOf(err) != 0 {
		return
	}
	middleware.Logger(c).Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
}

// --------------------------------------------------
// Binding
// --------------------------------------------------

// bind decodes the request form into obj. A body that cannot be decoded is
// reported as invalid_form instead of being treated as an empty form.
func bind(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		middleware.Logger(c).Debug("form bind failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		return httperr.Validation("invalid_form")
	}
	return nil
}

// --------------------------------------------------
// Params
// --------------------------------------------------

// paramID parses a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	return parseID(c.Param(name))
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func actor(c *gin.Context) uint {
	id, _ := middleware.Identity(c)
	return id.ID
}
