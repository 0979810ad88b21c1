package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ucPet "github.com/BruksfildServices01/pet-shelter/internal/usecase/pet"
)

const (
	recentlyViewedCookie  = "recentlyViewed"
	rememberedEmailCookie = "rememberedEmail"

	recentlyViewedMaxAge  = 7 * 24 * time.Hour
	rememberedEmailMaxAge = 30 * 24 * time.Hour
)

// readRecentlyViewed decodes the cookie; anything malformed reads as empty.
func readRecentlyViewed(c *gin.Context) []uint {
	raw, err := c.Cookie(recentlyViewedCookie)
	if err != nil || raw == "" {
		return nil
	}

	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	if len(ids) > ucPet.MaxRecentlyViewed {
		ids = ids[:ucPet.MaxRecentlyViewed]
	}
	return ids
}

// writeRecentlyViewed is readable by page scripts, so it is not HttpOnly.
func writeRecentlyViewed(c *gin.Context, ids []uint, secure bool) {
	b, err := json.Marshal(ids)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(recentlyViewedCookie, string(b), int(recentlyViewedMaxAge.Seconds()), "/", "", secure, false)
}

func readRememberedEmail(c *gin.Context) string {
	email, _ := c.Cookie(rememberedEmailCookie)
	return email
}

func writeRememberedEmail(c *gin.Context, email string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rememberedEmailCookie, email, int(rememberedEmailMaxAge.Seconds()), "/", "", secure, true)
}

func clearRememberedEmail(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rememberedEmailCookie, "", -1, "/", "", secure, true)
}
