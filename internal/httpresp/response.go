package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Array writes data as a JSON array; a nil slice is sent as [] rather than null.
func Array[T any](c *gin.Context, status int, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(status, data)
}
