package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shelter/internal/dto"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/httpresp"
	"github.com/BruksfildServices01/pet-shelter/internal/usecase/dashboard"
)

type AppWebHandler struct {
	overview *dashboard.GetOverview
}

func NewAppWebHandler(overview *dashboard.GetOverview) *AppWebHandler {
	return &AppWebHandler{overview: overview}
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	out, err := h.overview.Execute(c.Request.Context())
	if err != nil {
		logUnexpected(c, err)
		render(c, statusFor(err), "dashboard", "Admin Dashboard", gin.H{
			"Error": httperr.Message(err),
			"Stats": dto.DashboardStats{},
		})
		return
	}

	render(c, http.StatusOK, "dashboard", "Admin Dashboard", gin.H{
		"Stats":  out.Stats,
		"Recent": out.Recent,
	})
}

func (h *AppWebHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
