package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   h.parseDay(c.Query("from")),
		To:     h.parseDay(c.Query("to")),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), filter)
	if err != nil {
		logUnexpected(c, err)
		render(c, statusFor(err), "audit_logs", "Audit Log", gin.H{
			"Error":  httperr.Message(err),
			"Filter": filter,
		})
		return
	}

	render(c, http.StatusOK, "audit_logs", "Audit Log", gin.H{
		"Logs":     logs,
		"Total":    total,
		"Filter":   filter,
		"FromDate": c.Query("from"),
		"ToDate":   c.Query("to"),
		"HasPrev":  filter.Page > 1,
		"HasNext":  int64(filter.Page*filter.Limit) < total,
		"PrevPage": filter.Page - 1,
		"NextPage": filter.Page + 1,
	})
}

// parseDay ignores malformed dates, matching the lenient query filters.
func (h *AuditLogsHandler) parseDay(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", raw, h.loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
