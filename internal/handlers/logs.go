package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holohome/internal/service"
)

// @Summary      List activity log entries
// @Description  Only the 16 most recent entries are retained; older ones are evicted.
// @Tags         logs
// @Produce      json
// @Param        level   query   string  false  "Entry level"  Enums(info,warning,error,ai)
// @Param        source  query   string  false  "Entry source, e.g. user, assistant or a room name"
// @Success      200     {object}  map[string]interface{}  "count, entries"
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	entries, err := h.services.EventLog.List(c.Request.Context(), service.LogFilter{
		Level:  c.Query("level"),
		Source: c.Query("source"),
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load logs", "logs_list_failed", err,
			"level", c.Query("level"), "source", c.Query("source"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}
