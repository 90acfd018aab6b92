package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errInvalidBodyPref = "invalid body: "

// Request DTO for switching the floor-plan overlay.
type viewRequest struct {
	Mode string `json:"mode" binding:"required"` // standard | power | ventilation | wifi | water | thermal
}

// SetViewRequest is an exported model for Swagger docs of the view payload.
type SetViewRequest struct {
	// Mode to render. Allowed: standard, power, ventilation, wifi, water, thermal
	Mode string `json:"mode" example:"power"`
}

// @Summary      Get active view mode
// @Tags         view
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/view [get]
func (h *Handler) getView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": h.services.Viewport.View(c.Request.Context())})
}

// @Summary      Set active view mode
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      SetViewRequest  true  "View payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/view [put]
func (h *Handler) setView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	mode, err := h.services.Viewport.SetView(c.Request.Context(), req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusViewSet,
		"mode":   mode,
	})
}

// @Summary      Current selection
// @Tags         selection
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/selection [get]
func (h *Handler) getSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Viewport.Selection(c.Request.Context()))
}

// @Summary      Select a room
// @Tags         selection
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/selection/room/{id} [post]
func (h *Handler) selectRoom(c *gin.Context) {
	sel, err := h.services.Viewport.SelectRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errRoomMissing})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    statusSelected,
		"selection": sel,
	})
}

// @Summary      Select a device (also focuses its room)
// @Tags         selection
// @Produce      json
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/selection/device/{id} [post]
func (h *Handler) selectDevice(c *gin.Context) {
	sel, err := h.services.Viewport.SelectDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errDevMissing})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    statusSelected,
		"selection": sel,
	})
}

// @Summary      Back out of the device view
// @Tags         selection
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/selection/back [post]
func (h *Handler) selectionBack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    statusSelected,
		"selection": h.services.Viewport.Back(c.Request.Context()),
	})
}
