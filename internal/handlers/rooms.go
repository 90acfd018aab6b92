package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"holohome/internal/store"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusToggled  = "toggled"
	statusSelected = "selected"
	statusViewSet  = "view_set"
	statusAccepted = "analyzing"

	errListRooms    = "failed to list rooms"
	errGetRoom      = "failed to load room"
	errToggleLight  = "failed to toggle lights"
	errToggleDevice = "failed to toggle device"
	errGetStatus    = "failed to load status"
	errGetSnapshot  = "failed to load snapshot"
	errToggleSec    = "failed to toggle security"
	errRoomMissing  = "room not found"
	errDevMissing   = "device not found"
)

// notFound reports whether err is one of the store's missing-id sentinels.
func notFound(err error) bool {
	return errors.Is(err, store.ErrRoomNotFound) || errors.Is(err, store.ErrDeviceNotFound)
}

// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, rooms"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/rooms [get]
func (h *Handler) listRooms(c *gin.Context) {
	rooms, err := h.services.Home.Rooms(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListRooms, "rooms_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(rooms),
		"rooms": rooms,
	})
}

// @Summary      Get one room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/rooms/{id} [get]
func (h *Handler) getRoom(c *gin.Context) {
	room, err := h.services.Home.Room(c.Request.Context(), c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRoomMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetRoom, "room_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Toggle room lights
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  map[string]interface{}  "status, room"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/rooms/{id}/light [post]
func (h *Handler) toggleLight(c *gin.Context) {
	room, err := h.services.Home.ToggleLight(c.Request.Context(), c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRoomMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errToggleLight, "light_toggle_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusToggled,
		"room":   room,
	})
}

// @Summary      Toggle a device between active and idle
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  map[string]interface{}  "status, device"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/{id}/toggle [post]
func (h *Handler) toggleDevice(c *gin.Context) {
	device, err := h.services.Home.ToggleDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": errDevMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errToggleDevice, "device_toggle_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusToggled,
		"device": device,
	})
}

// @Summary      System status
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	st, err := h.services.Monitoring.Status(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetStatus, "status_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Full dashboard snapshot
// @Description  Same payload the websocket pushes: status, rooms, view, selection and the recent log.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snapshot [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	snap, err := h.services.Monitoring.Snapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetSnapshot, "snapshot_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Toggle security between armed and disarmed
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, system"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/security/toggle [post]
func (h *Handler) toggleSecurity(c *gin.Context) {
	st, err := h.services.Home.ToggleSecurity(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errToggleSec, "security_toggle_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusToggled,
		"system": st,
	})
}
