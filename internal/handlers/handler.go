package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"holohome/internal/logger"
	"holohome/internal/service"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live snapshot push over WebSocket on the same port.
	router.GET("/ws", h.wsConnect)

	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.listRooms)
			rooms.GET("/:id", h.getRoom)
			rooms.POST("/:id/light", h.toggleLight)
		}

		api.POST("/devices/:id/toggle", h.toggleDevice)

		api.GET("/status", h.getStatus)
		api.GET("/snapshot", h.getSnapshot)
		api.POST("/security/toggle", h.toggleSecurity)

		api.GET("/view", h.getView)
		api.PUT("/view", h.setView)

		selection := api.Group("/selection")
		{
			selection.GET("", h.getSelection)
			selection.POST("/room/:id", h.selectRoom)
			selection.POST("/device/:id", h.selectDevice)
			selection.POST("/back", h.selectionBack)
		}

		api.POST("/assistant/commands", h.submitCommand)

		api.GET("/logs", h.getLogs)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}
