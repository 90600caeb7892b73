package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API endpoints onto the router. Unsupported
// methods on known paths answer 405.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	group := router.Group("/api")
	group.POST("/receive-data", h.PostReading)
	group.GET("/receive-data", h.GetReadings)
	group.GET("/control", h.GetControl)
	group.POST("/control", h.PostControl)
	group.POST("/verify-token", h.VerifyToken)
	group.GET("/devices/status", h.GetDeviceStatus)
}
