package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	ping := rg.Group("/ping")

	// Ping godoc
	// @Summary      Health check
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /ping [get]
	ping.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
