package router

import (
	systemhandler "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *systemhandler.Handler) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	api.GET("/health", h.Health)
}
