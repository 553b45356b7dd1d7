package router

import (
	authhandler "github.com/hdn-james/50years-ulaw-sub000/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *authhandler.Handler) {
	api.POST("/auth/login", authLimiter, h.Login)
}
