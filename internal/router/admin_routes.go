package router

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/middleware"
	assethandler "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/handler"
	settingshandler "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/handler"
	systemhandler "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(
	api *gin.RouterGroup,
	assetHandler *assethandler.Handler,
	settingsHandler *settingshandler.Handler,
	systemHandler *systemhandler.Handler,
) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", systemHandler.GetServerStats)

	adminGroup.GET("/settings", settingsHandler.GetSettings)
	adminGroup.PATCH("/settings", settingsHandler.UpdateSettings)

	adminGroup.GET("/assets", assetHandler.GetAssetList)
	adminGroup.POST("/assets/delete", assetHandler.DeleteAssetByRef)
	adminGroup.GET("/assets/:id", assetHandler.GetAsset)
	adminGroup.DELETE("/assets/:id", assetHandler.DeleteAsset)
}
