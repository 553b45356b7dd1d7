package router

import (
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/middleware"
	assethandler "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/handler"
	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerAssetRoutes(api *gin.RouterGroup, h *assethandler.Handler, appService *service.AppService, uploadTimeout time.Duration) {
	uploadLimiter := middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)
	resizeLimiter := middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitResizeRPS, consts.ConfigRateLimitResizeBurst)

	api.POST("/upload",
		middleware.JWTAuth(),
		middleware.AdminCheck(),
		middleware.Timeout(uploadTimeout),
		middleware.UploadBodyLimitMiddleware(appService),
		uploadLimiter,
		h.Upload,
	)

	api.GET("/image/resize", resizeLimiter, h.Resize)
}

// registerUploadsRoutes 上传目录的只读访问，经存储层做路径校验
func registerUploadsRoutes(r *gin.Engine, prefix string, h *assethandler.Handler, appService *service.AppService) {
	uploads := r.Group(prefix, middleware.StaticCacheMiddleware(appService))
	uploads.GET("/*filepath", h.ServeUpload)
	uploads.HEAD("/*filepath", h.ServeUpload)
}
