package middleware

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为上传文件添加 Cache-Control 头
// 缓存策略由 ConfigStaticCacheControl 配置决定
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := appService.GetString(consts.ConfigStaticCacheControl)
		if cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
