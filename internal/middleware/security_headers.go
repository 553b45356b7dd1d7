package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// apiCSP 接口只返回 JSON 或图片字节，不需要加载任何资源
	apiCSP = "default-src 'none'; frame-ancestors 'none'"
	// uploadCSP 上传的 SVG 与站点同源，禁止其中的脚本与外链资源
	uploadCSP = "default-src 'none'; img-src 'self' data:; style-src 'unsafe-inline'; sandbox"
)

// SecurityHeaders 添加安全响应头，uploadPrefix 下的文件使用更严格的 CSP
func SecurityHeaders(uploadPrefix string) gin.HandlerFunc {
	uploadPrefix = "/" + strings.Trim(uploadPrefix, "/") + "/"
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")

		if strings.HasPrefix(c.Request.URL.Path, uploadPrefix) {
			c.Header("Content-Security-Policy", uploadCSP)
			// 纪念站点在另一个源上嵌入这些图片
			c.Header("Cross-Origin-Resource-Policy", "cross-origin")
		} else {
			c.Header("Content-Security-Policy", apiCSP)
		}

		c.Next()
	}
}
