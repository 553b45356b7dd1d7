package middleware

import (
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 记录每个请求的次数与耗时。path 使用路由模板，避免高基数标签。
func Metrics(m *metrics.Metrics, skipPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || c.Request.URL.Path == skipPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
