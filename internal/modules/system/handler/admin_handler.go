package handler

import (
	"net/http"

	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetServerStats 获取服务器概览统计信息
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.AdminGetServerStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "统计资源数据失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Health 存活与依赖检查，数据库不可达时返回 503
func (h *Handler) Health(c *gin.Context) {
	resp, ok := h.systemService.Health(c.Request.Context())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
