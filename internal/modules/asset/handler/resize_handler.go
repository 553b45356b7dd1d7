package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Resize(c *gin.Context) {
	var q moduledto.ResizeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "参数错误")
		return
	}

	out, err := h.assetService.Resize(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err, "图片处理失败")
		return
	}

	c.Header("Cache-Control", resizeCacheControl())
	c.Header("Content-Length", strconv.Itoa(len(out.Data)))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

func resizeCacheControl() string {
	maxAge := config.Get().Image.ResizeCacheMaxAge
	if maxAge <= 0 {
		return consts.DefaultCacheControl
	}
	return fmt.Sprintf("public, max-age=%d, immutable", maxAge)
}

// ServeUpload 提供上传目录的静态访问；Cache-Control 由 StaticCacheMiddleware 设置，出错时覆盖为 no-store
func (h *Handler) ServeUpload(c *gin.Context) {
	rc, info, err := h.assetService.Open(c.Request.Context(), strings.TrimPrefix(c.Param("filepath"), "/"))
	if err != nil {
		c.Header("Cache-Control", "no-store")
		writeServiceError(c, err, "读取文件失败")
		return
	}
	defer func() { _ = rc.Close() }()

	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", info.ContentType)
		c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
		c.Status(http.StatusOK)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, nil)
}
