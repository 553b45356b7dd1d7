package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			writeError(c, http.StatusRequestEntityTooLarge, "文件过大")
			return
		}
		writeError(c, http.StatusBadRequest, "missing file")
		return
	}

	src, err := file.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "无法读取上传的文件")
		return
	}
	defer func() { _ = src.Close() }()

	resp, err := h.assetService.Ingest(c.Request.Context(), moduledto.IngestRequest{
		Filename:                file.Filename,
		DeclaredType:            file.Header.Get("Content-Type"),
		Size:                    file.Size,
		Body:                    src,
		GenerateDerivativeTiers: parseFormBool(c.PostForm("generateSizes")),
		BaseURL:                 requestBaseURL(c),
	})
	if err != nil {
		if _, ok := platformservice.AsServiceError(err); !ok {
			log.Printf("Upload failed: %v", err)
		}
		writeServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// parseFormBool 表单里的布尔值，无法解析时视为 false
func parseFormBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
