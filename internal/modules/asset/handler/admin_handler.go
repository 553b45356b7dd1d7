package handler

import (
	"net/http"
	"strconv"

	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAssetList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	items, total, page, pageSize, err := h.assetService.AdminListAssets(moduledto.AdminAssetListRequest{
		PaginationRequest: moduledto.PaginationRequest{Page: page, PageSize: pageSize},
		Filename:          c.Query("filename"),
	}, requestBaseURL(c))
	if err != nil {
		writeServiceError(c, err, "获取资源列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"list":      items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *Handler) GetAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	asset, err := h.assetService.AdminGetAsset(id, requestBaseURL(c))
	if err != nil {
		writeServiceError(c, err, "获取资源失败")
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *Handler) DeleteAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.assetService.AdminDeleteAsset(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "删除成功", "result": result})
}

func (h *Handler) DeleteAssetByRef(c *gin.Context) {
	var ref moduledto.AssetRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		writeError(c, http.StatusBadRequest, "参数格式错误")
		return
	}
	result, err := h.assetService.AdminDeleteByRef(c.Request.Context(), ref)
	if err != nil {
		writeServiceError(c, err, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "删除成功", "result": result})
}

func parseID(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || parsed == 0 {
		writeError(c, http.StatusBadRequest, "id 参数错误")
		return 0, false
	}
	return uint(parsed), true
}
