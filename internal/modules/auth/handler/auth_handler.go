package handler

import (
	"net/http"

	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/auth/dto"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "参数错误"})
		return
	}

	token, expiresAt, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, moduledto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Message:   "登录成功",
	})
}
