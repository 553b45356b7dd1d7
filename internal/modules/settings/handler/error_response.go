package handler

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func writeServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
