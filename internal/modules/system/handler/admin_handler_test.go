package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	assetrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/dto"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/repo"
	systemservice "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证统计与健康检查接口基于真实数据库返回结果。
func TestSystemHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	_ = gdb.Create(&model.Asset{
		BaseID: "1-a", Filename: "1-a.webp", OriginalName: "a.png", Size: 100,
		OriginalSize: 200, MimeType: "image/webp", OriginalMimeType: "image/png", UploadedAt: 1,
	}).Error

	h := New(systemservice.New(nil, repo.NewSystemRepository(gdb), assetrepo.NewAssetRepository(gdb)))
	r := gin.New()
	r.GET("/stats", h.GetServerStats)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	var stats moduledto.ServerStatsResponse
	_ = json.Unmarshal(w.Body.Bytes(), &stats)
	if stats.AssetCount != 1 || stats.StorageUsage != 100 {
		t.Fatalf("统计不正确: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("健康检查期望 200，实际为 %d", w.Code)
	}
}
