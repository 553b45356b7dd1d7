package router

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules"
	assetrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	settingsrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
	systemrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
	"github.com/hdn-james/50years-ulaw-sub000/internal/testutils"
	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	cfg := config.Get()
	cfg.JWT.Secret = "router_test_secret"
	cfg.Upload.URLPrefix = "/uploads/"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	config.Set(cfg)
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	appService := service.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()

	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}
	m, err := metrics.New(nil)
	if err != nil {
		t.Fatalf("创建指标失败: %v", err)
	}

	appModules := modules.New(
		appService,
		assetrepo.NewAssetRepository(gdb),
		settingsrepo.NewSettingRepository(gdb),
		systemrepo.NewSystemRepository(gdb),
		store,
		imaging.NewGenerator(80, m),
		m,
	)

	r := gin.New()
	NewRouter(appModules, appService, m).Init(r)
	return r
}

// 测试内容：验证核心 API 路由被正确注册。
func TestInit_RegistersCoreRoutes(t *testing.T) {
	r := setupRouter(t)

	wants := []string{
		"GET /api/ping",
		"GET /api/health",
		"POST /api/auth/login",
		"POST /api/upload",
		"GET /api/image/resize",
		"GET /api/admin/stats",
		"GET /api/admin/settings",
		"PATCH /api/admin/settings",
		"GET /api/admin/assets",
		"GET /api/admin/assets/:id",
		"DELETE /api/admin/assets/:id",
		"POST /api/admin/assets/delete",
		"GET /uploads/*filepath",
		"HEAD /uploads/*filepath",
		"GET /metrics",
	}

	have := make(map[string]bool)
	for _, route := range r.Routes() {
		have[route.Method+" "+route.Path] = true
	}
	for _, w := range wants {
		if !have[w] {
			t.Fatalf("缺少路由: %s", w)
		}
	}
}

// 测试内容：验证上传与后台接口需要管理员 Token。
func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/upload"},
		{http.MethodGet, "/api/admin/assets"},
		{http.MethodGet, "/api/admin/stats"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s 期望 401，实际为 %d", tc.method, tc.path, w.Code)
		}
	}
}

// 测试内容：验证完整链路：上传后可通过静态路由读取并出现在后台列表，请求带有请求 ID。
func TestInit_UploadThenServe(t *testing.T) {
	r := setupRouter(t)
	token, err := utils.GenerateLoginToken("admin", true, time.Hour)
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := writer.CreatePart(header)
	_, _ = part.Write(testutils.PNGBytes(t, 64, 48))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("期望响应带有 X-Request-ID")
	}

	start := strings.Index(w.Body.String(), `"url":"`)
	if start < 0 {
		t.Fatalf("响应缺少 url: %s", w.Body.String())
	}
	rest := w.Body.String()[start+len(`"url":"`):]
	url := rest[:strings.Index(rest, `"`)]

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/webp" {
		t.Fatalf("静态访问失败: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Security-Policy"), "sandbox") {
		t.Fatalf("上传文件应使用沙箱 CSP，实际为 %q", w.Header().Get("Content-Security-Policy"))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/assets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total":1`) {
		t.Fatalf("后台列表不正确: %d %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证未匹配路由返回 JSON 404，/metrics 可访问。
func TestInit_NoRouteAndMetrics(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("期望 JSON 404，实际为 %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("/metrics 不可用: %d", w.Code)
	}
}
