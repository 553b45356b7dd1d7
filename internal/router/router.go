package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/middleware"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules"
	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
	metrics *metrics.Metrics
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService, m *metrics.Metrics) *Router {
	return &Router{
		modules: appModules,
		service: appService,
		metrics: m,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	// 全局中间件：安全标头、请求 ID、指标
	r.Use(middleware.SecurityHeaders(urlPrefix(cfg)))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics(rt.metrics, metricsPath))

	if cfg.Metrics.Enabled && rt.metrics != nil {
		r.GET(metricsPath, gin.WrapH(rt.metrics.Handler()))
	}

	api := r.Group("/api")
	// 应用请求体大小限制中间件（上传接口单独限制）
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)

	registerPublicRoutes(api, rt.modules.System.Handler)
	registerAuthRoutes(api, authLimiter, rt.modules.Auth.Handler)
	registerAssetRoutes(api, rt.modules.Asset.Handler, rt.service, uploadTimeout(cfg))
	registerAdminRoutes(api, rt.modules.Asset.Handler, rt.modules.Settings.Handler, rt.modules.System.Handler)
	registerUploadsRoutes(r, urlPrefix(cfg), rt.modules.Asset.Handler, rt.service)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	})
}

func uploadTimeout(cfg config.Config) time.Duration {
	seconds := cfg.Upload.TimeoutSeconds
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func urlPrefix(cfg config.Config) string {
	prefix := strings.Trim(cfg.Upload.URLPrefix, "/")
	if prefix == "" {
		prefix = "uploads"
	}
	return "/" + prefix
}
