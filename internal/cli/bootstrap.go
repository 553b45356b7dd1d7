package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/db"
	"github.com/hdn-james/50years-ulaw-sub000/internal/di"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// buildEngine 组装存储、指标与全部模块，返回注册好路由的 gin 引擎
func buildEngine() (*gin.Engine, error) {
	cfg := config.Get()

	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "local" {
		if err := checkSecurePath(cfg.Upload.Path); err != nil {
			return nil, err
		}
		if err := os.MkdirAll(cfg.Upload.Path, 0755); err != nil {
			return nil, fmt.Errorf("无法创建上传目录: %w", err)
		}
	}

	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("存储初始化失败: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m, err = metrics.New(prometheus.NewRegistry())
		if err != nil {
			return nil, fmt.Errorf("指标初始化失败: %w", err)
		}
	}

	app, err := di.InitializeApplication(db.DB, store, m)
	if err != nil {
		return nil, err
	}
	if err := app.AppService.InitializeSettings(); err != nil {
		log.Printf("⚠️ 初始化系统设置失败: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	app.Router.Init(r)
	return r, nil
}

// checkSecurePath 上传目录不能指向项目根目录，位于项目内时必须在白名单子目录下
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 上传目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	allowedDirs := []string{"uploads", "public", "media", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("安全配置错误: 上传目录 '%s' 必须位于项目根目录下的安全子目录中 (如 %v)", path, allowedDirs)
}
