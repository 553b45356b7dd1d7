package di

import (
	"testing"

	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
	"github.com/hdn-james/50years-ulaw-sub000/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证依赖注入组装出完整应用并能注册路由。
func TestInitializeApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}
	m, err := metrics.New(nil)
	if err != nil {
		t.Fatalf("创建指标失败: %v", err)
	}

	app, err := InitializeApplication(gdb, store, m)
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if app.Router == nil || app.AppService == nil || app.Modules.Asset == nil {
		t.Fatalf("应用组装不完整: %+v", app)
	}

	r := gin.New()
	app.Router.Init(r)
	if len(r.Routes()) == 0 {
		t.Fatalf("期望注册路由")
	}
}
