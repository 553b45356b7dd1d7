package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/model"

	"github.com/gin-gonic/gin"
)

func doFrom(r http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = ip + ":1111"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

// 测试内容：验证限流关闭时请求不会被拦截。
func TestRateLimitMiddleware_DisabledAllowsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)

	if err := gdb.Save(&model.Setting{Key: consts.ConfigRateLimitEnabled, Value: "false"}).Error; err != nil {
		t.Fatalf("设置配置项失败: %v", err)
	}
	testService.ClearCache()

	r := gin.New()
	r.Use(RateLimitMiddleware(testService, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		if code := doFrom(r, "1.2.3.4"); code != http.StatusOK {
			t.Fatalf("期望 200，实际为 %d", code)
		}
	}
}

// 测试内容：验证限流开启且无补充时会阻止突发请求，不同 IP 互不影响。
func TestRateLimitMiddleware_EnabledBlocksBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)

	// 启用限流器：突发 1 个令牌且不补充（rps=0）。
	_ = gdb.Save(&model.Setting{Key: consts.ConfigRateLimitEnabled, Value: "true"}).Error
	_ = gdb.Save(&model.Setting{Key: consts.ConfigRateLimitResizeRPS, Value: "0"}).Error
	_ = gdb.Save(&model.Setting{Key: consts.ConfigRateLimitResizeBurst, Value: "1"}).Error
	testService.ClearCache()

	r := gin.New()
	r.Use(RateLimitMiddleware(testService, consts.ConfigRateLimitResizeRPS, consts.ConfigRateLimitResizeBurst))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	if code := doFrom(r, "1.2.3.4"); code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", code)
	}
	if code := doFrom(r, "1.2.3.4"); code != http.StatusTooManyRequests {
		t.Fatalf("期望 429，实际为 %d", code)
	}
	if code := doFrom(r, "5.6.7.8"); code != http.StatusOK {
		t.Fatalf("其他 IP 期望 200，实际为 %d", code)
	}
}

// 测试内容：验证长时间未出现的 IP 被清理，活跃 IP 保留，且并发访问与清理互不干扰。
func TestIPRateLimiter_SweepRemovesIdleClients(t *testing.T) {
	limiter := &IPRateLimiter{r: 1, b: 1}
	active := limiter.getLimiter("10.0.0.1")
	_ = limiter.getLimiter("10.0.0.2")

	v, _ := limiter.ips.Load("10.0.0.2")
	v.(*client).touch(time.Now().Add(-10 * time.Minute))

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				limiter.getLimiter(fmt.Sprintf("10.1.%d.%d", n, k))
				limiter.getLimiter("10.0.0.1")
			}
		}(n)
		go func() {
			defer wg.Done()
			limiter.sweep(time.Now().Add(-3 * time.Minute))
		}()
	}
	wg.Wait()

	if _, ok := limiter.ips.Load("10.0.0.2"); ok {
		t.Fatalf("期望空闲 IP 被清理")
	}
	if got := limiter.getLimiter("10.0.0.1"); got != active {
		t.Fatalf("期望活跃 IP 保留原有限流器")
	}
}
