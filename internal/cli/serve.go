package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/db"
	"github.com/hdn-james/50years-ulaw-sub000/internal/otel"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	config.InitConfig(configDir)
	db.InitDB()

	cfg := config.Get()
	shutdownTracing, err := otel.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}

	r, err := buildEngine()
	if err != nil {
		return err
	}

	printWelcomeMessage(cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      otelhttp.NewHandler(r, "http.server"),
		ReadTimeout:  seconds(cfg.Server.ReadTimeoutSeconds, 30),
		WriteTimeout: seconds(cfg.Server.WriteTimeoutSeconds, 90),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	}
	log.Println("🛑 正在关闭服务...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ 服务强制关闭: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("⚠️ 链路追踪关闭失败: %v", err)
	}
	if err := platformservice.CloseRedisClient(); err != nil {
		log.Printf("⚠️ %v", err)
	}
	log.Println("✅ 服务已退出")
	return nil
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}

func printWelcomeMessage(cfg config.Config) {
	driver := cfg.Storage.Driver
	if driver == "" {
		driver = "local"
	}
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  存储     : %s\n", driver)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}
