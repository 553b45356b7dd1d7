package service

import (
	"context"
	"log"
	"runtime"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/dto"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

// AdminGetServerStats 获取后台仪表盘统计数据。
func (s *Service) AdminGetServerStats() (*moduledto.ServerStatsResponse, error) {
	assetCount, err := s.assetCounter.CountAll()
	if err != nil {
		return nil, platformservice.NewInternalError("统计资源数据失败")
	}

	totalSize, err := s.assetCounter.SumAllSize()
	if err != nil {
		return nil, platformservice.NewInternalError("统计资源数据失败")
	}

	cfg := config.Get()
	driver := cfg.Storage.Driver
	if driver == "" {
		driver = "local"
	}

	return &moduledto.ServerStatsResponse{
		AssetCount:    assetCount,
		StorageUsage:  totalSize,
		StorageDriver: driver,
		DatabaseType:  cfg.Database.Type,
		Version:       consts.ApplicationVersion,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
			Uptime:       time.Since(s.startedAt).Truncate(time.Second).String(),
		},
	}, nil
}

// Health 检查数据库连通性
func (s *Service) Health(ctx context.Context) (*moduledto.HealthResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.systemStore.Ping(ctx); err != nil {
		log.Printf("⚠️ 数据库健康检查失败: %v", err)
		return &moduledto.HealthResponse{Status: "degraded", Database: "unreachable"}, false
	}
	return &moduledto.HealthResponse{Status: "ok", Database: "ok"}, true
}
