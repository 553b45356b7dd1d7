//go:build wireinject
// +build wireinject

package di

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules"
	assetrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	settingsrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
	systemrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/router"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, store storage.Storage, m *metrics.Metrics) (*Application, error) {
	wire.Build(
		assetrepo.NewAssetRepository,
		settingsrepo.NewSettingRepository,
		systemrepo.NewSystemRepository,
		service.NewAppService,
		ProvideDeriver,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
