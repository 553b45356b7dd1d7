package modules

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset"
	assetrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/auth"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings"
	settingsrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/system"
	systemrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/repo"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
)

type AppModules struct {
	Auth     *auth.Module
	Asset    *asset.Module
	Settings *settings.Module
	System   *system.Module
}

func New(
	appService *platformservice.AppService,
	assetStore assetrepo.AssetStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
	store storage.Storage,
	deriver imaging.Deriver,
	m *metrics.Metrics,
) *AppModules {
	return &AppModules{
		Auth:     auth.New(appService),
		Asset:    asset.New(appService, assetStore, store, deriver, m),
		Settings: settings.New(appService, settingStore),
		System:   system.New(appService, systemStore, assetStore),
	}
}
