package asset

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/handler"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/service"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	assetStore repo.AssetStore,
	store storage.Storage,
	deriver imaging.Deriver,
	m *metrics.Metrics,
) *Module {
	moduleService := service.New(appService, assetStore, store, deriver, m)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
