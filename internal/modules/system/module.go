package system

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/handler"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/service"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	assetCounter repo.AssetCounter,
) *Module {
	moduleService := service.New(appService, systemStore, assetCounter)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
