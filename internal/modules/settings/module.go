package settings

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/handler"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/service"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
