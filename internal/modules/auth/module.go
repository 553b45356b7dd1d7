package auth

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/auth/handler"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/auth/service"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService) *Module {
	moduleService := service.New(appService)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
