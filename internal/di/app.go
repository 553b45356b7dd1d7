package di

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules"
	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/router"
)

type Application struct {
	Router     *router.Router
	AppService *service.AppService
	Modules    *modules.AppModules
}

func NewApplication(r *router.Router, s *service.AppService, m *modules.AppModules) *Application {
	return &Application{
		Router:     r,
		AppService: s,
		Modules:    m,
	}
}

// ProvideDeriver 以配置中的上传质量为默认值，派生耗时上报到指标
func ProvideDeriver(m *metrics.Metrics) imaging.Deriver {
	return imaging.NewGenerator(config.Get().Image.Quality, m)
}
