package service

import (
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/metrics"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
)

type Service struct {
	*platformservice.AppService
	assetStore repo.AssetStore
	storage    storage.Storage
	deriver    imaging.Deriver
	metrics    *metrics.Metrics
	now        func() time.Time
}

func New(
	appService *platformservice.AppService,
	assetStore repo.AssetStore,
	store storage.Storage,
	deriver imaging.Deriver,
	m *metrics.Metrics,
) *Service {
	return &Service{
		AppService: appService,
		assetStore: assetStore,
		storage:    store,
		deriver:    deriver,
		metrics:    m,
		now:        time.Now,
	}
}
