package service

import (
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/repo"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	systemStore  repo.SystemStore
	assetCounter repo.AssetCounter
	startedAt    time.Time
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	assetCounter repo.AssetCounter,
) *Service {
	return &Service{
		AppService:   appService,
		systemStore:  systemStore,
		assetCounter: assetCounter,
		startedAt:    time.Now(),
	}
}
