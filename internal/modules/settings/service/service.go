package service

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
	}
}
