package service

import (
	"sync"

	settingsrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
)

type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}
