package repo

import "github.com/hdn-james/50years-ulaw-sub000/internal/model"

type UpdateSettingItem struct {
	Key   string
	Value string
}

// SettingStore 运行时配置持久化
type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	DeleteNotInKeys(allowedKeys []string) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	UpdateSettings(items []UpdateSettingItem, maskedValue string) error
}
