package repo

import "gorm.io/gorm"

var _ SettingStore = (*SettingRepository)(nil)

// NewSettingRepository settings 表由 db.Models 统一迁移，这里只负责读写
func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}
