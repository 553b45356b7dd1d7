package repo

import "gorm.io/gorm"

func NewAssetRepository(db *gorm.DB) AssetStore {
	return &AssetRepository{db: db}
}
