package repo

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/model"

	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

func (r *AssetRepository) Create(asset *model.Asset) error {
	return r.db.Create(asset).Error
}

func (r *AssetRepository) FindByID(id uint) (*model.Asset, error) {
	var asset model.Asset
	if err := r.db.First(&asset, id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepository) FindByBaseID(baseID string) (*model.Asset, error) {
	var asset model.Asset
	if err := r.db.Where(&model.Asset{BaseID: baseID}).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepository) ListAssets(params ListAssetsParams) ([]model.Asset, int64, error) {
	var assets []model.Asset
	var total int64

	query := r.db.Model(&model.Asset{})
	if params.Filename != "" {
		like := "%" + params.Filename + "%"
		query = query.Where("filename LIKE ? OR original_name LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id desc").Offset(params.Offset).Limit(params.Limit).Find(&assets).Error; err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (r *AssetRepository) Delete(asset *model.Asset) error {
	return r.db.Delete(asset).Error
}

func (r *AssetRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Asset{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumAllSize 统计所有资源的落盘大小（只算原图，不含档位）
func (r *AssetRepository) SumAllSize() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Asset{}).Select("COALESCE(SUM(size), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
