package repo

import (
	"fmt"

	"github.com/hdn-james/50years-ulaw-sub000/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

// byKey 使用结构体条件，由 gorm 负责给 key 列加引号（MySQL 中 key 是保留字）。
func byKey(tx *gorm.DB, key string) *gorm.DB {
	return tx.Where(&model.Setting{Key: key})
}

func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			var count int64
			if err := byKey(tx.Model(&model.Setting{}), def.Key).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q failed: %w", def.Key, err)
			}
			if count == 0 {
				if err := tx.Create(&def).Error; err != nil {
					return fmt.Errorf("create default setting %q failed: %w", def.Key, err)
				}
				continue
			}
			// 已存在的只同步元数据，保留管理员修改过的值
			if err := byKey(tx.Model(&model.Setting{}), def.Key).Updates(map[string]interface{}{
				"category":  def.Category,
				"desc":      def.Desc,
				"sensitive": def.Sensitive,
			}).Error; err != nil {
				return fmt.Errorf("update default setting metadata %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	if len(allowedKeys) == 0 {
		return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Setting{}).Error
	}
	return r.db.Not(map[string]interface{}{"key": allowedKeys}).Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := byKey(r.db, key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.Value == maskedValue {
				var current model.Setting
				if err := byKey(tx, item.Key).First(&current).Error; err == nil && current.Sensitive {
					// 脱敏占位值原样回传时不覆盖真实值
					continue
				}
			}

			setting := model.Setting{Key: item.Key, Value: item.Value}
			result := tx.Model(&setting).Select("Value").Updates(setting)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				if err := tx.Create(&setting).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
