package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	settingsruntime "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/runtime"

	"gorm.io/gorm"
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

// ClearCache 清空运行时配置缓存，设置更新后调用。
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 写入缺失的默认配置，同步元数据，并清理已废弃的配置键。
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(settingsruntime.DefaultSettings); err != nil {
		return fmt.Errorf("initialize default settings failed: %w", err)
	}
	if err := s.settingStore.DeleteNotInKeys(settingsruntime.Keys()); err != nil {
		return fmt.Errorf("delete legacy settings failed: %w", err)
	}
	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			s.settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// 数据库异常不缓存，下次重试
			log.Printf("⚠️ 读取配置 %s 失败: %v", key, err)
			return ""
		}

		// 数据库没查到，尝试查找默认配置
		if def, ok := settingsruntime.Lookup(key); ok {
			newSetting := def
			// 忽略写入错误，防止并发写入导致的主键冲突
			_ = s.settingStore.Create(&newSetting)

			s.settingsCache.Store(key, newSetting.Value)
			return newSetting.Value
		}

		// 没查到，往缓存里存 DefaultValueNotFound 标记
		s.settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}
	s.settingsCache.Store(key, setting.Value)

	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	valStr := s.GetString(key)
	if valStr == "" {
		return false
	}

	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}
