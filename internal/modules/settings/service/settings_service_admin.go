package service

import (
	"strconv"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/dto"
	settingsrepo "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/repo"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
)

// AdminListSettings 获取全部系统设置。
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("获取配置失败")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminUpdateSettings 批量更新系统设置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   item.Key,
			Value: item.Value,
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue); err != nil {
		return platformservice.NewInternalError("更新失败")
	}

	s.ClearCache()
	return nil
}

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	if strings.TrimSpace(item.Key) == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}

	value := strings.TrimSpace(item.Value)
	switch item.Key {
	case consts.ConfigMaxUploadSize, consts.ConfigMaxRequestBodySize,
		consts.ConfigRateLimitAuthBurst, consts.ConfigRateLimitUploadBurst, consts.ConfigRateLimitResizeBurst:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return platformservice.NewValidationError(item.Key + " 必须为正整数")
		}
	case consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitResizeRPS:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return platformservice.NewValidationError(item.Key + " 必须为正数")
		}
	case consts.ConfigRateLimitEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(item.Key + " 必须为 true 或 false")
		}
	case consts.ConfigStaticCacheControl:
		if value == "" {
			return platformservice.NewValidationError("Cache-Control 不能为空")
		}
	}

	return nil
}
