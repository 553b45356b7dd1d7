package service

import (
	"sort"

	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	settingsruntime "github.com/hdn-james/50years-ulaw-sub000/internal/modules/settings/runtime"
)

const maskedSettingValue = "**********"

// settingOrder 默认配置在管理端的展示位置
var settingOrder = func() map[string]int {
	keys := settingsruntime.Keys()
	order := make(map[string]int, len(keys))
	for i, key := range keys {
		order[key] = i
	}
	return order
}()

func maskSensitiveSettings(settings []model.Setting) {
	for i := range settings {
		if settings[i].Sensitive {
			settings[i].Value = maskedSettingValue
		}
	}
}

// sortSettingsForAdmin 默认配置按目录顺序排在前面，其余手工写入的键按 分类、键 排序
func sortSettingsForAdmin(settings []model.Setting) {
	sort.SliceStable(settings, func(i, j int) bool {
		left, right := settings[i], settings[j]
		li, lKnown := settingOrder[left.Key]
		ri, rKnown := settingOrder[right.Key]
		switch {
		case lKnown && rKnown:
			return li < ri
		case lKnown != rKnown:
			return lKnown
		case left.Category != right.Category:
			return left.Category < right.Category
		default:
			return left.Key < right.Key
		}
	})
}
