package runtime

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
)

// DefaultSettings 运行时可调配置的默认值，顺序即管理端展示顺序。
var DefaultSettings = []model.Setting{
	{Key: consts.ConfigMaxUploadSize, Value: "20", Desc: "单个文件最大大小 (MB)", Category: "上传"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非文件上传接口最大请求体限制 (MB)", Category: "上传"},
	{Key: consts.ConfigStaticCacheControl, Value: consts.DefaultCacheControl, Desc: "静态资源缓存设置 (Cache-Control)", Category: "分发"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "安全"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "2", Desc: "认证接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "上传接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigRateLimitResizeRPS, Value: "10", Desc: "实时缩放接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitResizeBurst, Value: "30", Desc: "实时缩放接口突发请求限制", Category: "安全"},
}

var defaultsByKey = buildDefaultsByKey()

func buildDefaultsByKey() map[string]model.Setting {
	m := make(map[string]model.Setting, len(DefaultSettings))
	for _, s := range DefaultSettings {
		m[s.Key] = s
	}
	return m
}

// Lookup 返回某个键的默认配置
func Lookup(key string) (model.Setting, bool) {
	s, ok := defaultsByKey[key]
	return s, ok
}

// Keys 返回全部默认配置键
func Keys() []string {
	keys := make([]string, 0, len(DefaultSettings))
	for _, s := range DefaultSettings {
		keys = append(keys, s.Key)
	}
	return keys
}
