package consts

const (

	// ConfigMaxUploadSize 单个上传文件最大限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigMaxRequestBodySize 非上传接口最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 静态资源与派生图缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 登录接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 登录接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigRateLimitResizeRPS 实时缩放接口限流 RPS
	ConfigRateLimitResizeRPS = "rate_limit_resize_rps"

	// ConfigRateLimitResizeBurst 实时缩放接口限流 Burst
	ConfigRateLimitResizeBurst = "rate_limit_resize_burst"
)
