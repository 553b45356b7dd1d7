package consts

// 支持上传的 MIME 类型
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeWebP = "image/webp"
	MimeGIF  = "image/gif"
	MimeSVG  = "image/svg+xml"
)

// TierOriginal 始终生成的原尺寸派生图（只重新压缩，不放大）
const TierOriginal = "original"

// DefaultCacheControl 派生图与上传文件的默认缓存策略（30 天，不可变）
const DefaultCacheControl = "public, max-age=2592000, immutable"

// AllowedUploadMimeTypes 上传白名单
var AllowedUploadMimeTypes = map[string]bool{
	MimePNG:  true,
	MimeJPEG: true,
	MimeWebP: true,
	MimeGIF:  true,
	MimeSVG:  true,
}
