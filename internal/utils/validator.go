package utils

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"

	"github.com/gabriel-vasile/mimetype"
)

// NormalizeMime 去掉参数并统一大小写，image/jpg 视为 image/jpeg。
func NormalizeMime(declared string) string {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mt
	}
	declared = strings.ToLower(declared)
	if declared == "image/jpg" || declared == "image/pjpeg" {
		return consts.MimeJPEG
	}
	return declared
}

// ResolveUploadMime 返回上传文件的有效 MIME。
// 优先信任客户端声明的类型；声明为空或为 application/octet-stream 时按内容嗅探。
func ResolveUploadMime(declared string, content []byte) string {
	mt := NormalizeMime(declared)
	if mt != "" && mt != "application/octet-stream" {
		return mt
	}
	detected := mimetype.Detect(content)
	return NormalizeMime(detected.String())
}

// IsAllowedUploadMime 判断 MIME 是否在上传白名单内
func IsAllowedUploadMime(mt string) bool {
	return consts.AllowedUploadMimeTypes[NormalizeMime(mt)]
}

// IsVectorMime 矢量格式不做栅格化处理
func IsVectorMime(mt string) bool {
	return NormalizeMime(mt) == consts.MimeSVG
}

// ContentTypeByFilename 按扩展名推断静态文件的 Content-Type。
func ContentTypeByFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".webp":
		return consts.MimeWebP
	case ".svg":
		return consts.MimeSVG
	case ".jpg", ".jpeg":
		return consts.MimeJPEG
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
