package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewBaseID 生成资源基础标识：<unix 毫秒>-<16 位十六进制随机数>。
// 同一毫秒内的并发上传依靠 64 位随机段区分。
func NewBaseID(now time.Time) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成随机标识失败: %w", err)
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(buf)), nil
}

// DerivativeFilename 按 {baseId}{-suffix}.{ext} 组装派生文件名，suffix 为空表示原图。
func DerivativeFilename(baseID, suffix, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if suffix == "" {
		return baseID + "." + ext
	}
	return baseID + "-" + strings.TrimPrefix(suffix, "-") + "." + ext
}
