package imaging

import (
	"fmt"
	"strings"
)

// FitMode 目标框内的适配方式
type FitMode string

const (
	// FitCover 等比缩放铺满目标框，居中裁剪到精确尺寸
	FitCover FitMode = "cover"
	// FitContain 等比缩放放入目标框，透明填充到精确尺寸
	FitContain FitMode = "contain"
	// FitFill 拉伸到精确尺寸，不保持比例
	FitFill FitMode = "fill"
	// FitInside 等比缩放放入目标框，永不放大
	FitInside FitMode = "inside"
	// FitOutside 等比缩放使两边都不小于目标框，不裁剪
	FitOutside FitMode = "outside"
)

// FitModes 按文档顺序列出全部适配方式
var FitModes = []FitMode{FitCover, FitContain, FitFill, FitInside, FitOutside}

// ParseFitMode 解析适配方式，空串返回默认的 inside。
func ParseFitMode(s string) (FitMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FitInside, nil
	}
	for _, m := range FitModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown fit mode %q", s)
}

// Options 单次派生参数。Width/Height 为 0 表示该方向不约束，Quality 为 0 使用生成器默认值。
type Options struct {
	Width   int
	Height  int
	Fit     FitMode
	Quality int
	// MaxDimension 输出画布任一边的上限，0 表示只受 WebP 格式上限约束
	MaxDimension int
	// SourceType 源文件 MIME，留空时按内容嗅探
	SourceType string
	// Label 指标标签（tier 名或 resize）
	Label string
}

// Derivative 派生结果
type Derivative struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
	// Passthrough 为 true 表示原样返回（矢量图）
	Passthrough bool
}

func (d *Derivative) Size() int64 {
	return int64(len(d.Data))
}
