package imaging

import (
	"image"
	"math"
)

// plan 描述一次变换：先从源图裁出 crop，再缩放到 resizeW×resizeH，
// 最后放到 canvasW×canvasH 的画布上（offsetX/offsetY 为放置位置）。
type plan struct {
	crop             image.Rectangle
	resizeW, resizeH int
	canvasW, canvasH int
	offsetX, offsetY int
}

func (p plan) padded() bool {
	return p.canvasW != p.resizeW || p.canvasH != p.resizeH
}

func roundDim(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

// WebPMaxDimension WebP 单边像素上限
const WebPMaxDimension = 16383

// effectiveMax 调用方上限与 WebP 格式上限取小
func effectiveMax(limit int) int {
	if limit <= 0 || limit > WebPMaxDimension {
		return WebPMaxDimension
	}
	return limit
}

// capBox 等比缩小 w×h 使两边都不超过 limit
func capBox(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	scale := math.Min(float64(limit)/float64(w), float64(limit)/float64(h))
	return min(roundDim(float64(w)*scale), limit), min(roundDim(float64(h)*scale), limit)
}

// resolveBox 补全缺失的一边。两边都缺失时返回源尺寸。
func resolveBox(srcW, srcH, w, h int) (int, int) {
	switch {
	case w <= 0 && h <= 0:
		return srcW, srcH
	case w <= 0:
		return roundDim(float64(h) * float64(srcW) / float64(srcH)), h
	case h <= 0:
		return w, roundDim(float64(w) * float64(srcH) / float64(srcW))
	default:
		return w, h
	}
}

// planFit 计算 fit 模式下的几何变换，纯函数，不触碰像素。
func planFit(srcW, srcH int, opts Options) plan {
	full := image.Rect(0, 0, srcW, srcH)
	unconstrained := opts.Width <= 0 && opts.Height <= 0
	limit := effectiveMax(opts.MaxDimension)
	boxW, boxH := resolveBox(srcW, srcH, opts.Width, opts.Height)
	boxW, boxH = capBox(boxW, boxH, limit)

	sx := float64(boxW) / float64(srcW)
	sy := float64(boxH) / float64(srcH)

	switch opts.Fit {
	case FitFill:
		return plan{crop: full, resizeW: boxW, resizeH: boxH, canvasW: boxW, canvasH: boxH}

	case FitCover:
		// 先按目标比例裁出源图中心区域再缩放，避免生成超大的中间图
		cropW, cropH := srcW, srcH
		if sx > sy {
			cropH = roundDim(float64(srcW) * float64(boxH) / float64(boxW))
		} else if sy > sx {
			cropW = roundDim(float64(srcH) * float64(boxW) / float64(boxH))
		}
		cropW = min(cropW, srcW)
		cropH = min(cropH, srcH)
		x0 := (srcW - cropW) / 2
		y0 := (srcH - cropH) / 2
		return plan{
			crop:    image.Rect(x0, y0, x0+cropW, y0+cropH),
			resizeW: boxW, resizeH: boxH,
			canvasW: boxW, canvasH: boxH,
		}

	case FitContain:
		scale := math.Min(sx, sy)
		rw, rh := roundDim(float64(srcW)*scale), roundDim(float64(srcH)*scale)
		rw, rh = min(rw, boxW), min(rh, boxH)
		return plan{
			crop:    full,
			resizeW: rw, resizeH: rh,
			canvasW: boxW, canvasH: boxH,
			offsetX: (boxW - rw) / 2, offsetY: (boxH - rh) / 2,
		}

	case FitOutside:
		scale := math.Max(sx, sy)
		rw, rh := roundDim(float64(srcW)*scale), roundDim(float64(srcH)*scale)
		rw, rh = capBox(rw, rh, limit)
		return plan{crop: full, resizeW: rw, resizeH: rh, canvasW: rw, canvasH: rh}

	default: // FitInside
		if unconstrained {
			rw, rh := capBox(srcW, srcH, limit)
			return plan{crop: full, resizeW: rw, resizeH: rh, canvasW: rw, canvasH: rh}
		}
		scale := math.Min(math.Min(sx, sy), 1)
		rw, rh := roundDim(float64(srcW)*scale), roundDim(float64(srcH)*scale)
		rw, rh = min(rw, srcW), min(rh, srcH)
		return plan{crop: full, resizeW: rw, resizeH: rh, canvasW: rw, canvasH: rh}
	}
}
