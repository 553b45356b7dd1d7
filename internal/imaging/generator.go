package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

const (
	DefaultQuality = 80
	// DefaultMaxSourcePixels 解码前按头信息拦截超大图（解压炸弹）
	DefaultMaxSourcePixels = 100_000_000
	// DefaultMaxOutputPixels outside 模式可能产生超大画布，超过即拒绝
	DefaultMaxOutputPixels = 40_000_000
)

// DeriveObserver 接收每次派生的耗时与结果
type DeriveObserver interface {
	ObserveDerive(tier string, elapsed time.Duration, err error)
}

// Deriver 从源字节生成派生图。上传流程依赖该接口，便于替换。
type Deriver interface {
	Derive(ctx context.Context, src []byte, opts Options) (*Derivative, error)
}

// Generator 纯变换：字节 + 目标框 + 适配方式 + 质量 → WebP 字节与尺寸。不做任何 IO。
type Generator struct {
	DefaultQuality  int
	MaxSourcePixels int
	MaxOutputPixels int
	observer        DeriveObserver
}

func NewGenerator(defaultQuality int, observer DeriveObserver) *Generator {
	if defaultQuality < 1 || defaultQuality > 100 {
		defaultQuality = DefaultQuality
	}
	return &Generator{
		DefaultQuality:  defaultQuality,
		MaxSourcePixels: DefaultMaxSourcePixels,
		MaxOutputPixels: DefaultMaxOutputPixels,
		observer:        observer,
	}
}

func (g *Generator) Derive(ctx context.Context, src []byte, opts Options) (out *Derivative, err error) {
	start := time.Now()
	defer func() {
		if g.observer == nil || errors.Is(err, context.Canceled) {
			return
		}
		label := opts.Label
		if label == "" {
			label = "custom"
		}
		g.observer.ObserveDerive(label, time.Since(start), err)
	}()

	if len(src) == 0 {
		return nil, newProcessingError("decode", errors.New("empty input"))
	}

	// 矢量图原样返回，不做栅格化
	if IsVector(src, opts.SourceType) {
		w, h, _ := SVGDimensions(src)
		return &Derivative{
			Data:        src,
			Width:       w,
			Height:      h,
			ContentType: consts.MimeSVG,
			Passthrough: true,
		}, nil
	}

	if opts.Fit == "" {
		opts.Fit = FitInside
	}
	quality := opts.Quality
	if quality < 1 || quality > 100 {
		quality = g.DefaultQuality
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil, newProcessingError("decode", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, newProcessingError("decode", fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height))
	}
	if g.MaxSourcePixels > 0 && cfg.Width*cfg.Height > g.MaxSourcePixels {
		return nil, newProcessingError("decode", fmt.Errorf("source too large: %dx%d", cfg.Width, cfg.Height))
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, newProcessingError("decode", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	p := planFit(b.Dx(), b.Dy(), opts)
	if g.MaxOutputPixels > 0 && p.canvasW*p.canvasH > g.MaxOutputPixels {
		return nil, newProcessingError("resize", fmt.Errorf("target too large: %dx%d", p.canvasW, p.canvasH))
	}

	result := render(img, p)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, result, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, newProcessingError("encode", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Derivative{
		Data:        buf.Bytes(),
		Width:       p.canvasW,
		Height:      p.canvasH,
		ContentType: consts.MimeWebP,
	}, nil
}

// render 按 plan 执行裁剪、缩放与填充
func render(img image.Image, p plan) image.Image {
	b := img.Bounds()
	src := img
	crop := p.crop.Add(b.Min)
	if crop != b {
		src = subImage(img, crop)
	}

	var resized image.Image = src
	if p.resizeW != crop.Dx() || p.resizeH != crop.Dy() {
		resized = resize.Resize(uint(p.resizeW), uint(p.resizeH), src, resize.Lanczos3)
	}

	if !p.padded() {
		return resized
	}
	// contain：透明画布居中放置
	canvas := image.NewNRGBA(image.Rect(0, 0, p.canvasW, p.canvasH))
	dst := image.Rect(p.offsetX, p.offsetY, p.offsetX+p.resizeW, p.offsetY+p.resizeH)
	draw.Draw(canvas, dst, resized, resized.Bounds().Min, draw.Src)
	return canvas
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	// 不支持 SubImage 的实现（极少见）退化为拷贝
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
