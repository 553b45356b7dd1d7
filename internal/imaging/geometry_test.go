package imaging

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanFit(t *testing.T) {
	tests := []struct {
		name             string
		srcW, srcH       int
		opts             Options
		canvasW, canvasH int
		resizeW, resizeH int
		crop             image.Rectangle
	}{
		{
			name: "inside_downscale", srcW: 3000, srcH: 2000,
			opts:    Options{Width: 150, Height: 150, Fit: FitInside},
			canvasW: 150, canvasH: 100, resizeW: 150, resizeH: 100,
			crop: image.Rect(0, 0, 3000, 2000),
		},
		{
			name: "inside_never_enlarges", srcW: 300, srcH: 200,
			opts:    Options{Width: 800, Height: 800, Fit: FitInside},
			canvasW: 300, canvasH: 200, resizeW: 300, resizeH: 200,
			crop: image.Rect(0, 0, 300, 200),
		},
		{
			name: "inside_unconstrained", srcW: 640, srcH: 480,
			opts:    Options{Fit: FitInside},
			canvasW: 640, canvasH: 480, resizeW: 640, resizeH: 480,
			crop: image.Rect(0, 0, 640, 480),
		},
		{
			name: "inside_width_only", srcW: 3000, srcH: 2000,
			opts:    Options{Width: 600},
			canvasW: 600, canvasH: 400, resizeW: 600, resizeH: 400,
			crop: image.Rect(0, 0, 3000, 2000),
		},
		{
			name: "cover_landscape_to_square", srcW: 3000, srcH: 2000,
			opts:    Options{Width: 200, Height: 200, Fit: FitCover},
			canvasW: 200, canvasH: 200, resizeW: 200, resizeH: 200,
			crop: image.Rect(500, 0, 2500, 2000),
		},
		{
			name: "cover_portrait_to_wide", srcW: 100, srcH: 400,
			opts:    Options{Width: 200, Height: 100, Fit: FitCover},
			canvasW: 200, canvasH: 100, resizeW: 200, resizeH: 100,
			crop: image.Rect(0, 175, 100, 225),
		},
		{
			name: "contain_pads", srcW: 3000, srcH: 2000,
			opts:    Options{Width: 200, Height: 200, Fit: FitContain},
			canvasW: 200, canvasH: 200, resizeW: 200, resizeH: 133,
			crop: image.Rect(0, 0, 3000, 2000),
		},
		{
			name: "fill_stretches", srcW: 3000, srcH: 2000,
			opts:    Options{Width: 300, Height: 100, Fit: FitFill},
			canvasW: 300, canvasH: 100, resizeW: 300, resizeH: 100,
			crop: image.Rect(0, 0, 3000, 2000),
		},
		{
			name: "outside_covers_without_crop", srcW: 300, srcH: 200,
			opts:    Options{Width: 150, Height: 150, Fit: FitOutside},
			canvasW: 225, canvasH: 150, resizeW: 225, resizeH: 150,
			crop: image.Rect(0, 0, 300, 200),
		},
		{
			name: "fill_derived_side_capped", srcW: 100, srcH: 200,
			opts:    Options{Width: 999999, Fit: FitFill, MaxDimension: 3840},
			canvasW: 1920, canvasH: 3840, resizeW: 1920, resizeH: 3840,
			crop: image.Rect(0, 0, 100, 200),
		},
		{
			name: "cover_derived_side_capped", srcW: 100, srcH: 200,
			opts:    Options{Width: 3840, Fit: FitCover, MaxDimension: 3840},
			canvasW: 1920, canvasH: 3840, resizeW: 1920, resizeH: 3840,
			crop: image.Rect(0, 0, 100, 200),
		},
		{
			name: "outside_capped", srcW: 100, srcH: 200,
			opts:    Options{Width: 3840, Height: 3840, Fit: FitOutside, MaxDimension: 3840},
			canvasW: 1920, canvasH: 3840, resizeW: 1920, resizeH: 3840,
			crop: image.Rect(0, 0, 100, 200),
		},
		{
			name: "inside_unconstrained_webp_limit", srcW: 20000, srcH: 10,
			opts:    Options{Fit: FitInside},
			canvasW: WebPMaxDimension, canvasH: 8, resizeW: WebPMaxDimension, resizeH: 8,
			crop: image.Rect(0, 0, 20000, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planFit(tt.srcW, tt.srcH, tt.opts)
			assert.Equal(t, tt.canvasW, p.canvasW, "canvasW")
			assert.Equal(t, tt.canvasH, p.canvasH, "canvasH")
			assert.Equal(t, tt.resizeW, p.resizeW, "resizeW")
			assert.Equal(t, tt.resizeH, p.resizeH, "resizeH")
			assert.Equal(t, tt.crop, p.crop, "crop")
		})
	}
}

func TestPlanFit_ContainCentersContent(t *testing.T) {
	p := planFit(3000, 2000, Options{Width: 200, Height: 200, Fit: FitContain})
	assert.True(t, p.padded())
	assert.Equal(t, 0, p.offsetX)
	assert.Equal(t, 33, p.offsetY)
}

func TestResolveBox(t *testing.T) {
	w, h := resolveBox(3000, 2000, 0, 1000)
	assert.Equal(t, 1500, w)
	assert.Equal(t, 1000, h)

	w, h = resolveBox(3000, 2000, 0, 0)
	assert.Equal(t, 3000, w)
	assert.Equal(t, 2000, h)
}

func TestCapBox(t *testing.T) {
	w, h := capBox(999999, 1999998, 3840)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 3840, h)

	w, h = capBox(300, 200, 3840)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)

	assert.Equal(t, WebPMaxDimension, effectiveMax(0))
	assert.Equal(t, WebPMaxDimension, effectiveMax(50000))
	assert.Equal(t, 3840, effectiveMax(3840))
}

func TestParseFitMode(t *testing.T) {
	m, err := ParseFitMode("")
	assert.NoError(t, err)
	assert.Equal(t, FitInside, m)

	m, err = ParseFitMode(" Cover ")
	assert.NoError(t, err)
	assert.Equal(t, FitCover, m)

	_, err = ParseFitMode("stretch")
	assert.Error(t, err)
}
