package imaging

import (
	"bytes"
	"encoding/xml"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"

	"github.com/gabriel-vasile/mimetype"
)

// Info 源图基本信息
type Info struct {
	Width    int
	Height   int
	Format   string
	MimeType string
}

// IsVector 判断源是否为 SVG。声明类型优先，未声明时嗅探内容。
func IsVector(src []byte, declared string) bool {
	if declared != "" {
		return strings.EqualFold(declared, consts.MimeSVG)
	}
	return mimetype.Detect(src).Is(consts.MimeSVG)
}

// Probe 只读取头信息获得尺寸与格式，不做完整解码。
func Probe(src []byte, declared string) (Info, error) {
	if IsVector(src, declared) {
		w, h, _ := SVGDimensions(src)
		return Info{Width: w, Height: h, Format: "svg", MimeType: consts.MimeSVG}, nil
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return Info{}, newProcessingError("decode", err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format, MimeType: "image/" + format}, nil
}

// SVGDimensions 从根元素的 width/height 读取尺寸，缺失时回退到 viewBox。
// 百分比等无法换算的单位视为缺失。
func SVGDimensions(src []byte) (int, int, bool) {
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, false
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !strings.EqualFold(se.Name.Local, "svg") {
			return 0, 0, false
		}

		var wAttr, hAttr, viewBox string
		for _, a := range se.Attr {
			switch strings.ToLower(a.Name.Local) {
			case "width":
				wAttr = a.Value
			case "height":
				hAttr = a.Value
			case "viewbox":
				viewBox = a.Value
			}
		}
		w, wok := parseSVGLength(wAttr)
		h, hok := parseSVGLength(hAttr)
		if wok && hok {
			return w, h, true
		}
		vw, vh, vok := parseViewBox(viewBox)
		if !vok {
			return 0, 0, false
		}
		// 只给了一边时按 viewBox 比例补全
		switch {
		case wok:
			return w, int(math.Round(float64(w) * vh / vw)), true
		case hok:
			return int(math.Round(float64(h) * vw / vh)), h, true
		default:
			return int(math.Round(vw)), int(math.Round(vh)), true
		}
	}
}

func parseSVGLength(v string) (int, bool) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	if v == "" || strings.HasSuffix(v, "%") {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return int(math.Round(f)), true
}

func parseViewBox(v string) (float64, float64, bool) {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) != 4 {
		return 0, 0, false
	}
	w, err1 := strconv.ParseFloat(fields[2], 64)
	h, err2 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
