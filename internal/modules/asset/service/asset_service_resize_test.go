package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
	"github.com/hdn-james/50years-ulaw-sub000/internal/testutils"
)

func putFile(t *testing.T, env *testEnv, key string, data []byte) {
	t.Helper()
	if _, err := env.local.Put(context.Background(), key, bytes.NewReader(data), storage.PutObjectOptions{Size: int64(len(data))}); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}
}

// 测试内容：验证实时缩放按 fit=inside 输出 WebP 且不写任何文件。
func TestResize_Inside(t *testing.T) {
	env := setupTestService(t)
	putFile(t, env, "photo.png", testutils.PNGBytes(t, 300, 200))

	out, err := env.svc.Resize(context.Background(), moduledto.ResizeQuery{Src: "/uploads/photo.png", W: 150})
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if out.ContentType != consts.MimeWebP || out.Width != 150 || out.Height != 100 {
		t.Fatalf("期望 150x100 webp，实际为 %dx%d %s", out.Width, out.Height, out.ContentType)
	}

	entries, _ := os.ReadDir(env.local.Root())
	if len(entries) != 1 {
		t.Fatalf("缩放不应写入文件，目录中有 %d 项", len(entries))
	}
}

// 测试内容：验证 cover 输出精确尺寸。
func TestResize_Cover(t *testing.T) {
	env := setupTestService(t)
	putFile(t, env, "photo.png", testutils.PNGBytes(t, 300, 200))

	out, err := env.svc.Resize(context.Background(), moduledto.ResizeQuery{Src: "/uploads/photo.png", W: 64, H: 64, Fit: "cover"})
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if out.Width != 64 || out.Height != 64 {
		t.Fatalf("期望 64x64，实际为 %dx%d", out.Width, out.Height)
	}
}

// 测试内容：验证超大宽度被钳制到 max_dimension。
func TestResize_ClampsDimensions(t *testing.T) {
	withConfig(t, func(cfg *config.Config) { cfg.Image.MaxDimension = 100 })
	env := setupTestService(t)
	putFile(t, env, "photo.png", testutils.PNGBytes(t, 300, 200))

	out, err := env.svc.Resize(context.Background(), moduledto.ResizeQuery{Src: "/uploads/photo.png", W: 999999, Fit: "fill", H: 50})
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if out.Width != 100 {
		t.Fatalf("期望宽度被钳制为 100，实际为 %d", out.Width)
	}
}

// 测试内容：验证只给一边时按比例推算出的另一边同样受 max_dimension 限制。
func TestResize_ClampsDerivedSide(t *testing.T) {
	withConfig(t, func(cfg *config.Config) { cfg.Image.MaxDimension = 400 })
	env := setupTestService(t)
	putFile(t, env, "tall.png", testutils.PNGBytes(t, 100, 200))

	for _, fit := range []string{"fill", "cover", "contain", "outside"} {
		q := moduledto.ResizeQuery{Src: "/uploads/tall.png", W: 999999, Fit: fit}
		if fit == "outside" {
			q.H = 999999
		}
		out, err := env.svc.Resize(context.Background(), q)
		if err != nil {
			t.Fatalf("%s: 期望为 nil，实际为 %v", fit, err)
		}
		if out.Width > 400 || out.Height > 400 {
			t.Fatalf("%s: 期望两边都不超过 400，实际为 %dx%d", fit, out.Width, out.Height)
		}
	}
}

// 测试内容：验证矢量图原样返回。
func TestResize_VectorPassthrough(t *testing.T) {
	env := setupTestService(t)
	svg := testutils.SVGBytes(64, 64)
	putFile(t, env, "logo.svg", svg)

	out, err := env.svc.Resize(context.Background(), moduledto.ResizeQuery{Src: "/uploads/logo.svg", W: 10})
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if out.ContentType != consts.MimeSVG || !bytes.Equal(out.Data, svg) {
		t.Fatalf("期望 SVG 原样返回")
	}
}

// 测试内容：验证 src 前缀、路径穿越、越界与缺失文件的错误码。
func TestResize_Errors(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	outside := filepath.Join(t.TempDir(), "secret.png")
	if err := os.WriteFile(outside, testutils.PNGBytes(t, 4, 4), 0o644); err != nil {
		t.Fatalf("写入外部文件失败: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(env.local.Root(), "link.png")); err != nil {
		t.Skipf("当前环境不支持符号链接: %v", err)
	}

	tests := []struct {
		name string
		src  string
		code platformservice.ErrorCode
	}{
		{"no_prefix", "photo.png", platformservice.ErrorCodeValidation},
		{"foreign_prefix", "/static/photo.png", platformservice.ErrorCodeValidation},
		{"traversal", "/uploads/../config/config.yaml", platformservice.ErrorCodeValidation},
		{"home", "/uploads/~/x.png", platformservice.ErrorCodeValidation},
		{"escape", "/uploads/link.png", platformservice.ErrorCodeForbidden},
		{"missing", "/uploads/none.png", platformservice.ErrorCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Resize(ctx, moduledto.ResizeQuery{Src: tt.src, W: 10})
			assertServiceErrorCode(t, err, tt.code)
		})
	}
}

// 测试内容：验证源文件损坏时返回 500 类错误。
func TestResize_CorruptSource(t *testing.T) {
	env := setupTestService(t)
	putFile(t, env, "broken.png", []byte("not an image"))

	_, err := env.svc.Resize(context.Background(), moduledto.ResizeQuery{Src: "/uploads/broken.png", W: 10})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeInternal)
}

// 测试内容：验证静态文件读取与路径校验。
func TestOpen(t *testing.T) {
	env := setupTestService(t)
	putFile(t, env, "a.webp", []byte("RIFF0000WEBP"))

	rc, info, err := env.svc.Open(context.Background(), "a.webp")
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "RIFF0000WEBP" || info.ContentType != consts.MimeWebP {
		t.Fatalf("读取内容或类型不正确: %q %s", data, info.ContentType)
	}

	_, _, err = env.svc.Open(context.Background(), "../a.webp")
	assertServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
	_, _, err = env.svc.Open(context.Background(), "missing.webp")
	assertServiceErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证实时缩放使用默认缩放质量并打上 resize 标签。
func TestResize_DefaultQuality(t *testing.T) {
	rec := &recordingDeriver{inner: imaging.NewGenerator(80, nil)}
	env := setupTestService(t, withDeriver(rec))
	putFile(t, env, "photo.png", testutils.PNGBytes(t, 20, 20))

	if _, err := env.svc.Resize(context.Background(), moduledto.ResizeQuery{Src: "/uploads/photo.png"}); err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if rec.last.Quality != 75 || rec.last.Label != "resize" || rec.last.Fit != imaging.FitInside {
		t.Fatalf("参数不正确: %+v", rec.last)
	}
}

type recordingDeriver struct {
	inner imaging.Deriver
	last  imaging.Options
}

func (r *recordingDeriver) Derive(ctx context.Context, src []byte, opts imaging.Options) (*imaging.Derivative, error) {
	r.last = opts
	return r.inner.Derive(ctx, src, opts)
}
