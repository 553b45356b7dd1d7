package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"
)

const sniffLen = 512

// Ingest 处理一次上传：校验、重新压缩为 WebP（矢量图原样保存）、可选生成尺寸档位、落库。
// 每次调用都会生成新的 base id，相同内容重复上传得到不同文件。
func (s *Service) Ingest(ctx context.Context, req moduledto.IngestRequest) (*moduledto.UploadResponse, error) {
	start := time.Now()

	if req.Body == nil {
		return nil, platformservice.NewValidationError("missing file")
	}

	content, mimeType, err := s.readUpload(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	baseID, err := utils.NewBaseID(now)
	if err != nil {
		log.Printf("⚠️ 生成资源 ID 失败: %v", err)
		return nil, platformservice.NewInternalError("上传失败，请稍后重试")
	}

	asset := &model.Asset{
		BaseID:           baseID,
		OriginalName:     req.Filename,
		OriginalSize:     int64(len(content)),
		OriginalMimeType: mimeType,
		UploadedAt:       now.Unix(),
	}

	var variants map[string]model.AssetVariant
	if utils.IsVectorMime(mimeType) {
		err = s.storeVector(ctx, asset, content)
	} else {
		variants, err = s.storeRaster(ctx, asset, content, req.GenerateDerivativeTiers)
	}
	if err != nil {
		return nil, err
	}

	if err := asset.SetVariantMap(variants); err != nil {
		log.Printf("⚠️ 序列化尺寸档位失败 %s: %v", baseID, err)
	}
	// 文件已经落盘，记录写入失败不影响本次上传结果
	if err := s.assetStore.Create(asset); err != nil {
		log.Printf("⚠️ 写入资源记录失败 %s: %v", baseID, err)
	}

	kind := "raster"
	if !asset.Converted {
		kind = "vector"
	}
	s.metrics.IncUpload(kind)

	rel := publicURL(asset.Filename)
	return &moduledto.UploadResponse{
		Success:          true,
		Message:          "上传成功",
		URL:              rel,
		AbsoluteURL:      absoluteURL(req.BaseURL, rel),
		Filename:         asset.Filename,
		Size:             asset.Size,
		OriginalSize:     asset.OriginalSize,
		MimeType:         asset.MimeType,
		OriginalMimeType: asset.OriginalMimeType,
		UploadedAt:       now.UTC().Format(time.RFC3339),
		Converted:        asset.Converted,
		Dimensions:       moduledto.Dimensions{Width: asset.Width, Height: asset.Height},
		ProcessingTime:   fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		Sizes:            buildSizes(variants, req.BaseURL),
	}, nil
}

// readUpload 按 缺失 → 类型 → 大小 的顺序校验，并把内容完整读入内存
func (s *Service) readUpload(req moduledto.IngestRequest) ([]byte, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(req.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", readError(err)
	}
	head = head[:n]

	// 声明了明确类型时先判断类型，空文件同样返回 415
	if declared := utils.NormalizeMime(req.DeclaredType); declared != "" && declared != "application/octet-stream" && !utils.IsAllowedUploadMime(declared) {
		return nil, "", unsupportedType(declared)
	}
	if n == 0 {
		return nil, "", platformservice.NewValidationError("missing file")
	}

	mimeType := utils.ResolveUploadMime(req.DeclaredType, head)
	if !utils.IsAllowedUploadMime(mimeType) {
		return nil, "", unsupportedType(mimeType)
	}

	maxBytes := s.maxUploadBytes()
	if req.Size > maxBytes {
		return nil, "", payloadTooLarge(maxBytes)
	}

	var buf bytes.Buffer
	buf.Write(head)
	if _, err := buf.ReadFrom(io.LimitReader(req.Body, maxBytes-int64(n)+1)); err != nil {
		return nil, "", readError(err)
	}
	if int64(buf.Len()) > maxBytes {
		return nil, "", payloadTooLarge(maxBytes)
	}
	return buf.Bytes(), mimeType, nil
}

func readError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return platformservice.NewPayloadTooLargeError("文件过大")
	}
	log.Printf("⚠️ 读取上传内容失败: %v", err)
	return platformservice.NewInternalError("读取上传文件失败")
}

func unsupportedType(mimeType string) error {
	return platformservice.NewUnsupportedTypeError(fmt.Sprintf("不支持的文件类型: %s", mimeType))
}

func payloadTooLarge(maxBytes int64) error {
	return platformservice.NewPayloadTooLargeError(fmt.Sprintf("文件大小不能超过 %dMB", maxBytes/1024/1024))
}

func (s *Service) storeVector(ctx context.Context, asset *model.Asset, content []byte) error {
	w, h, _ := imaging.SVGDimensions(content)
	key := utils.DerivativeFilename(asset.BaseID, "", "svg")
	if err := s.put(ctx, key, content, consts.MimeSVG); err != nil {
		return err
	}

	asset.Filename = key
	asset.Size = int64(len(content))
	asset.MimeType = consts.MimeSVG
	asset.Width = w
	asset.Height = h
	asset.Converted = false
	return nil
}

func (s *Service) storeRaster(ctx context.Context, asset *model.Asset, content []byte, withTiers bool) (map[string]model.AssetVariant, error) {
	quality := imageQuality()
	out, err := s.deriver.Derive(ctx, content, imaging.Options{
		Fit:        imaging.FitInside,
		Quality:    quality,
		SourceType: asset.OriginalMimeType,
		Label:      consts.TierOriginal,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, platformservice.NewInternalError("请求已取消")
		}
		log.Printf("⚠️ 图片处理失败 %s: %v", asset.BaseID, err)
		if imaging.IsProcessingError(err) {
			return nil, platformservice.NewProcessingError("图片处理失败，文件可能已损坏")
		}
		return nil, platformservice.NewInternalError("图片处理失败")
	}

	key := utils.DerivativeFilename(asset.BaseID, "", "webp")
	if err := s.put(ctx, key, out.Data, consts.MimeWebP); err != nil {
		return nil, err
	}

	asset.Filename = key
	asset.Size = out.Size()
	asset.MimeType = consts.MimeWebP
	asset.Width = out.Width
	asset.Height = out.Height
	asset.Converted = true

	if !withTiers {
		return nil, nil
	}

	sink := func(ctx context.Context, tier imaging.Tier, d *imaging.Derivative) error {
		return s.put(ctx, utils.DerivativeFilename(asset.BaseID, tier.Suffix, "webp"), d.Data, consts.MimeWebP)
	}
	results := imaging.GenerateTiers(ctx, s.deriver, content, out.Width, out.Height, imaging.Tiers, quality, sink)

	variants := make(map[string]model.AssetVariant, len(results))
	for _, tier := range imaging.Tiers {
		d, ok := results[tier.Name]
		if !ok {
			continue
		}
		variants[tier.Name] = model.AssetVariant{
			Filename: utils.DerivativeFilename(asset.BaseID, tier.Suffix, "webp"),
			Width:    d.Width,
			Height:   d.Height,
			Size:     d.Size(),
		}
	}
	return variants, nil
}

func (s *Service) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.storage.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("❌ 保存文件失败 %s: %v", key, err)
		if errors.Is(err, context.Canceled) {
			return platformservice.NewInternalError("请求已取消")
		}
		return platformservice.NewInternalError("文件保存失败")
	}
	return nil
}
