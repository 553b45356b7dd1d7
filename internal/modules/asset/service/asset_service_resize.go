package service

import (
	"context"
	"io"
	"log"

	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"
)

// ResolveSourceKey 把 src 查询参数转换为存储 key，src 必须位于上传 URL 前缀下
func ResolveSourceKey(src string) (string, error) {
	rel, ok := moduledto.StripURLPrefix(src, URLPrefix())
	if !ok || rel == src {
		return "", platformservice.NewValidationError("src 必须以 " + URLPrefix() + " 开头")
	}
	key, err := utils.ValidateRelativePath(rel)
	if err != nil {
		return "", platformservice.NewValidationError("非法的文件路径")
	}
	return key, nil
}

// Resize 按查询参数实时生成派生图，结果只返回不落盘
func (s *Service) Resize(ctx context.Context, q moduledto.ResizeQuery) (*imaging.Derivative, error) {
	key, err := ResolveSourceKey(q.Src)
	if err != nil {
		return nil, err
	}
	fit, err := imaging.ParseFitMode(q.Fit)
	if err != nil {
		return nil, platformservice.NewValidationError("不支持的 fit 参数")
	}

	rc, _, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, storageServiceError(err)
	}
	src, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		log.Printf("⚠️ 读取源图失败 %s: %v", key, err)
		return nil, platformservice.NewInternalError("读取文件失败")
	}

	limit := maxDimension()
	quality := q.Q
	if quality == 0 {
		quality = resizeQuality()
	}

	out, err := s.deriver.Derive(ctx, src, imaging.Options{
		Width:        min(q.W, limit),
		Height:       min(q.H, limit),
		Fit:          fit,
		Quality:      quality,
		MaxDimension: limit,
		SourceType:   utils.ContentTypeByFilename(key),
		Label:        "resize",
	})
	if err != nil {
		log.Printf("⚠️ 实时缩放失败 %s: %v", key, err)
		return nil, platformservice.NewInternalError("图片处理失败")
	}
	return out, nil
}

// Open 读取上传目录下的文件，调用方负责关闭
func (s *Service) Open(ctx context.Context, filepath string) (io.ReadCloser, storage.ObjectInfo, error) {
	key, err := utils.ValidateRelativePath(filepath)
	if err != nil {
		return nil, storage.ObjectInfo{}, platformservice.NewValidationError("非法的文件路径")
	}
	rc, info, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, storageServiceError(err)
	}
	if info.ContentType == "" || info.ContentType == "application/octet-stream" {
		info.ContentType = utils.ContentTypeByFilename(key)
	}
	return rc, info, nil
}
