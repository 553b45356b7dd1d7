package service

import (
	"errors"
	"path"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"
	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"
	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"
	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"
)

const defaultURLPrefix = "/uploads/"

// normalizePagination 归一化分页参数，确保页码与页大小有最小值。
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// URLPrefix 上传文件的公开 URL 前缀，保证首尾都有 "/"
func URLPrefix() string {
	prefix := strings.Trim(config.Get().Upload.URLPrefix, "/")
	if prefix == "" {
		return defaultURLPrefix
	}
	return "/" + prefix + "/"
}

func publicURL(key string) string {
	return URLPrefix() + key
}

func absoluteURL(baseURL, rel string) string {
	if public := strings.TrimRight(config.Get().Server.PublicURL, "/"); public != "" {
		baseURL = public
	}
	return strings.TrimRight(baseURL, "/") + rel
}

func (s *Service) maxUploadBytes() int64 {
	mb := s.GetInt64(consts.ConfigMaxUploadSize)
	if mb <= 0 {
		mb = 20
	}
	return mb * 1024 * 1024
}

func imageQuality() int {
	q := config.Get().Image.Quality
	if q < 1 || q > 100 {
		return imaging.DefaultQuality
	}
	return q
}

func resizeQuality() int {
	q := config.Get().Image.ResizeQuality
	if q < 1 || q > 100 {
		return 75
	}
	return q
}

func maxDimension() int {
	d := config.Get().Image.MaxDimension
	if d <= 0 {
		return 3840
	}
	return d
}

// baseIDFromKey 从存储 key 还原出 base id：去掉扩展名和档位后缀
func baseIDFromKey(key string) string {
	name := path.Base(key)
	name = strings.TrimSuffix(name, path.Ext(name))
	for _, tier := range imaging.Tiers {
		if trimmed, ok := strings.CutSuffix(name, "-"+tier.Suffix); ok {
			return trimmed
		}
	}
	return name
}

// assetKeys 一个资源在存储中的全部文件：原图加上记录里的档位
func assetKeys(asset *model.Asset) []string {
	keys := []string{asset.Filename}
	for _, tier := range imaging.Tiers {
		if v, ok := asset.VariantMap()[tier.Name]; ok && v.Filename != "" {
			keys = append(keys, v.Filename)
		}
	}
	return keys
}

func buildSizes(variants map[string]model.AssetVariant, baseURL string) map[string]moduledto.SizeVariant {
	if len(variants) == 0 {
		return nil
	}
	sizes := make(map[string]moduledto.SizeVariant, len(variants))
	for name, v := range variants {
		rel := publicURL(v.Filename)
		sizes[name] = moduledto.SizeVariant{
			URL:         rel,
			AbsoluteURL: absoluteURL(baseURL, rel),
			Width:       v.Width,
			Height:      v.Height,
			Size:        v.Size,
		}
	}
	return sizes
}

// storageServiceError 把存储层错误映射为对外的业务错误
func storageServiceError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return platformservice.NewNotFoundError("文件不存在")
	case errors.Is(err, utils.ErrPathEscape):
		return platformservice.NewForbiddenError("禁止访问")
	case errors.Is(err, utils.ErrPathTraversal):
		return platformservice.NewValidationError("非法的文件路径")
	default:
		return platformservice.NewInternalError("读取文件失败")
	}
}
