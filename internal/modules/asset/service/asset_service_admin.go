package service

import (
	"context"
	"errors"
	"log"

	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	"github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/repo"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/storage"

	"gorm.io/gorm"
)

// AdminListAssets 分页查询资源列表，支持按文件名模糊过滤。
func (s *Service) AdminListAssets(req moduledto.AdminAssetListRequest, baseURL string) ([]moduledto.AssetResponse, int64, int, int, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	assets, total, err := s.assetStore.ListAssets(repo.ListAssetsParams{
		Filename: req.Filename,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	})
	if err != nil {
		log.Printf("⚠️ 查询资源列表失败: %v", err)
		return nil, 0, page, pageSize, platformservice.NewInternalError("获取资源列表失败")
	}

	items := make([]moduledto.AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, toAssetResponse(&assets[i], baseURL))
	}
	return items, total, page, pageSize, nil
}

// AdminGetAsset 获取指定资源。
func (s *Service) AdminGetAsset(id uint, baseURL string) (*moduledto.AssetResponse, error) {
	asset, err := s.findAsset(id)
	if err != nil {
		return nil, err
	}
	resp := toAssetResponse(asset, baseURL)
	return &resp, nil
}

// AdminDeleteAsset 删除资源的全部文件与记录。
func (s *Service) AdminDeleteAsset(ctx context.Context, id uint) (*moduledto.DeleteResult, error) {
	asset, err := s.findAsset(id)
	if err != nil {
		return nil, err
	}
	return s.deleteAsset(ctx, asset)
}

// AdminDeleteByRef 按 url / path / filename 删除。
// 找到记录时删除整组派生文件；没有记录时只删除所指的单个文件。
func (s *Service) AdminDeleteByRef(ctx context.Context, ref moduledto.AssetRef) (*moduledto.DeleteResult, error) {
	key, err := ref.Normalize(URLPrefix())
	if err != nil {
		return nil, platformservice.NewValidationError("无效的文件引用")
	}

	baseID := baseIDFromKey(key)
	asset, err := s.assetStore.FindByBaseID(baseID)
	if err == nil {
		return s.deleteAsset(ctx, asset)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ 查询资源失败 %s: %v", baseID, err)
		return nil, platformservice.NewInternalError("删除失败")
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, platformservice.NewNotFoundError("文件不存在")
		}
		log.Printf("⚠️ 删除文件失败 %s: %v", key, err)
		return nil, storageServiceError(err)
	}
	return &moduledto.DeleteResult{FilesDeleted: 1}, nil
}

func (s *Service) findAsset(id uint) (*model.Asset, error) {
	asset, err := s.assetStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("资源不存在")
		}
		return nil, platformservice.NewInternalError("查询资源失败")
	}
	return asset, nil
}

// deleteAsset 文件删除尽力而为，记录无论如何都会删除（允许残留孤儿文件）
func (s *Service) deleteAsset(ctx context.Context, asset *model.Asset) (*moduledto.DeleteResult, error) {
	result := &moduledto.DeleteResult{BaseID: asset.BaseID}
	for _, key := range assetKeys(asset) {
		err := s.storage.Delete(ctx, key)
		switch {
		case err == nil:
			result.FilesDeleted++
		case errors.Is(err, storage.ErrNotFound):
		default:
			log.Printf("⚠️ 删除文件失败 %s: %v", key, err)
		}
	}

	if err := s.assetStore.Delete(asset); err != nil {
		log.Printf("❌ 删除资源记录失败 %s: %v", asset.BaseID, err)
		return result, platformservice.NewInternalError("删除资源记录失败")
	}
	result.RecordDeleted = true
	return result, nil
}

func toAssetResponse(asset *model.Asset, baseURL string) moduledto.AssetResponse {
	return moduledto.AssetResponse{
		Asset: *asset,
		URL:   publicURL(asset.Filename),
		Sizes: buildSizes(asset.VariantMap(), baseURL),
	}
}
