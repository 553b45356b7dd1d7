package repo

import "github.com/hdn-james/50years-ulaw-sub000/internal/model"

type ListAssetsParams struct {
	Filename string
	Offset   int
	Limit    int
}

type AssetStore interface {
	Create(asset *model.Asset) error
	FindByID(id uint) (*model.Asset, error)
	FindByBaseID(baseID string) (*model.Asset, error)
	ListAssets(params ListAssetsParams) ([]model.Asset, int64, error)
	Delete(asset *model.Asset) error
	CountAll() (int64, error)
	SumAllSize() (int64, error)
}
