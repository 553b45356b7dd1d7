package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// AssetVariant 某个尺寸档位派生图的元数据
type AssetVariant struct {
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int64  `json:"size"`
}

// Asset 一次上传的记录，BaseID 是所有派生文件名的根
type Asset struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	BaseID           string         `json:"base_id" gorm:"size:64;not null;uniqueIndex"`
	Filename         string         `json:"filename" gorm:"not null;unique"`
	OriginalName     string         `json:"original_name" gorm:"not null"`
	Size             int64          `json:"size" gorm:"not null"`
	OriginalSize     int64          `json:"original_size" gorm:"not null"`
	MimeType         string         `json:"mime_type" gorm:"not null"`
	OriginalMimeType string         `json:"original_mime_type" gorm:"not null"`
	Width            int            `json:"width" gorm:"not null"`
	Height           int            `json:"height" gorm:"not null"`
	Converted        bool           `json:"converted" gorm:"not null"`
	Variants         datatypes.JSON `json:"variants"`
	UploadedAt       int64          `json:"uploaded_at" gorm:"not null;index"`
}

// VariantMap 解析 Variants 列；空值或损坏时返回空 map
func (a *Asset) VariantMap() map[string]AssetVariant {
	out := map[string]AssetVariant{}
	if len(a.Variants) == 0 {
		return out
	}
	_ = json.Unmarshal(a.Variants, &out)
	return out
}

// SetVariantMap 序列化派生图元数据到 Variants 列
func (a *Asset) SetVariantMap(variants map[string]AssetVariant) error {
	if len(variants) == 0 {
		a.Variants = nil
		return nil
	}
	data, err := json.Marshal(variants)
	if err != nil {
		return err
	}
	a.Variants = datatypes.JSON(data)
	return nil
}
