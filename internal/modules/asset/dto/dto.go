package dto

import (
	"io"

	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
)

type PaginationRequest struct {
	Page     int
	PageSize int
}

type AdminAssetListRequest struct {
	PaginationRequest
	Filename string
}

// IngestRequest 上传入参，表单字段在 handler 边界一次性解析为强类型
type IngestRequest struct {
	Filename                string
	DeclaredType            string
	Size                    int64
	Body                    io.Reader
	GenerateDerivativeTiers bool
	// BaseURL 形如 https://example.com，用于拼接 absoluteUrl；配置了 server.public_url 时被忽略
	BaseURL string
}

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type SizeVariant struct {
	URL         string `json:"url"`
	AbsoluteURL string `json:"absoluteUrl"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int64  `json:"size"`
}

type UploadResponse struct {
	Success          bool                   `json:"success"`
	Message          string                 `json:"message"`
	URL              string                 `json:"url"`
	AbsoluteURL      string                 `json:"absoluteUrl"`
	Filename         string                 `json:"filename"`
	Size             int64                  `json:"size"`
	OriginalSize     int64                  `json:"originalSize"`
	MimeType         string                 `json:"mimeType"`
	OriginalMimeType string                 `json:"originalMimeType"`
	UploadedAt       string                 `json:"uploadedAt"`
	Converted        bool                   `json:"converted"`
	Dimensions       Dimensions             `json:"dimensions"`
	ProcessingTime   string                 `json:"processingTime"`
	Sizes            map[string]SizeVariant `json:"sizes,omitempty"`
}

// ResizeQuery 实时缩放参数，w/h 为 0 表示不约束
type ResizeQuery struct {
	Src string `form:"src" binding:"required"`
	W   int    `form:"w" binding:"omitempty,min=1"`
	H   int    `form:"h" binding:"omitempty,min=1"`
	Q   int    `form:"q" binding:"omitempty,min=1,max=100"`
	Fit string `form:"fit" binding:"omitempty,fitmode"`
}

// AssetResponse 管理端资源详情
type AssetResponse struct {
	model.Asset
	URL   string                 `json:"url"`
	Sizes map[string]SizeVariant `json:"sizes,omitempty"`
}

type DeleteResult struct {
	BaseID        string `json:"base_id,omitempty"`
	FilesDeleted  int    `json:"files_deleted"`
	RecordDeleted bool   `json:"record_deleted"`
}
