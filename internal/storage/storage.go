package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"
)

// ErrNotFound 对象不存在
var ErrNotFound = errors.New("storage: object not found")

// 路径错误直接复用 utils 中的定义，调用方可统一用 errors.Is 判断
var (
	ErrPathTraversal = utils.ErrPathTraversal
	ErrPathEscape    = utils.ErrPathEscape
)

// PutObjectOptions 写入参数。Size 未知时填 -1。
type PutObjectOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo 对象基本信息
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage 上传根目录的抽象，key 为以 "/" 分隔的相对路径。
// 实现必须拒绝越出根目录的 key。
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// New 按配置创建存储后端
func New(cfg config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case "", "local":
		return NewLocal(cfg.Upload.Path)
	case "minio":
		return NewMinIO(cfg.Storage.MinIO)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}
