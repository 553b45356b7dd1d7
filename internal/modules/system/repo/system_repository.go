package repo

import "context"

// AssetCounter 仪表盘统计所需的资源查询
type AssetCounter interface {
	CountAll() (int64, error)
	SumAllSize() (int64, error)
}

type SystemStore interface {
	Ping(ctx context.Context) error
}
