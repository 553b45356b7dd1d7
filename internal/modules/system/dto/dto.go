package dto

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	Uptime       string `json:"uptime"`
}

type ServerStatsResponse struct {
	AssetCount    int64              `json:"asset_count"`
	StorageUsage  int64              `json:"storage_usage"`
	StorageDriver string             `json:"storage_driver"`
	DatabaseType  string             `json:"database_type"`
	Version       string             `json:"version"`
	SystemInfo    SystemInfoResponse `json:"system_info"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
