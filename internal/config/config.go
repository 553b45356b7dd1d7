package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

const insecureDevSecret = "anniv_media_secret"

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	JWT      JWTConfig      `mapstructure:"jwt" yaml:"jwt"`
	Admin    AdminConfig    `mapstructure:"admin" yaml:"admin"`
	Upload   UploadConfig   `mapstructure:"upload" yaml:"upload"`
	Image    ImageConfig    `mapstructure:"image" yaml:"image"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Redis    RedisConfig    `mapstructure:"redis" yaml:"redis"`
	Tracing  TracingConfig  `mapstructure:"tracing" yaml:"tracing"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

type ServerConfig struct {
	Port                string `mapstructure:"port" yaml:"port"`
	Mode                string `mapstructure:"mode" yaml:"mode"`
	PublicURL           string `mapstructure:"public_url" yaml:"public_url"` // 生成 absoluteUrl 用，留空则按请求推断
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type" yaml:"type"`         // sqlite, mysql, postgres
	Filename string `mapstructure:"filename" yaml:"filename"` // for sqlite
	Host     string `mapstructure:"host" yaml:"host"`
	Port     string `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"-"`
	Name     string `mapstructure:"name" yaml:"name"` // database name
	SSL      bool   `mapstructure:"ssl" yaml:"ssl"`   // enable TLS/SSL
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret" yaml:"-"`
	ExpirationHours int    `mapstructure:"expiration_hours" yaml:"expiration_hours"`
}

// AdminConfig 单管理员模式，密码以 bcrypt 哈希保存
type AdminConfig struct {
	Username     string `mapstructure:"username" yaml:"username"`
	PasswordHash string `mapstructure:"password_hash" yaml:"-"`
}

type UploadConfig struct {
	Path           string `mapstructure:"path" yaml:"path"`
	URLPrefix      string `mapstructure:"url_prefix" yaml:"url_prefix"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

type ImageConfig struct {
	Quality           int `mapstructure:"quality" yaml:"quality"`               // 上传时重新压缩的固定质量
	ResizeQuality     int `mapstructure:"resize_quality" yaml:"resize_quality"` // 实时缩放默认质量
	MaxDimension      int `mapstructure:"max_dimension" yaml:"max_dimension"`
	ResizeCacheMaxAge int `mapstructure:"resize_cache_max_age" yaml:"resize_cache_max_age"` // 秒
}

type StorageConfig struct {
	Driver string      `mapstructure:"driver" yaml:"driver"` // local, minio
	MinIO  MinIOConfig `mapstructure:"minio" yaml:"minio"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKey string `mapstructure:"access_key" yaml:"-"`
	SecretKey string `mapstructure:"secret_key" yaml:"-"`
	Bucket    string `mapstructure:"bucket" yaml:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl" yaml:"use_ssl"`
	Region    string `mapstructure:"region" yaml:"region"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"-"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled" yaml:"enabled"`
	Protocol    string  `mapstructure:"protocol" yaml:"protocol"` // grpc, http/protobuf
	ServiceName string  `mapstructure:"service_name" yaml:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio" yaml:"sample_ratio"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

// Set 直接替换当前配置，供测试与命令行引导使用
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	watchConfig(v)
	log.Println("✅ 配置加载成功")
}

// InitConfigWithoutWatch 加载配置但不监听文件变更（测试与一次性命令使用）
func InitConfigWithoutWatch(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 ANNIV_MEDIA_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 ANNIV_MEDIA_SERVER_PORT
	v.SetEnvPrefix("ANNIV_MEDIA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_url", "")
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 90)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/anniv_media.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "anniv_media")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.timeout_seconds", 60)
	v.SetDefault("image.quality", 80)
	v.SetDefault("image.resize_quality", 75)
	v.SetDefault("image.max_dimension", 3840)
	v.SetDefault("image.resize_cache_max_age", 2592000)
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.minio.endpoint", "")
	v.SetDefault("storage.minio.access_key", "")
	v.SetDefault("storage.minio.secret_key", "")
	v.SetDefault("storage.minio.bucket", "anniv-media")
	v.SetDefault("storage.minio.use_ssl", false)
	v.SetDefault("storage.minio.region", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "anniv_media")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.protocol", "grpc")
	v.SetDefault("tracing.service_name", "anniv-media")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// watchConfig 配置文件变更时热更新快照
func watchConfig(v *viper.Viper) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("🔄 检测到配置文件变更: %s (%s)", e.Name, e.Op)
		loadAndStore(v)
	})
	v.WatchConfig()
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	normalize(&tempConfig)

	// 安全检查
	if tempConfig.Server.Mode == "release" {
		if tempConfig.JWT.Secret == "" || tempConfig.JWT.Secret == insecureDevSecret {
			log.Println("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！")
		}
	} else if tempConfig.JWT.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		tempConfig.JWT.Secret = insecureDevSecret
	}

	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}

// normalize 修正明显非法的取值，避免下游到处判断
func normalize(cfg *Config) {
	if !strings.HasPrefix(cfg.Upload.URLPrefix, "/") {
		cfg.Upload.URLPrefix = "/" + cfg.Upload.URLPrefix
	}
	if !strings.HasSuffix(cfg.Upload.URLPrefix, "/") {
		cfg.Upload.URLPrefix += "/"
	}
	cfg.Server.PublicURL = strings.TrimRight(cfg.Server.PublicURL, "/")
	if cfg.Image.Quality < 1 || cfg.Image.Quality > 100 {
		cfg.Image.Quality = 80
	}
	if cfg.Image.ResizeQuality < 1 || cfg.Image.ResizeQuality > 100 {
		cfg.Image.ResizeQuality = 75
	}
	if cfg.Image.MaxDimension <= 0 {
		cfg.Image.MaxDimension = 3840
	}
	if cfg.Image.ResizeCacheMaxAge <= 0 {
		cfg.Image.ResizeCacheMaxAge = 2592000
	}
	if cfg.Upload.TimeoutSeconds <= 0 {
		cfg.Upload.TimeoutSeconds = 60
	}
}

func enforceJWTSecretSafety() {
	// 首次启动安全检查：如果是 release 模式，拦截不安全的 JWT Secret
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == insecureDevSecret {
			log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！\n请设置环境变量 ANNIV_MEDIA_JWT_SECRET 或在配置文件中指定 jwt.secret")
		}
	}
}
