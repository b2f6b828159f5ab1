package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	Platform  PlatformConfig  `mapstructure:"platform"`
	Console   ConsoleConfig   `mapstructure:"console"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`

	// set from command line flags, never read from the file
	ForceMigrate bool `mapstructure:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// LogConfig controls the rotating log file; Level overrides the level derived
// from the server mode.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PlatformConfig points the console at the HR assessment platform REST API.
type PlatformConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	CSRFToken string        `mapstructure:"csrf_token"`
	CSRFPath  string        `mapstructure:"csrf_path"`
	Timeout   time.Duration `mapstructure:"timeout_seconds"`
}

type ConsoleConfig struct {
	TimeZone        string        `mapstructure:"time_zone"`
	NoticeTTL       time.Duration `mapstructure:"notice_ttl_ms"`
	ReorderDebounce time.Duration `mapstructure:"reorder_debounce_ms"`
	LogoMaxBytes    int64         `mapstructure:"logo_max_bytes"`
	HiddenModules   []string      `mapstructure:"hidden_modules"`
}

// Location resolves the console time zone, falling back to the local zone.
func (c ConsoleConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

const (
	DefaultNoticeTTL       = 3 * time.Second
	DefaultReorderDebounce = 500 * time.Millisecond
	DefaultLogoMaxBytes    = 2 << 20
	DefaultPlatformTimeout = 30 * time.Second
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("HR_CONSOLE")
	v.AutomaticEnv()

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")

	// Platform
	v.BindEnv("platform.base_url", "PLATFORM_BASE_URL")
	v.BindEnv("platform.csrf_token", "PLATFORM_CSRF_TOKEN")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	v.SetDefault("platform.csrf_path", "/login/")
	v.SetDefault("platform.timeout_seconds", 30)
	v.SetDefault("console.notice_ttl_ms", 3000)
	v.SetDefault("console.reorder_debounce_ms", 500)
	v.SetDefault("console.logo_max_bytes", DefaultLogoMaxBytes)
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "uploads")
	v.SetDefault("log.file", "logs/console.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.normalize()

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}
	if cfg.Platform.BaseURL == "" {
		return nil, fmt.Errorf("platform.base_url is required")
	}

	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath != "" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

// normalize turns the unit-less numbers of the yaml file into durations and
// fills gaps with the console defaults.
func (c *Config) normalize() {
	c.JWT.ExpireTime = c.JWT.ExpireTime * time.Hour
	c.Platform.Timeout = c.Platform.Timeout * time.Second
	c.Console.NoticeTTL = c.Console.NoticeTTL * time.Millisecond
	c.Console.ReorderDebounce = c.Console.ReorderDebounce * time.Millisecond

	if c.Platform.Timeout <= 0 {
		c.Platform.Timeout = DefaultPlatformTimeout
	}
	if c.Console.NoticeTTL <= 0 {
		c.Console.NoticeTTL = DefaultNoticeTTL
	}
	if c.Console.ReorderDebounce <= 0 {
		c.Console.ReorderDebounce = DefaultReorderDebounce
	}
	if c.Console.LogoMaxBytes <= 0 {
		c.Console.LogoMaxBytes = DefaultLogoMaxBytes
	}
}
