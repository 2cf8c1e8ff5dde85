package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Export    ExportConfig    `mapstructure:"export"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	MaxBodyMB int64      `mapstructure:"max_body_mb"` // 请求体上限（图片上传走 data URL，需放宽）
	CORS      CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// 存储驱动
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// StorageConfig 键值存储配置
// 四个记录集合与主题标记都以 JSON 文本存放在同一个 KV 抽象之下
type StorageConfig struct {
	Driver    string `mapstructure:"driver"`     // memory | redis | postgres
	KeyPrefix string `mapstructure:"key_prefix"` // 仅 redis 使用
}

// DatabaseConfig PostgreSQL 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 连接最大生命周期（分钟）
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig 值班表导出配置
type ExportConfig struct {
	FilePrefix  string       `mapstructure:"file_prefix"`
	SheetName   string       `mapstructure:"sheet_name"`
	ColumnWidth float64      `mapstructure:"column_width"`
	Snapshot    bool         `mapstructure:"snapshot"` // 导出后是否归档 PNG 快照
	Raster      RasterConfig `mapstructure:"raster"`
}

// RasterConfig 导出快照图片配置
type RasterConfig struct {
	Width        int     `mapstructure:"width"`
	RowHeight    int     `mapstructure:"row_height"`
	ColumnOffset int     `mapstructure:"column_offset"`
	FontSize     float64 `mapstructure:"font_size"`
}

// RateLimitConfig 导出接口限流（仅在 Redis 可用时生效）
type RateLimitConfig struct {
	ExportLimit  int           `mapstructure:"export_limit"`
	ExportWindow time.Duration `mapstructure:"export_window"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_mb", 10)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.key_prefix", "")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "nobet")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Europe/Istanbul")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 60)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("export.file_prefix", "nobet-cizelgesi")
	v.SetDefault("export.sheet_name", "Nöbet Çizelgesi")
	v.SetDefault("export.column_width", 30)
	v.SetDefault("export.snapshot", true)
	v.SetDefault("export.raster.width", 800)
	v.SetDefault("export.raster.row_height", 30)
	v.SetDefault("export.raster.column_offset", 400)
	v.SetDefault("export.raster.font_size", 14)

	v.SetDefault("rate_limit.export_limit", 20)
	v.SetDefault("rate_limit.export_window", "1m")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("NOBET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("配置校验失败: 不支持的 storage.driver %q", c.Storage.Driver)
	}
	if c.Export.FilePrefix == "" {
		return fmt.Errorf("配置校验失败: export.file_prefix 不能为空")
	}
	if c.Export.ColumnWidth <= 0 {
		return fmt.Errorf("配置校验失败: export.column_width 必须大于 0")
	}
	if c.Export.Raster.Width <= 0 || c.Export.Raster.RowHeight <= 0 {
		return fmt.Errorf("配置校验失败: export.raster 宽度与行高必须大于 0")
	}
	return nil
}
