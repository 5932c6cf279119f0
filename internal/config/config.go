package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig 数据库配置（Postgres 快照后端）
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// MirrorConfig 远端镜像（试算表后端）配置
type MirrorConfig struct {
	Enabled   bool
	BaseURL   string
	Timeout   time.Duration
	QueueSize int
}

// Config smartlandlord（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig
	Redis     struct {
		Addr     string
		Password string
		DB       int
	}
	Mirror MirrorConfig
	Log    struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	// .env 仅用于本地开发；不存在时静默跳过
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to false: without a DB the service snapshots to Redis.
	cfg.DBEnabled = getEnv("DB_ENABLED", "false") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "smartlandlord")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	// 镜像未配置 URL 时整体停用（数据仅存本地）
	cfg.Mirror.BaseURL = getEnv("MIRROR_BASE_URL", "")
	cfg.Mirror.Enabled = getEnv("MIRROR_ENABLED", "true") == "true" && cfg.Mirror.BaseURL != ""
	cfg.Mirror.Timeout = time.Duration(parseInt(getEnv("MIRROR_TIMEOUT_SECONDS", "10"), 10)) * time.Second
	cfg.Mirror.QueueSize = parseInt(getEnv("MIRROR_QUEUE_SIZE", "256"), 256)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
