package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.False(t, cfg.DBEnabled)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, "info", cfg.Log.Level)

	// 未配置 MIRROR_BASE_URL 时镜像必须停用
	require.False(t, cfg.Mirror.Enabled)
	require.Equal(t, 10*time.Second, cfg.Mirror.Timeout)
	require.Equal(t, 256, cfg.Mirror.QueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("MIRROR_BASE_URL", "http://mirror.local/exec")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.True(t, cfg.DBEnabled)
	require.Equal(t, 5433, cfg.Database.Port)
	require.True(t, cfg.Mirror.Enabled)
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p",
		Database: "smartlandlord", SSLMode: "disable",
	}
	require.Equal(t,
		"host=db port=5432 user=u password=p dbname=smartlandlord sslmode=disable",
		c.GetDSN())
}

func TestParseInt_Fallback(t *testing.T) {
	require.Equal(t, 7, parseInt("7", 0))
	require.Equal(t, 42, parseInt("not-a-number", 42))
}
