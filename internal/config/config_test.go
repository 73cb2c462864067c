package config

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "ADMIN_PASSWORD", "SITE_NAME", "ENV_FILE",
		"LICENSE_FILE", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "changeme", cfg.AdminSecret)
	require.Equal(t, "SaavyShop Demo", cfg.SiteName)
	require.Equal(t, ".license", cfg.LicenseFile)
	require.Equal(t, "saavyshop", cfg.DBName)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "hunter2", cfg.AdminSecret)
}

func TestNewRedisClientNilWhenUnconfigured(t *testing.T) {
	for _, key := range []string{"REDIS_ADDR", "REDIS_HOST", "REDIS_PORT"} {
		t.Setenv(key, "")
	}
	require.Nil(t, NewRedisClient())
}

func TestNewRedisClientConnects(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_ADDR", mr.Addr())

	client := NewRedisClient()
	require.NotNil(t, client)
	client.Close()
}

func TestNewRedisClientNilWhenUnreachable(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	addr := mr.Addr()
	mr.Close()

	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_ADDR", addr)
	require.Nil(t, NewRedisClient())
}
