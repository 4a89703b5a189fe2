package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, StoreTypeFile, cfg.Store.Type)
	require.Equal(t, "data/notes.json", cfg.Store.Path)
	require.Equal(t, []string{"http://localhost:3000", "https://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, "info", cfg.LogConfig.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"port": 9090, "store": {"type": "memory"}, "cors_origins": ["http://example.com"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, StoreTypeMemory, cfg.Store.Type)
	require.Equal(t, []string{"http://example.com"}, cfg.CORSOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_TYPE", "memory")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Port)
	require.Equal(t, StoreTypeMemory, cfg.Store.Type)
}

func TestLoadRejectsBadStoreType(t *testing.T) {
	t.Setenv("STORE_TYPE", "postgres")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 700000}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
