package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Ingest.Workers)
	assert.Equal(t, 64, cfg.Ingest.QueueSize)
	assert.False(t, cfg.Ingest.Upsert)
	assert.True(t, cfg.Upload.Remove)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes())
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
port: "8080"
data_dir: /var/lib/polingest
ingest:
  workers: 4
  upsert: true
upload:
  dir: /tmp/uploads
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("POLINGEST_WORKERS", "6")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/var/lib/polingest", cfg.DataDir)
	assert.Equal(t, 6, cfg.Ingest.Workers)
	assert.True(t, cfg.Ingest.Upsert)
	assert.Equal(t, "/tmp/uploads", cfg.Upload.Dir)
	assert.Equal(t, 64, cfg.Ingest.QueueSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("POLINGEST_WORKERS", "0")
	t.Setenv("POLINGEST_QUEUE_SIZE", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest.workers")
	assert.Contains(t, err.Error(), "ingest.queue_size")
}
