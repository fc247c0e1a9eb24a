package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intake.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
logging {
  level  = "debug"
  format = "json"
}

server {
  addr = ":9090"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "report", cfg.Output.Format)
}

func TestLoadOutputBlock(t *testing.T) {
	path := writeConfig(t, `
output {
  format = "json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `server { addr = `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
}

func TestGlobalConfig(t *testing.T) {
	original := Get()
	defer Set(original)

	custom := Default()
	custom.Server.Addr = ":7070"
	Set(custom)
	assert.Equal(t, ":7070", Get().Server.Addr)
}
