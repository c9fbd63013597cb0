package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/warden/internal/refconf"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warden.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_WithOverride(t *testing.T) {
	path := writeConfig(t, "reference-config-file: /etc/warden/reference.config\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/warden/reference.config", cfg.ReferencePath())
}

func TestLoad_MissingKeyFallsBackToDefault(t *testing.T) {
	path := writeConfig(t, "# no reference-config-file key\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, refconf.DefaultPath, cfg.ReferencePath())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "reference-config-file: [not: valid\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestZeroValueConfig(t *testing.T) {
	var cfg Config
	assert.Equal(t, refconf.DefaultPath, cfg.ReferencePath())
}
