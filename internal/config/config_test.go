package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.Author)
	assert.Empty(t, cfg.Email)
	assert.Nil(t, cfg.Features.Postgres)
	assert.Nil(t, cfg.Features.Celery)
}

func TestLoadFrom_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `author: Jane Dev
email: jane@example.com
features:
  docker: false
  celery: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Dev", cfg.Author)
	assert.Equal(t, "jane@example.com", cfg.Email)
	assert.Empty(t, cfg.Description)

	require.NotNil(t, cfg.Features.Docker)
	assert.False(t, *cfg.Features.Docker)
	require.NotNil(t, cfg.Features.Celery)
	assert.True(t, *cfg.Features.Celery)
	assert.Nil(t, cfg.Features.Postgres, "unset toggle should stay nil")
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("author: [unclosed"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestNewPathsWithOverrides(t *testing.T) {
	paths := NewPathsWithOverrides("/tmp/apiforge-test")

	assert.Equal(t, "/tmp/apiforge-test", paths.ConfigDir)
	assert.Equal(t, filepath.Join("/tmp/apiforge-test", "config.yaml"), paths.ConfigFile)
}
