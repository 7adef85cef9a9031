package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rnxcheck.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadConfig(writeConfig(t, "root: /data/igs\nworkers: 8\nformat: csv\nquiet: true\n"))
	assert.NoError(err)
	assert.Equal("/data/igs", cfg.Root)
	assert.Equal(8, cfg.Workers)
	assert.Equal("csv", cfg.Format)
	assert.True(cfg.Quiet)
}

func TestLoadConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadConfig(writeConfig(t, "root: /data/igs\n"))
	assert.NoError(err)
	assert.Equal(4, cfg.Workers)
	assert.Equal("column", cfg.Format)
	assert.False(cfg.Quiet)
}

func TestLoadConfigInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadConfig(writeConfig(t, "format: html\n"))
	assert.Error(err, "unknown report format")

	_, err = LoadConfig(writeConfig(t, "workers: 100000\n"))
	assert.Error(err, "worker count out of range")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nosuchfile.yml"))
	assert.Error(err)
}
