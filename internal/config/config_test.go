package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan_timeout: 5s\nmax_port: 1024\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.ScanTimeout))
	assert.Equal(t, 1024, cfg.MaxPort)
	// untouched fields keep defaults
	assert.Equal(t, Default().EnrichTimeout, cfg.EnrichTimeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portscope.yaml")

	require.NoError(t, os.WriteFile(path, []byte("scan_timeout: soon\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("max_port: 700000\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
