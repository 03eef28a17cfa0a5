package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwb/visit-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.03, cfg.BucketThreshold)
	assert.Equal(t, 15, cfg.UpcomingWindowDays)
	assert.Equal(t, 10, cfg.TopResponsibles)
	assert.Equal(t, "never_scheduled", cfg.MissingSemantic)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"bucket_threshold: 0.05\nupcoming_window_days: 30\nmissing_semantic: never_completed\n",
	), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.BucketThreshold)
	assert.Equal(t, 30, cfg.UpcomingWindowDays)
	assert.Equal(t, "never_completed", cfg.MissingSemantic)
	assert.Equal(t, 10, cfg.TopResponsibles, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upcoming_window_days: 30\n"), 0o644))
	t.Setenv("VISITDASH_UPCOMING_DAYS", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.UpcomingWindowDays)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"threshold out of range": "bucket_threshold: 1.5\n",
		"negative window":        "upcoming_window_days: -1\n",
		"unknown semantic":       "missing_semantic: sometimes\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "visitdash.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}
