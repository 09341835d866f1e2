package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  log:
    level: info
http:
  port: 9090
geocoder:
  userAgent: agroalert-test
  cacheRadiusMeters: 100
alertApi:
  baseUrl: http://localhost:8081
  timeout: 3s
categories:
  - name: pest
  - name: weed
    label: Weed
    threatKey: weedName
`

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("ALERTAPI_BASEURL", "http://alerts.internal:9000")
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.Port)
	require.NotNil(t, cfg.AlertAPI)
	assert.Equal(t, "http://alerts.internal:9000", cfg.AlertAPI.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.AlertAPI.Timeout)
	require.NotNil(t, cfg.Geocoder)
	assert.Equal(t, "agroalert-test", cfg.Geocoder.UserAgent)
	assert.InDelta(t, 100.0, cfg.Geocoder.CacheRadiusMeters, 1e-9)
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "weedName", cfg.Categories[1].ThreatKey)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config gets every section", func(t *testing.T) {
		cfg := &Config{}
		cfg.applyDefaults()

		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, defaultGeocoderBaseURL, cfg.Geocoder.BaseURL)
		assert.Equal(t, DefaultAddressKeys, cfg.Geocoder.AddressKeys)
		assert.InDelta(t, defaultGeocoderCacheRadius, cfg.Geocoder.CacheRadiusMeters, 1e-9)
		assert.Equal(t, "UTC", cfg.AlertAPI.Timezone)
		assert.Equal(t, DefaultCategories(), cfg.Categories)
		assert.Equal(t, 3, cfg.Alerts.RecentLimit)
		assert.Equal(t, 20, cfg.Alerts.DefaultPageLimit)
		assert.Equal(t, 100, cfg.Alerts.MaxPageLimit)
		assert.Equal(t, 100, cfg.Scan.BatchSize)
		assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
		assert.False(t, cfg.Database.AutoMigrate)
	})

	t.Run("category fields derived from name", func(t *testing.T) {
		cfg := &Config{Categories: []CategoryConfig{{Name: "weed"}}}
		cfg.applyDefaults()

		require.Len(t, cfg.Categories, 1)
		assert.Equal(t, CategoryConfig{
			Name:      "weed",
			Label:     "Weed",
			Path:      "/api/weed-alerts",
			ThreatKey: "weedName",
		}, cfg.Categories[0])
	})

	t.Run("multi word label", func(t *testing.T) {
		cfg := &Config{Categories: []CategoryConfig{{Name: "root-rot", ThreatKey: "diseaseName"}}}
		cfg.applyDefaults()

		assert.Equal(t, "Root Rot", cfg.Categories[0].Label)
		assert.Equal(t, "/api/root-rot-alerts", cfg.Categories[0].Path)
	})

	t.Run("explicit zero cache radius disables the cache", func(t *testing.T) {
		cfg := &Config{Geocoder: &GeocoderConfig{}}
		cfg.applyDefaults()

		assert.Zero(t, cfg.Geocoder.CacheRadiusMeters)
	})
}
