package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func environ(kv ...string) func() []string {
	return func() []string { return kv }
}

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"data": map[string]any{
			"criticalPoints": "x.csv",
		},
		"proximity": map[string]any{
			"maxDistanceKm": 100,
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATA_CRITICALPOINTS", want: "data.criticalPoints"},
		{envKey: "PROXIMITY_MAXDISTANCEKM", want: "proximity.maxDistanceKm"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "LOG__LEVEL", want: "log.level"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoad_SampleFile(t *testing.T) {
	cfg, err := Load(environ())
	require.NoError(t, err)

	assert.Equal(t, "hydronet", cfg.ServiceName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadHeaderTimeout)
	assert.Equal(t, "data/puntos_criticos.csv", cfg.Data.CriticalPoints)
	assert.Equal(t, 100.0, cfg.Proximity.MaxDistanceKm)
	assert.Equal(t, 5, cfg.Proximity.MaxNeighbors)
	assert.Equal(t, 4, cfg.Proximity.Workers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := Load(environ(
		"HYDRONET_PROXIMITY_MAXDISTANCEKM=150.5",
		"HYDRONET_PROXIMITY_MAXNEIGHBORS=3",
		"HYDRONET_LOG_PRETTY=true",
		"HYDRONET_HTTP_TIMEOUTS_WRITETIMEOUT=2m",
		"HYDRONET_DATA_RESERVOIRS=/srv/embalses.csv",
		"OTHER_HTTP_PORT=1",
	))
	require.NoError(t, err)

	assert.Equal(t, 150.5, cfg.Proximity.MaxDistanceKm)
	assert.Equal(t, 3, cfg.Proximity.MaxNeighbors)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.Timeouts.WriteTimeout)
	assert.Equal(t, "/srv/embalses.csv", cfg.Data.Reservoirs)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(environ("HYDRONET_HTTP_PORT=70000"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = Load(environ("HYDRONET_LOG_LEVEL=verbose"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = Load(environ("HYDRONET_PROXIMITY_MAXDISTANCEKM=-4"))
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadWithEnv_DefaultsAndSearchPath(t *testing.T) {
	dir := t.TempDir()
	yml := "data:\n  reservoirs: r.csv\n  criticalPoints: c.csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minimal.yaml"), []byte(yml), 0o600))

	cfg, err := LoadWithEnv[Config]("minimal", environ(), "does-not-exist", dir)
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, "r.csv", cfg.Data.Reservoirs)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultMaxDistanceKm, cfg.Proximity.MaxDistanceKm)
	assert.Equal(t, defaultMaxNeighbors, cfg.Proximity.MaxNeighbors)
	assert.Equal(t, defaultWorkers, cfg.Proximity.Workers)
	assert.Equal(t, defaultShutdown, cfg.HTTP.Timeouts.ShutdownTimeout)

	_, err = LoadWithEnv[Config]("absent", environ(), dir)
	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HYDRONET_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("HYDRONET_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("HYDRONET_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("HYDRONET_TEST_DOTENV"))

	t.Setenv("HYDRONET_TEST_DOTENV", "from-process")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv("HYDRONET_TEST_DOTENV"), "existing variables win")
}
