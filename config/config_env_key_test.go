package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"database": map[string]any{
			"maxOpenConns": 4,
		},
		"seed": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "SEED_BUCKETURL", want: "seed.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlDoc := `
env:
  env: test
  serviceName: holocron
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
database:
  url: "file:holocron.db"
  maxOpenConns: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlDoc), 0o600))
	t.Chdir(dir)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "file:override.db")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "holocron", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "file:override.db", cfg.Database.URL)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Database)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, defaultSeedPrefix, cfg.Seed.Prefix)
	assert.Nil(t, cfg.Postgres)
}
