package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  log:
    level: debug
http:
  port: 8080
session:
  secret: from-file
  ttl: 1h
googleOAuth:
  clientId: file-client
store:
  timeout: 2s
  retries: 1
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("GOOGLEOAUTH_CLIENTID", "env-client")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "env-client", cfg.GoogleOAuth.ClientID)
	assert.Equal(t, 2*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 1, cfg.Store.Retries)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, SessionStorePostgres, cfg.Session.Store)
	assert.Equal(t, []string{"profile", "email"}, cfg.GoogleOAuth.Scopes)
	assert.Equal(t, defaultUserInfoURL, cfg.GoogleOAuth.UserInfoURL)
	assert.Equal(t, defaultStoreTimeout, cfg.Store.Timeout)
	assert.Equal(t, defaultStoreRetries, cfg.Store.Retries)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid postgres store",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.Session.Secret = " " },
			wantErr: "session.secret",
		},
		{
			name:    "redis without address",
			mutate:  func(cfg *Config) { cfg.Session.Store = SessionStoreRedis },
			wantErr: "redis.addr",
		},
		{
			name: "redis with address",
			mutate: func(cfg *Config) {
				cfg.Session.Store = SessionStoreRedis
				cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
		{
			name:    "unknown store",
			mutate:  func(cfg *Config) { cfg.Session.Store = "memcached" },
			wantErr: "unknown session store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Session: &SessionConfig{Secret: "s3cret"}}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
