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
			"sslMode":  "disable",
			"userName": "user",
		},
		"jwt": map[string]any{
			"securityKey":           "",
			"validateSecurityStamp": false,
		},
		"mirror": map[string]any{
			"reconcileInterval": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "JWT_SECURITYKEY", want: "jwt.securityKey"},
		{envKey: "JWT_VALIDATESECURITYSTAMP", want: "jwt.validateSecurityStamp"},
		{envKey: "MIRROR_RECONCILEINTERVAL", want: "mirror.reconcileInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsEmptySections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.JWT)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Mirror)
	require.NotNil(t, cfg.PasswordStrength)

	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 3, cfg.Mirror.MaxAttempts)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Zero(t, cfg.Mirror.ReconcileInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		JWT:    &JWTConfig{Expiration: time.Minute},
		Mirror: &MirrorConfig{MaxAttempts: 7},
	}
	cfg.Storage.Driver = StorageDriverMemory
	cfg.ApplyDefaults()

	assert.Equal(t, time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 7, cfg.Mirror.MaxAttempts)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "r0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "r1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "r0", replicas[0].Host)
}

func TestLoadWithEnv_DecodesPostgresConnection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
postgres:
  master:
    host: db
    port: "5432"
    userName: blog
    password: secret
  database: blog
  connMaxLifetime: 30m
  replicas:
    - host: replica
      port: "5433"
mirror:
  reconcileInterval: 5m
`), 0o600))
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db", cfg.Postgres.Master.Host)
	assert.Equal(t, "blog", cfg.Postgres.Master.UserName)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
	require.Len(t, cfg.Postgres.Replicas, 1)
	assert.Equal(t, "replica", cfg.Postgres.Replicas[0].Host)
	assert.Equal(t, 5*time.Minute, cfg.Mirror.ReconcileInterval)
	assert.Contains(t, cfg.Postgres.Master.DSN(cfg.Postgres), "host=db port=5432 user=blog")
}
