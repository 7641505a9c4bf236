package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"RESEARCH_ADDR", "LOG_LEVEL", "EVIDENCE_STORE", "AUDIT_SINK",
		"REDIS_URL", "KAFKA_BROKERS", "EVIDENCE_EXTRA_MARKERS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.Server.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, StoreMemory, cfg.Evidence.StoreBackend)
	assert.Nil(t, cfg.Evidence.ExtraMarkers)
	assert.Equal(t, AuditSinkMemory, cfg.Audit.Sink)
	assert.Equal(t, 1024, cfg.Audit.BufferSize)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("RESEARCH_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EVIDENCE_STORE", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUDIT_SINK", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("EVIDENCE_EXTRA_MARKERS", "court records show, ,census data")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Server.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StoreRedis, cfg.Evidence.StoreBackend)
	assert.Equal(t, []string{"court records show", "census data"}, cfg.Evidence.ExtraMarkers)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Audit.KafkaBrokers)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("AUDIT_BUFFER_SIZE", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUDIT_BUFFER_SIZE")
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestValidate(t *testing.T) {
	base := Config{
		Evidence: Evidence{StoreBackend: StoreMemory},
		Audit:    Audit{Sink: AuditSinkMemory},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"redis without url", func(c *Config) { c.Evidence.StoreBackend = StoreRedis }, "REDIS_URL"},
		{"unknown store", func(c *Config) { c.Evidence.StoreBackend = "etcd" }, "EVIDENCE_STORE"},
		{"postgres without dsn", func(c *Config) { c.Audit.Sink = AuditSinkPostgres }, "DATABASE_URL"},
		{"kafka without brokers", func(c *Config) { c.Audit.Sink = AuditSinkKafka }, "KAFKA_BROKERS"},
		{"unknown sink", func(c *Config) { c.Audit.Sink = "s3" }, "AUDIT_SINK"},
		{"negative buffer", func(c *Config) { c.Audit.BufferSize = -1 }, "AUDIT_BUFFER_SIZE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
