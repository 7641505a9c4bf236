package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "research/pkg/platform/strings"
)

// Storage backends for evidence.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Audit sinks.
const (
	AuditSinkMemory   = "memory"
	AuditSinkPostgres = "postgres"
	AuditSinkKafka    = "kafka"
)

// Config is the full process configuration.
type Config struct {
	Server   Server
	Evidence Evidence
	Redis    RedisConfig
	Audit    Audit
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string
	LogLevel           slog.Level
	ShutdownTimeout    time.Duration
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

// Evidence configures the evidence store and extractor.
type Evidence struct {
	StoreBackend string
	// ExtraMarkers are appended to the built-in extraction phrases.
	ExtraMarkers []string
}

// RedisConfig mirrors the go-redis options we override.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Audit selects and configures the audit sink.
type Audit struct {
	Sink         string
	BufferSize   int
	DatabaseURL  string
	KafkaBrokers []string
	KafkaTopic   string
}

// FromEnv builds a Config from environment variables so main stays lean.
// Malformed numeric or duration values are reported instead of silently
// replaced by defaults.
func FromEnv() (Config, error) {
	var errs []error

	level, err := parseLevel(getenv("LOG_LEVEL", "info"))
	errs = append(errs, err)
	shutdown, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	errs = append(errs, err)
	requestTimeout, err := durationEnv("REQUEST_TIMEOUT", 30*time.Second)
	errs = append(errs, err)
	poolSize, err := intEnv("REDIS_POOL_SIZE", 10)
	errs = append(errs, err)
	minIdle, err := intEnv("REDIS_MIN_IDLE_CONNS", 2)
	errs = append(errs, err)
	dialTimeout, err := durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second)
	errs = append(errs, err)
	readTimeout, err := durationEnv("REDIS_READ_TIMEOUT", 3*time.Second)
	errs = append(errs, err)
	writeTimeout, err := durationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second)
	errs = append(errs, err)
	bufferSize, err := intEnv("AUDIT_BUFFER_SIZE", 1024)
	errs = append(errs, err)

	origins := platformstrings.SplitList(getenv("CORS_ALLOWED_ORIGINS", "*"))

	cfg := Config{
		Server: Server{
			Addr:               getenv("RESEARCH_ADDR", ":8080"),
			LogLevel:           level,
			ShutdownTimeout:    shutdown,
			RequestTimeout:     requestTimeout,
			CORSAllowedOrigins: origins,
		},
		Evidence: Evidence{
			StoreBackend: strings.ToLower(getenv("EVIDENCE_STORE", StoreMemory)),
			ExtraMarkers: platformstrings.SplitList(os.Getenv("EVIDENCE_EXTRA_MARKERS")),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     poolSize,
			MinIdleConns: minIdle,
			DialTimeout:  dialTimeout,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Audit: Audit{
			Sink:         strings.ToLower(getenv("AUDIT_SINK", AuditSinkMemory)),
			BufferSize:   bufferSize,
			DatabaseURL:  os.Getenv("DATABASE_URL"),
			KafkaBrokers: platformstrings.SplitList(os.Getenv("KAFKA_BROKERS")),
			KafkaTopic:   getenv("KAFKA_AUDIT_TOPIC", "research.evidence.audit"),
		},
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected backends have what they need.
func (c Config) Validate() error {
	var errs []error

	switch c.Evidence.StoreBackend {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("REDIS_URL is required when EVIDENCE_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EVIDENCE_STORE %q", c.Evidence.StoreBackend))
	}

	switch c.Audit.Sink {
	case AuditSinkMemory:
	case AuditSinkPostgres:
		if c.Audit.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when AUDIT_SINK=postgres"))
		}
	case AuditSinkKafka:
		if len(c.Audit.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required when AUDIT_SINK=kafka"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUDIT_SINK %q", c.Audit.Sink))
	}

	if c.Audit.BufferSize < 0 {
		errs = append(errs, errors.New("AUDIT_BUFFER_SIZE must not be negative"))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
