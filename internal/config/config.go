package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Tracing TracingConfig
	Env     string
}

type ServerConfig struct {
	Addr              string
	AllowOrigins      []string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type DatasetConfig struct {
	Path string
}

type TracingConfig struct {
	Enabled        bool
	ServiceName    string
	Endpoint       string
	Insecure       bool
	SampleRatio    float64
	Environment    string
	ServiceVersion string
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function so tests do not
// have to touch the process environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		value := strings.TrimSpace(getenv(key))
		if value == "" {
			return def
		}
		return value
	}

	readHeaderTimeout, err := time.ParseDuration(get("QA_READ_HEADER_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("QA_READ_HEADER_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(get("QA_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("QA_SHUTDOWN_TIMEOUT: %w", err)
	}

	ratio, err := strconv.ParseFloat(get("OTEL_SAMPLER_RATIO", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("OTEL_SAMPLER_RATIO: %w", err)
	}
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLER_RATIO must be within [0, 1], got %v", ratio)
	}

	env := get("APP_ENV", "development")

	return &Config{
		Env: env,
		Server: ServerConfig{
			Addr:              get("ADDR", ":3000"),
			AllowOrigins:      splitList(get("CORS_ALLOW_ORIGINS", "*")),
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		Dataset: DatasetConfig{
			Path: get("QA_DATA_PATH", "data/questions.json"),
		},
		Tracing: TracingConfig{
			Enabled:        parseBool(getenv("OTEL_ENABLED")),
			ServiceName:    get("OTEL_SERVICE_NAME", "qa-service"),
			Endpoint:       get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:       parseBool(getenv("OTEL_EXPORTER_OTLP_INSECURE")),
			SampleRatio:    ratio,
			Environment:    env,
			ServiceVersion: get("QA_VERSION", "dev"),
		},
	}, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
