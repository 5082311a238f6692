package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultRegion = "us-east-1"

// ServiceConfig is read once at startup and never modified afterwards.
// An empty Target puts the service in local-safe mode.
type ServiceConfig struct {
	Service   string
	Region    string
	Target    string
	BasePath  string
	Endpoint  string
	AccessKey string
	SecretKey string
	Addr      string
	LogLevel  slog.Level
}

// Spec describes which environment variable holds the target identifier
// and where the service listens when ADDR is unset.
type Spec struct {
	Service     string
	TargetEnv   string
	DefaultAddr string
}

var (
	S3Service = Spec{
		Service:     "s3-service",
		TargetEnv:   "BUCKET_NAME",
		DefaultAddr: ":8080",
	}

	SQSService = Spec{
		Service:     "sqs-service",
		TargetEnv:   "QUEUE_URL",
		DefaultAddr: ":8081",
	}
)

// LoadDotEnv loads a .env file from the working directory. A missing file
// is fine, the services run from the plain environment.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func Load(spec Spec) (ServiceConfig, error) {
	return FromLookup(spec, os.LookupEnv)
}

// FromLookup builds a ServiceConfig from an arbitrary env lookup func.
func FromLookup(spec Spec, lookup func(string) (string, bool)) (ServiceConfig, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	level, err := parseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return ServiceConfig{}, err
	}

	return ServiceConfig{
		Service:   spec.Service,
		Region:    get("AWS_REGION", defaultRegion),
		Target:    get(spec.TargetEnv, ""),
		BasePath:  strings.TrimRight(get("BASE_PATH", ""), "/"),
		Endpoint:  get("AWS_ENDPOINT_URL", ""),
		AccessKey: get("AWS_ACCESS_KEY_ID", ""),
		SecretKey: get("AWS_SECRET_ACCESS_KEY", ""),
		Addr:      get("ADDR", spec.DefaultAddr),
		LogLevel:  level,
	}, nil
}

// LocalSafe reports whether the external target is unconfigured.
func (c ServiceConfig) LocalSafe() bool {
	return c.Target == ""
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
