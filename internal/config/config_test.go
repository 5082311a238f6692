package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(S3Service, lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "s3-service", cfg.Service)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "", cfg.Target)
	assert.Equal(t, "", cfg.BasePath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.LocalSafe())
}

func TestFromLookup_SQS(t *testing.T) {
	cfg, err := FromLookup(SQSService, lookupFrom(map[string]string{
		"AWS_REGION": "eu-west-1",
		"QUEUE_URL":  "https://sqs.eu-west-1.amazonaws.com/123/jobs",
		"BASE_PATH":  "/sqs/",
		"LOG_LEVEL":  "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "https://sqs.eu-west-1.amazonaws.com/123/jobs", cfg.Target)
	assert.Equal(t, "/sqs", cfg.BasePath)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.LocalSafe())
}

func TestFromLookup_BucketIgnoredBySQS(t *testing.T) {
	cfg, err := FromLookup(SQSService, lookupFrom(map[string]string{
		"BUCKET_NAME": "uploads",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.LocalSafe())
}

func TestFromLookup_BlankValuesFallBack(t *testing.T) {
	cfg, err := FromLookup(S3Service, lookupFrom(map[string]string{
		"AWS_REGION":  "  ",
		"BUCKET_NAME": "",
		"ADDR":        "127.0.0.1:9000",
	}))
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.True(t, cfg.LocalSafe())
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
}

func TestFromLookup_InvalidLogLevel(t *testing.T) {
	_, err := FromLookup(S3Service, lookupFrom(map[string]string{"LOG_LEVEL": "loud"}))
	assert.Error(t, err)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CLOUD_GATEWAY_TEST_BUCKET=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CLOUD_GATEWAY_TEST_BUCKET") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("CLOUD_GATEWAY_TEST_BUCKET"))
}
