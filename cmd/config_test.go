package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8082", config.HTTPPort)
	assert.Equal(t, []string{"localhost:9092"}, config.KafkaBrokers)
	assert.Equal(t, 72*time.Hour, config.InfoRequestDueWindow)
	assert.Equal(t, 100, config.OutboxBatchSize)
	assert.Equal(t, 10*time.Second, config.OutboxPublishTimeout)
	assert.Equal(t, uint64(3), config.StaleWriteRetries)
	assert.Equal(t, slog.LevelInfo, config.SlogLevel())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("INFO_REQUEST_DUE_WINDOW", "24h")
	t.Setenv("OUTBOX_BATCH_SIZE", "10")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", config.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, config.KafkaBrokers)
	assert.Equal(t, 24*time.Hour, config.InfoRequestDueWindow)
	assert.Equal(t, 10, config.OutboxBatchSize)
	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("DB_NAME=from_file\nDB_SSLMODE=require\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_NAME")
		_ = os.Unsetenv("DB_SSLMODE")
	})

	config, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "from_file", config.DBName)
	assert.Contains(t, config.DSN(), "dbname=from_file")
	assert.Contains(t, config.DSN(), "sslmode=require")
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	t.Setenv("OUTBOX_BATCH_SIZE", "0")
	t.Setenv("INFO_REQUEST_DUE_WINDOW", "-1h")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTBOX_BATCH_SIZE")
	assert.Contains(t, err.Error(), "INFO_REQUEST_DUE_WINDOW")
}
