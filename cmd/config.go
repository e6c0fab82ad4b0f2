package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string `mapstructure:"http_port"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	KafkaBrokers        []string `mapstructure:"kafka_brokers"`
	KafkaLifecycleTopic string   `mapstructure:"kafka_lifecycle_topic"`

	InfoRequestDueWindow time.Duration `mapstructure:"info_request_due_window"`
	ExpirySweepSchedule  string        `mapstructure:"expiry_sweep_schedule"`
	OutboxRelaySchedule  string        `mapstructure:"outbox_relay_schedule"`
	OutboxBatchSize      int           `mapstructure:"outbox_batch_size"`
	OutboxPublishTimeout time.Duration `mapstructure:"outbox_publish_timeout"`
	StaleWriteRetries    uint64        `mapstructure:"stale_write_retries"`

	LogLevel string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"http_port":               "8082",
	"db_host":                 "localhost",
	"db_port":                 "5432",
	"db_user":                 "postgres",
	"db_password":             "",
	"db_name":                 "marketplace",
	"db_sslmode":              "disable",
	"kafka_brokers":           []string{"localhost:9092"},
	"kafka_lifecycle_topic":   "marketplace.lifecycle",
	"info_request_due_window": "72h",
	"expiry_sweep_schedule":   "0 */5 * * * *",
	"outbox_relay_schedule":   "*/5 * * * * *",
	"outbox_batch_size":       100,
	"outbox_publish_timeout":  "10s",
	"stale_write_retries":     3,
	"log_level":               "info",
}

// LoadConfig reads the environment, after loading envFiles into it when they
// exist. A missing file is not an error.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if len(c.KafkaBrokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required"))
	}
	if c.InfoRequestDueWindow <= 0 {
		errs = append(errs, fmt.Errorf("INFO_REQUEST_DUE_WINDOW must be positive, got %s", c.InfoRequestDueWindow))
	}
	if c.OutboxPublishTimeout <= 0 {
		errs = append(errs, fmt.Errorf("OUTBOX_PUBLISH_TIMEOUT must be positive, got %s", c.OutboxPublishTimeout))
	}
	if c.OutboxBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.OutboxBatchSize))
	}
	return errors.Join(errs...)
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
