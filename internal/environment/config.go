// Package environment assembles the client configuration from defaults,
// an optional TOML config file and environment variables, in that order
// of precedence.
package environment

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultUserID       = "unknown"
	DefaultPollInterval = 900 * time.Millisecond
	DefaultJobTimeout   = 2 * time.Minute
)

type Config struct {
	ServerURL    string
	UserID       string
	Language     string
	PollInterval time.Duration
	JobTimeout   time.Duration

	// Optional event sinks. Empty values disable the sink.
	NatsURL     string
	NatsSubject string
	SqsQueueURL string
}

// fileConfig mirrors the TOML config file layout.
type fileConfig struct {
	ServerURL      string `toml:"server_url"`
	UserID         string `toml:"user_id"`
	Language       string `toml:"language"`
	PollIntervalMs int64  `toml:"poll_interval_ms"`
	JobTimeoutMs   int64  `toml:"job_timeout_ms"`
	NatsURL        string `toml:"nats_url"`
	NatsSubject    string `toml:"nats_subject"`
	SqsQueueURL    string `toml:"sqs_queue_url"`
}

// ReadConfig builds the effective configuration. A .env file in the
// working directory is loaded first if present, then the TOML file at
// configPath (skipped when empty or missing), then JUDGE_* environment
// variables override everything.
func ReadConfig(configPath string) (*Config, error) {
	// Missing .env is fine, the process environment may already be set.
	_ = godotenv.Load()

	cfg := &Config{
		UserID:       DefaultUserID,
		PollInterval: DefaultPollInterval,
		JobTimeout:   DefaultJobTimeout,
	}

	if configPath != "" {
		if err := applyFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if cfg.ServerURL == "" {
		return nil, errors.New("no judge server url configured (set JUDGE_URL or server_url)")
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var f fileConfig
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if f.ServerURL != "" {
		cfg.ServerURL = f.ServerURL
	}
	if f.UserID != "" {
		cfg.UserID = f.UserID
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.PollIntervalMs > 0 {
		cfg.PollInterval = time.Duration(f.PollIntervalMs) * time.Millisecond
	}
	if f.JobTimeoutMs > 0 {
		cfg.JobTimeout = time.Duration(f.JobTimeoutMs) * time.Millisecond
	}
	if f.NatsURL != "" {
		cfg.NatsURL = f.NatsURL
	}
	if f.NatsSubject != "" {
		cfg.NatsSubject = f.NatsSubject
	}
	if f.SqsQueueURL != "" {
		cfg.SqsQueueURL = f.SqsQueueURL
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JUDGE_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("JUDGE_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("JUDGE_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("JUDGE_POLL_INTERVAL_MS"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil && ms > 0 {
			cfg.PollInterval = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("JUDGE_JOB_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil && ms > 0 {
			cfg.JobTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NatsURL = v
	}
	if v := os.Getenv("NATS_SUBJECT"); v != "" {
		cfg.NatsSubject = v
	}
	if v := os.Getenv("SQS_QUEUE_URL"); v != "" {
		cfg.SqsQueueURL = v
	}
}
