package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName string
	Env     string
	Host    string
	Port    int

	SnapshotDSN  string
	SnapshotSlot string

	SimulatorEnabled bool
	ReplyMinDelay    time.Duration
	ReplyMaxDelay    time.Duration

	CORSOrigins []string
	Debug       bool
}

func Load() (*Config, error) {
	// Optional .env overlay; a missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		AppName: getEnv("APP_NAME", "teamchat"),
		Env:     getEnv("APP_ENV", "development"),
		Host:    getEnv("HTTP_HOST", "0.0.0.0"),
		Port:    getEnvAsInt("HTTP_PORT", 8000),

		SnapshotDSN:  getEnv("SNAPSHOT_DSN", "teamchat.db"),
		SnapshotSlot: getEnv("SNAPSHOT_SLOT", "chatApp"),

		SimulatorEnabled: getEnvAsBool("SIMULATOR_ENABLED", true),
		ReplyMinDelay:    time.Duration(getEnvAsInt("REPLY_MIN_DELAY_MS", 1000)) * time.Millisecond,
		ReplyMaxDelay:    time.Duration(getEnvAsInt("REPLY_MAX_DELAY_MS", 4000)) * time.Millisecond,

		Debug: getEnvAsBool("DEBUG", true),
	}

	cors := getEnv("CORS_ORIGINS", "")
	if cors != "" {
		parts := strings.Split(cors, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.CORSOrigins = parts
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	if cfg.ReplyMaxDelay < cfg.ReplyMinDelay {
		return nil, fmt.Errorf("REPLY_MAX_DELAY_MS must be >= REPLY_MIN_DELAY_MS")
	}

	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvAsBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
