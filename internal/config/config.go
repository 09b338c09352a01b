package config

import (
	"os"
	"time"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Error tracking
	SentryDSN string
	AppEnv    string

	// Store latency emulation: "none" or "simulated"
	StoreLatency string

	// Typing delay window for chat replies
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),

		StoreLatency: getEnv("STORE_LATENCY", "none"),

		ReplyDelayMin: parseDuration(getEnv("REPLY_DELAY_MIN", "1500ms"), 1500*time.Millisecond),
		ReplyDelayMax: parseDuration(getEnv("REPLY_DELAY_MAX", "2500ms"), 2500*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
