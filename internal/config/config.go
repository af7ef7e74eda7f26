// Package config centralizes the environment-derived configuration
// (§6 EXTERNAL INTERFACES "Environment variables").
package config

import "os"

// Config holds the process-wide settings read from the environment.
type Config struct {
	RedisAddress string

	MetricsEndpoint string
	MetricsUsername string
	MetricsPassword string
}

// FromEnv reads REDIS_ADDRESS, METRICS_ENDPOINT, METRICS_USERNAME, and
// METRICS_PASSWORD, applying the documented defaults.
func FromEnv() Config {
	return Config{
		RedisAddress:    getEnv("REDIS_ADDRESS", "127.0.0.1:6379"),
		MetricsEndpoint: os.Getenv("METRICS_ENDPOINT"),
		MetricsUsername: os.Getenv("METRICS_USERNAME"),
		MetricsPassword: os.Getenv("METRICS_PASSWORD"),
	}
}

// HasMetrics reports whether a metrics push endpoint is configured,
// gating the worker's metrics-flush thread (§4.6).
func (c Config) HasMetrics() bool { return c.MetricsEndpoint != "" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
