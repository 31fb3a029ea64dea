// Package config centralizes all application configuration into typed
// structs. Defaults come from NewDefaultConfig; Load layers environment
// overrides on top (a .env file is honored when present, for development).
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the top-level configuration container.
type Config struct {
	Server ServerConfig
	Engine EngineConfig
}

// ServerConfig holds HTTP server settings for the host adapter.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// EngineConfig holds the query engine tunables.
type EngineConfig struct {
	// DefaultCorridorWidthKm is used when a route request omits the
	// corridor width.
	DefaultCorridorWidthKm float64

	// ClusterSampleSize caps the representative members carried per cluster.
	ClusterSampleSize int

	// QueueCapacity bounds the worker's request channel. Requests beyond it
	// block the sender rather than growing memory without limit.
	QueueCapacity int
}

// NewDefaultConfig returns a Config populated with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Engine: EngineConfig{
			DefaultCorridorWidthKm: 50,
			ClusterSampleSize:      10,
			QueueCapacity:          64,
		},
	}
}

// Load builds the configuration from defaults plus environment variables.
// Recognized variables: PORT, CORRIDOR_WIDTH_KM, CLUSTER_SAMPLE_SIZE,
// QUEUE_CAPACITY. Malformed values are logged and ignored in favor of the
// default — configuration never aborts startup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults and environment")
	}

	cfg := NewDefaultConfig()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = ":" + port
	}
	if v := os.Getenv("CORRIDOR_WIDTH_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Engine.DefaultCorridorWidthKm = f
		} else {
			log.Printf("Ignoring invalid CORRIDOR_WIDTH_KM=%q", v)
		}
	}
	if v := os.Getenv("CLUSTER_SAMPLE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.ClusterSampleSize = n
		} else {
			log.Printf("Ignoring invalid CLUSTER_SAMPLE_SIZE=%q", v)
		}
	}
	if v := os.Getenv("QUEUE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.QueueCapacity = n
		} else {
			log.Printf("Ignoring invalid QUEUE_CAPACITY=%q", v)
		}
	}

	return cfg
}
