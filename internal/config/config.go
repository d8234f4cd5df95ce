package config

import (
	"os"
	"strconv"
)

// Config holds the configuration for the line finder
type Config struct {
	Document DocumentConfig
	Search   SearchConfig
	LogLevel string
}

// DocumentConfig holds document loading configuration
type DocumentConfig struct {
	DefaultPath string
}

// SearchConfig holds search tuning configuration
type SearchConfig struct {
	// EnableParallel allows scans to be sharded across goroutines at all
	EnableParallel bool
	// Workers is the number of goroutines used when a scan runs in
	// parallel; 1 keeps every scan sequential
	Workers int
	// ParallelThreshold is the minimum number of searchable lines before
	// a scan is sharded across workers
	ParallelThreshold int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Document: DocumentConfig{
			DefaultPath: GetStringEnv("LINEFINDER_DEFAULT_DOCUMENT", "./lepanto.txt"),
		},
		Search: SearchConfig{
			EnableParallel:    GetBoolEnv("LINEFINDER_ENABLE_PARALLEL", true),
			Workers:           GetIntEnv("LINEFINDER_WORKERS", 1),
			ParallelThreshold: GetIntEnv("LINEFINDER_PARALLEL_THRESHOLD", 4096),
		},
		LogLevel: GetStringEnv("LINEFINDER_LOG_LEVEL", "info"),
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
