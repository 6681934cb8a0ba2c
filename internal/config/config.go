package config

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultProjectID is the monitoring project used when PROJECT_ID is unset.
	DefaultProjectID = "jurisnexo-prod"
	// DefaultHost is the probed hostname used when HOST is unset.
	DefaultHost = "api.jurisnexo.com"
	// DefaultProductName prefixes the uptime check display name.
	DefaultProductName = "JurisNexo"
	// DefaultLogLevel is the CLI log level used when LOG_LEVEL is unset or unrecognised.
	DefaultLogLevel = hclog.Info
)

// Config holds runtime settings loaded from environment variables.
type Config struct {
	ProjectID   string
	Host        string
	ProductName string
	Endpoint    string // Cloud Monitoring API endpoint override, empty for the SDK default
}

// Load reads environment variables once and applies defaults.
func Load() Config {
	return Config{
		ProjectID:   getEnv("PROJECT_ID", DefaultProjectID),
		Host:        getEnv("HOST", DefaultHost),
		ProductName: getEnv("PRODUCT_NAME", DefaultProductName),
		Endpoint:    getEnv("MONITORING_ENDPOINT", ""),
	}
}

// LogLevel returns the CLI log level from LOG_LEVEL.
// An unrecognised value yields DefaultLogLevel and ok=false.
func LogLevel() (level hclog.Level, ok bool) {
	name := getEnv("LOG_LEVEL", "")
	if name == "" {
		return DefaultLogLevel, true
	}
	level = hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return DefaultLogLevel, false
	}
	return level, true
}

// getEnv returns the trimmed environment value or fallback when empty.
func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
