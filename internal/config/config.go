package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

const (
	envLogLevel     = "TRACKER_LOG_LEVEL"
	envLogFormat    = "TRACKER_LOG_FORMAT"
	envOutput       = "TRACKER_OUTPUT"
	envNumberFormat = "TRACKER_NUMBER_FORMAT"

	OutputText = "text"
	OutputJSON = "json"

	DefaultLogLevel     = "warn"
	DefaultNumberFormat = "#,###.##"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
	validOutputs    = []string{OutputText, OutputJSON}
)

// Config holds the session settings. Values come from the environment and
// may be overridden by command-line flags.
type Config struct {
	LogLevel     string
	LogFormat    string
	Output       string
	NumberFormat string
}

// LoadEnvFile loads a .env file for local use. A missing file is not an error.
func LoadEnvFile(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		LogLevel:     strings.ToLower(getEnv(envLogLevel, DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv(envLogFormat, "text")),
		Output:       strings.ToLower(getEnv(envOutput, OutputText)),
		NumberFormat: getEnv(envNumberFormat, DefaultNumberFormat),
	}
}

// Validate reports every invalid setting in a single error.
func (c *Config) Validate() error {
	var errors []string

	if !slices.Contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validLogFormats))
	}
	if !slices.Contains(validOutputs, c.Output) {
		errors = append(errors, fmt.Sprintf("invalid output mode '%s': must be one of %v", c.Output, validOutputs))
	}
	if strings.TrimSpace(c.NumberFormat) == "" {
		errors = append(errors, "number format cannot be empty")
	} else if err := checkNumberFormat(c.NumberFormat); err != nil {
		errors = append(errors, fmt.Sprintf("invalid number format '%s': %v", c.NumberFormat, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// checkNumberFormat renders a sample value, since humanize panics on
// malformed format directives.
func checkNumberFormat(format string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	humanize.FormatFloat(format, -1234.5)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
