package logger

import (
	"os"
	"strings"
)

// Level selects the minimum severity that gets emitted.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum severity to emit. Defaults to Info.
	Level Level `yaml:"level" env:"LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// NewConfig reads the logger settings from environment variables.
func NewConfig() Config {
	level := Info
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = Debug
	case "warning", "warn":
		level = Warning
	case "error":
		level = Error
	}

	return Config{
		Level:       level,
		ServiceName: os.Getenv("SERVICE_NAME"),
	}
}
