package qdrant

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds connection and behavior settings for the Qdrant REST client.
//
// It is intentionally minimal, readable, and easy to override from environment
// variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := qdrant.DefaultConfig()
//	cfg.Host = "localhost"
//	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
//	cfg.Timeout = 10 * time.Second
//
// Example (builder style):
//
//	cfg := qdrant.FromHost("localhost").
//	    WithApiKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Hostname or IP of the Qdrant server, e.g. "localhost". Required.
	Host string `yaml:"host" env:"QDRANT_HOST"`

	// REST port of the Qdrant server. Defaults to 6333.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Whether to use HTTPS instead of HTTP.
	UseTLS bool `yaml:"use_tls" env:"QDRANT_USE_TLS"`

	// Maximum duration of a single request before timing out.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Deadline for the construction-time liveness probe.
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"QDRANT_CONNECT_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for most use cases.
// Host is deliberately left empty: supplying it is the caller's job and a
// missing host is a configuration error, not something to guess.
func DefaultConfig() *Config {
	return &Config{
		Port:           6333,
		Timeout:        5 * time.Second,
		ConnectTimeout: 3 * time.Second,
	}
}

// FromHost returns a default config pre-filled with a specific host.
func FromHost(host string) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	return cfg
}

// envSettings is the environment surface consumed by NewConfigFromEnv.
// Variables are prefixed with QDRANT_, e.g. QDRANT_HOST.
type envSettings struct {
	Host           string        `envconfig:"HOST" required:"true"`
	Port           int           `envconfig:"PORT" default:"6333"`
	ApiKey         string        `envconfig:"API_KEY"`
	UseTLS         bool          `envconfig:"USE_TLS" default:"false"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"5s"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"3s"`
}

// NewConfigFromEnv reads the QDRANT_* environment variables once, at the
// boundary. A missing QDRANT_HOST fails here — at startup — rather than at
// first use.
func NewConfigFromEnv() (*Config, error) {
	var s envSettings
	if err := envconfig.Process("qdrant", &s); err != nil {
		return nil, fmt.Errorf("%w: %v (example: export QDRANT_HOST=13.250.25.109)", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Host:           s.Host,
		Port:           s.Port,
		ApiKey:         s.ApiKey,
		UseTLS:         s.UseTLS,
		Timeout:        s.Timeout,
		ConnectTimeout: s.ConnectTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the config describes a usable endpoint.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range [1,65535]", ErrInvalidConfig, c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: connect timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithApiKey(key string) *Config {
	c.ApiKey = key
	return c
}

func (c *Config) WithTLS(enabled bool) *Config {
	c.UseTLS = enabled
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithConnectTimeout(d time.Duration) *Config {
	c.ConnectTimeout = d
	return c
}
