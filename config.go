package estatekit

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Config defines a public type used by estatekit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
	Events  EventsConfig  `yaml:"events"`
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by estatekit APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	// BaseURL is the backend origin, e.g. "https://api.estateops.io".
	BaseURL string `yaml:"base_url"`
	// Prefix is prepended to every path. All backend routes live under "/api".
	Prefix string `yaml:"prefix"`
	// UserAgent is sent on every request when non-empty.
	UserAgent string `yaml:"user_agent"`
	// RequestTimeout bounds each HTTP round-trip. Zero means no timeout,
	// matching the historical behavior of the web client.
	RequestTimeout Duration `yaml:"request_timeout"`
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by estatekit APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// LoginRoute is the navigation target after logout.
	LoginRoute string `yaml:"login_route"`
	// RejectExpiredOnInit skips adoption of a persisted JWT whose exp claim
	// has passed. Opaque tokens are always adopted.
	RejectExpiredOnInit bool `yaml:"reject_expired_on_init"`
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig defines a public type used by estatekit APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	// Namespace prefixes every key in shared backends (redis).
	Namespace string `yaml:"namespace"`
	// FilePath selects the file-backed store when set and no explicit
	// backend is provided to the builder.
	FilePath string `yaml:"file_path"`
}

/*
====================================
METRICS / EVENTS CONFIG
====================================
*/

// MetricsConfig defines a public type used by estatekit APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EventsConfig defines a public type used by estatekit APIs.
//
// EventsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EventsConfig struct {
	Enabled    bool `yaml:"enabled"`
	BufferSize int  `yaml:"buffer_size"`
	DropIfFull bool `yaml:"drop_if_full"`
}

// Duration wraps time.Duration with YAML string parsing ("30s", "2m").
type Duration time.Duration

// UnmarshalYAML describes the unmarshalyaml operation and its observable behavior.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML describes the marshalyaml operation and its observable behavior.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Prefix: "/api",
		},
		Session: SessionConfig{
			LoginRoute:          "/login",
			RejectExpiredOnInit: true,
		},
		Storage: StorageConfig{
			Namespace: "estatekit",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Events: EventsConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

// Validate checks the configuration for internal consistency. It is called
// by [Builder.Build]; direct callers only need it when loading files.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base url required")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api base url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.Prefix != "" && !strings.HasPrefix(c.API.Prefix, "/") {
		return errors.New("api prefix must start with /")
	}
	if strings.HasSuffix(c.API.Prefix, "/") {
		return errors.New("api prefix must not end with /")
	}
	if c.API.RequestTimeout < 0 {
		return errors.New("request timeout must be non-negative")
	}
	if !strings.HasPrefix(c.Session.LoginRoute, "/") {
		return errors.New("login route must start with /")
	}
	if c.Storage.Namespace == "" {
		return errors.New("storage namespace required")
	}
	if c.Events.Enabled && c.Events.BufferSize <= 0 {
		return errors.New("events buffer size must be positive")
	}
	return nil
}

// LoadConfigFile reads a YAML config file over the package defaults. Missing
// fields keep their default values.
func LoadConfigFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
