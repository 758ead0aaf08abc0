package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Port sources for the assignable port catalog.
const (
	PortSourcePipewire  = "pipewire"
	PortSourcePortAudio = "portaudio"
)

type Config struct {
	PmxRegistryURL      string
	PipewireRegistryURL string
	PortSource          string

	RetryMax         int
	RetryInitial     time.Duration
	RetryMaxInterval time.Duration

	LogLevel    string
	LogFormat   string
	LogFile     string
	MetricsAddr string
}

// LoadConfig loads the given dotenv files (".env" when none are given) into
// the environment and reads the configuration from it. Missing files are
// ignored; variables already set in the environment win.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(New())
}

// FromEnv reads the configuration from c.
func FromEnv(c Conf) (*Config, error) {
	cfg := &Config{
		PmxRegistryURL:      c.MayString("PMX_REGISTRY_URL", "http://[::1]:50001"),
		PipewireRegistryURL: c.MayString("PIPEWIRE_REGISTRY_URL", "http://[::1]:50000"),
		PortSource:          strings.ToLower(c.MayString("PORT_SOURCE", PortSourcePipewire)),
		LogLevel:            c.MayString("LOG_LEVEL", "info"),
		LogFormat:           c.MayString("LOG_FORMAT", "console"),
		LogFile:             c.MayString("LOG_FILE", ""),
		MetricsAddr:         c.MayString("METRICS_ADDR", ""),
	}

	var err error
	if cfg.RetryMax, err = c.MayInt("RETRY_MAX", 5); err != nil {
		return nil, err
	}
	if cfg.RetryInitial, err = c.MayDuration("RETRY_INITIAL", 200*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.RetryMaxInterval, err = c.MayDuration("RETRY_MAX_INTERVAL", 5*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that may also be set from flags.
func (c *Config) Validate() error {
	switch c.PortSource {
	case PortSourcePipewire, PortSourcePortAudio:
	default:
		return fmt.Errorf("invalid port source %q: expected %s or %s", c.PortSource, PortSourcePipewire, PortSourcePortAudio)
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("retry max must not be negative, got %d", c.RetryMax)
	}
	if c.RetryInitial <= 0 || c.RetryMaxInterval <= 0 {
		return fmt.Errorf("retry intervals must be positive")
	}
	return nil
}

// Conf is a namespaced view over environment variables.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("PMX_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) get(key string) string {
	return strings.TrimSpace(os.Getenv(c.key(key)))
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty
func (c Conf) MayInt(key string, def int) (int, error) {
	s := c.get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", c.key(key), s)
	}
	return v, nil
}

// MayDuration returns the value or def if missing/empty
func (c Conf) MayDuration(key string, def time.Duration) (time.Duration, error) {
	s := c.get(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q (e.g. 250ms, 2s)", c.key(key), s)
	}
	return d, nil
}
