package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/advokati/go-directory/catalog"
	dirsync "github.com/advokati/go-directory/internal/sync"
)

var ErrDefaultLocaleUnsupported = errors.New("directory config: default locale is not in the configured locale set")
var ErrLocaleUnknown = errors.New("directory config: locale is not supported")
var ErrStorageDriverUnknown = errors.New("directory config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("directory config: storage DSN is required for the sqlite driver")
var ErrCanonicalSyncLocaleUnknown = errors.New("directory config: sync canonical locale is not supported")
var ErrDetectionThresholdInvalid = errors.New("directory config: sync detection threshold must be within [0, 1]")
var ErrCacheTTLInvalid = errors.New("directory config: cache TTL must be zero or positive")
var ErrLoggingProviderRequired = errors.New("directory config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("directory config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("directory config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("directory config: logging format is invalid")

// Config aggregates runtime settings for the directory module. Fields use
// simple types so host applications can bind them from their own config
// layers.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Storage       StorageConfig
	Sync          SyncConfig
	Cache         CacheConfig
	Logging       LoggingConfig
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string
	DSN    string
}

// SyncConfig captures reconciliation behaviour.
type SyncConfig struct {
	CanonicalLocale    string
	DetectionThreshold float64
}

// CacheConfig captures repository read-cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults for a Georgian-canonical deployment.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: string(catalog.DefaultLocale),
		Locales: []string{
			string(catalog.LocaleGeorgian),
			string(catalog.LocaleEnglish),
			string(catalog.LocaleRussian),
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file:directory.db?_fk=1",
		},
		Sync: SyncConfig{
			CanonicalLocale:    string(catalog.LocaleEnglish),
			DetectionThreshold: dirsync.DetectionThreshold,
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Enabled:  true,
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	locales := map[string]struct{}{}
	for _, code := range cfg.Locales {
		if _, err := catalog.ParseLocale(code); err != nil {
			return fmt.Errorf("%w: %s", ErrLocaleUnknown, code)
		}
		locales[code] = struct{}{}
	}
	if len(locales) > 0 {
		if _, ok := locales[cfg.DefaultLocale]; !ok {
			return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, cfg.DefaultLocale)
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case "sqlite":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	case "memory":
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}

	if cfg.Sync.CanonicalLocale != "" {
		if _, err := catalog.ParseLocale(cfg.Sync.CanonicalLocale); err != nil {
			return fmt.Errorf("%w: %s", ErrCanonicalSyncLocaleUnknown, cfg.Sync.CanonicalLocale)
		}
	}
	if cfg.Sync.DetectionThreshold < 0 || cfg.Sync.DetectionThreshold > 1 {
		return fmt.Errorf("%w: %.2f", ErrDetectionThresholdInvalid, cfg.Sync.DetectionThreshold)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}

	if cfg.Logging.Enabled {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
