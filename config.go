package admin

import (
	"errors"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/mamaghar/go-admin/internal/langset"
)

var (
	ErrBaseURLRequired        = errors.New("admin: base URL is required")
	ErrLoggingProviderUnknown = errors.New("admin: unknown logging provider")
)

// Config wires the admin module: where the backend lives, which locales the
// editors present, and how the runtime logs.
type Config struct {
	// BaseURL is the root of the MamaGhar API, e.g. https://api.mamaghar.in.
	BaseURL string

	// Locales lists the editing locales in display order. The first entry is
	// the canonical locale. Empty means the built-in en/gu/hi set.
	Locales []string

	// Token seeds the in-memory token store, for environments where a
	// long-lived token is provisioned instead of interactive login.
	Token string

	// HTTPTimeout bounds every API request. Zero means the client default.
	HTTPTimeout time.Duration

	// Routes overrides the built-in route table, used by tests and staging
	// setups that remap endpoints.
	Routes *urlkit.Config

	Logging LoggingConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns a config with the standard locale set and console
// logging at info level.
func DefaultConfig() Config {
	return Config{
		Locales: langset.Default().Codes(),
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate reports configuration problems before any wiring happens.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrBaseURLRequired
	}
	if len(c.Locales) > 0 {
		if _, err := langset.New(c.Locales...); err != nil {
			return err
		}
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}
	return nil
}

func (c Config) localeSet() (langset.Set, error) {
	if len(c.Locales) == 0 {
		return langset.Default(), nil
	}
	return langset.New(c.Locales...)
}
