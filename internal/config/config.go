// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SessionSecret string `env:"PORTFOLIO_SESSION_SECRET,required"`
	ServerHost    string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel      string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	SiteURL       string `env:"PORTFOLIO_SITE_URL" envDefault:"https://davirds.dev"`

	// Contact form. SubmitTimeout bounds one sink call; idle form state is
	// dropped after ControllerIdleTTL by the SweepSchedule job.
	ContactEndpoint   string        `env:"PORTFOLIO_CONTACT_ENDPOINT" envDefault:"https://formspree.io/f/xkgzegyj"`
	SubmitTimeout     time.Duration `env:"PORTFOLIO_SUBMIT_TIMEOUT" envDefault:"15s"`
	ControllerIdleTTL time.Duration `env:"PORTFOLIO_CONTROLLER_IDLE_TTL" envDefault:"30m"`
	SweepSchedule     string        `env:"PORTFOLIO_SWEEP_SCHEDULE" envDefault:"@every 5m"`

	// RequestTimeout bounds every request; SubmitTimeout must be shorter.
	RequestTimeout time.Duration `env:"PORTFOLIO_REQUEST_TIMEOUT" envDefault:"30s"`

	// Sessions. Redis is used when RedisURL is set, memory otherwise.
	RedisURL        string        `env:"PORTFOLIO_REDIS_URL"`
	SessionPrefix   string        `env:"PORTFOLIO_SESSION_PREFIX" envDefault:"portfolio:sess:"`
	SessionLifetime time.Duration `env:"PORTFOLIO_SESSION_LIFETIME" envDefault:"24h"`

	// Projects catalog. ProjectsFile overrides the embedded catalog and is
	// re-read on ProjectsReloadSchedule.
	ProjectsFile           string `env:"PORTFOLIO_PROJECTS_FILE"`
	ProjectsReloadSchedule string `env:"PORTFOLIO_PROJECTS_RELOAD" envDefault:"@every 10m"`

	// Offer creatives. AdBackdrop is a photo inside MediaDir drawn behind the ad text.
	MediaDir   string `env:"PORTFOLIO_MEDIA_DIR" envDefault:"./media"`
	AdBackdrop string `env:"PORTFOLIO_AD_BACKDROP"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisSessions returns true if sessions should be stored in Redis.
func (c Config) UseRedisSessions() bool {
	return c.RedisURL != ""
}

// ProjectsReloadEnabled returns true if the projects file should be re-read periodically.
func (c Config) ProjectsReloadEnabled() bool {
	return c.ProjectsFile != "" && c.ProjectsReloadSchedule != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// The CSRF key is derived from it and needs 32 bytes.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("PORTFOLIO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if err := validateEndpoint(cfg.ContactEndpoint, cfg.IsDevelopment()); err != nil {
		return nil, err
	}

	if cfg.SubmitTimeout <= 0 {
		return nil, fmt.Errorf("PORTFOLIO_SUBMIT_TIMEOUT must be positive, got %s", cfg.SubmitTimeout)
	}
	if cfg.SubmitTimeout >= cfg.RequestTimeout {
		return nil, fmt.Errorf("PORTFOLIO_SUBMIT_TIMEOUT (%s) must be shorter than PORTFOLIO_REQUEST_TIMEOUT (%s)",
			cfg.SubmitTimeout, cfg.RequestTimeout)
	}

	return cfg, nil
}

// validateEndpoint requires an absolute URL; plain http is allowed only in development.
func validateEndpoint(raw string, dev bool) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("PORTFOLIO_CONTACT_ENDPOINT is not a valid URL: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("PORTFOLIO_CONTACT_ENDPOINT must be an absolute URL, got %q", raw)
	}
	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if dev {
			return nil
		}
		return fmt.Errorf("PORTFOLIO_CONTACT_ENDPOINT must use https outside development")
	default:
		return fmt.Errorf("PORTFOLIO_CONTACT_ENDPOINT has unsupported scheme %q", u.Scheme)
	}
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
