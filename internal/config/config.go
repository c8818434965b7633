// Package config loads shared configuration for the admin console and the
// coaching dashboard from the environment.
package config

import (
	"errors"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all settings for both binaries. Fields are populated from
// COACHDESK_* environment variables.
type Config struct {
	Env string `envconfig:"ENV" default:"development"`

	// AdminAddr and DashboardAddr are the listen addresses of the two apps.
	AdminAddr     string `envconfig:"ADMIN_ADDR" default:":8080"`
	DashboardAddr string `envconfig:"DASHBOARD_ADDR" default:":8081"`

	// APIBaseURL is the root of the remote coaching backend, e.g.
	// "https://api.example.com". All domain data lives behind it.
	APIBaseURL string `envconfig:"API_BASE_URL"`

	// AdminToken and AdminUserID authenticate backend calls made on behalf of
	// the admin console (sent as X-Admin-Token / X-Admin-User-Id).
	AdminToken  string `envconfig:"ADMIN_TOKEN"`
	AdminUserID string `envconfig:"ADMIN_USER_ID"`

	// PublicURL, when set, overrides public-URL resolution for absolute
	// redirects and links (e.g. behind a proxy that strips Forwarded headers).
	PublicURL string `envconfig:"PUBLIC_URL"`

	// DBPath is the sqlite file holding local side-state (audit, outbox,
	// feedback, admin accounts).
	DBPath string `envconfig:"DB_PATH" default:"coachdesk.db"`

	// CSRFKey is the hex-encoded 32-byte gorilla/csrf secret. Required in
	// production; generated per startup otherwise.
	CSRFKey string `envconfig:"CSRF_KEY"`

	// Email delivery (Resend). Empty key selects the noop sender.
	ResendKey     string `envconfig:"RESEND_KEY"`
	EmailFrom     string `envconfig:"EMAIL_FROM" default:"Coachdesk <noreply@coachdesk.app>"`
	EmailReplyTo  string `envconfig:"EMAIL_REPLY_TO" default:"team@coachdesk.app"`
	AlertsAddress string `envconfig:"ALERTS_ADDRESS" default:"team@coachdesk.app"`

	// Seed admin account for the console.
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@coachdesk.app"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"Umami monster"`
}

// Load reads configuration from the environment.
// POST: Returns a validated Config or an error naming the missing setting
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("COACHDESK", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}

// IsProduction reports whether the app runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) validate() error {
	if c.APIBaseURL == "" {
		return errors.New("COACHDESK_API_BASE_URL is required")
	}
	if c.IsProduction() {
		if c.AdminToken == "" || c.AdminUserID == "" {
			return errors.New("COACHDESK_ADMIN_TOKEN and COACHDESK_ADMIN_USER_ID are required in production")
		}
		if c.CSRFKey == "" {
			return errors.New("COACHDESK_CSRF_KEY is required in production")
		}
	}
	return nil
}
