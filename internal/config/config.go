package config

import (
	"fmt"
	"os"
	"strings"
)

// Payment modes for the client-side Snap widget.
const (
	PaymentModePopup    = "popup"
	PaymentModeEmbedded = "embedded"
)

// Config carries the Midtrans credentials and service settings, loaded
// from the environment. Sandbox and production keys are both kept so the
// active set is a pure function of UseSandbox.
type Config struct {
	Port        string
	Environment string

	MerchantID string
	ClientKey  string
	ServerKey  string

	SandboxMerchantID string
	SandboxClientKey  string
	SandboxServerKey  string

	UseSandbox         bool
	PaymentMode        string
	DefaultCountryCode string // ISO 3166-1 alpha-3

	// Base URL the checkout widget redirects to when a session finishes,
	// e.g. https://billing.example.com; the invoice hash is appended.
	FinishBaseURL string

	RedisURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		MerchantID: os.Getenv("MIDTRANS_MERCHANT_ID"),
		ClientKey:  os.Getenv("MIDTRANS_CLIENT_KEY"),
		ServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),

		SandboxMerchantID: os.Getenv("MIDTRANS_SANDBOX_MERCHANT_ID"),
		SandboxClientKey:  os.Getenv("MIDTRANS_SANDBOX_CLIENT_KEY"),
		SandboxServerKey:  os.Getenv("MIDTRANS_SANDBOX_SERVER_KEY"),

		UseSandbox:         parseBool(os.Getenv("MIDTRANS_USE_SANDBOX")),
		PaymentMode:        getEnv("MIDTRANS_PAYMENT_MODE", PaymentModePopup),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "IDN"),

		FinishBaseURL: os.Getenv("CHECKOUT_FINISH_BASE_URL"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
	}

	if cfg.ActiveServerKey() == "" {
		return nil, fmt.Errorf("missing Midtrans server key for the selected mode (sandbox=%v)", cfg.UseSandbox)
	}
	if cfg.PaymentMode != PaymentModePopup && cfg.PaymentMode != PaymentModeEmbedded {
		return nil, fmt.Errorf("invalid MIDTRANS_PAYMENT_MODE %q", cfg.PaymentMode)
	}

	return cfg, nil
}

// ActiveServerKey returns the server key for the configured mode.
func (c *Config) ActiveServerKey() string {
	if c.UseSandbox {
		return c.SandboxServerKey
	}
	return c.ServerKey
}

func (c *Config) ActiveClientKey() string {
	if c.UseSandbox {
		return c.SandboxClientKey
	}
	return c.ClientKey
}

func (c *Config) ActiveMerchantID() string {
	if c.UseSandbox {
		return c.SandboxMerchantID
	}
	return c.MerchantID
}

// SnapBaseURL is the host for creating checkout sessions.
func (c *Config) SnapBaseURL() string {
	if c.UseSandbox {
		return "https://app.sandbox.midtrans.com"
	}
	return "https://app.midtrans.com"
}

// APIBaseURL is the host for the v2 status API.
func (c *Config) APIBaseURL() string {
	if c.UseSandbox {
		return "https://api.sandbox.midtrans.com"
	}
	return "https://api.midtrans.com"
}

// SnapJSURL is the script the checkout page loads for the widget.
func (c *Config) SnapJSURL() string {
	return c.SnapBaseURL() + "/snap/snap.js"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
