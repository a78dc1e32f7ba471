package config

import (
	"time"

	"github.com/target/chat-portal/internal/domain/ui"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// CookieDomain is the domain for theme, inbox and CSRF cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// SecureCookies marks cookies Secure. Enable behind TLS.
	SecureCookies bool `env:"APP_SECURE_COOKIES" envDefault:"false"`

	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"    envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.ReadHeaderTimeout <= 0 {
		h.ReadHeaderTimeout = 10 * time.Second
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 10 * time.Second
	}
}

// ThemeConfig controls the persisted theme preference.
type ThemeConfig struct {
	// StorageKey names the cookie holding the theme.
	StorageKey string `env:"THEME_STORAGE_KEY" envDefault:"vite-ui-theme"`
	// Default is used when no valid preference is stored.
	Default ui.Theme `env:"THEME_DEFAULT" envDefault:"dark"`
}

// Sanitize restores defaults for blank values.
func (t *ThemeConfig) Sanitize() {
	if t.StorageKey == "" {
		t.StorageKey = "vite-ui-theme"
	}
	if _, ok := ui.ParseTheme(string(t.Default)); !ok {
		t.Default = ui.DefaultTheme
	}
}

// Notice store backends.
const (
	NoticesBackendMemory = "memory"
	NoticesBackendRedis  = "redis"
)

// NoticesConfig selects where pending toasts are kept.
type NoticesConfig struct {
	Backend string        `env:"NOTICES_BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"NOTICES_TTL"     envDefault:"10m"`
	// MaxPerInbox caps queued toasts per visitor.
	MaxPerInbox int `env:"NOTICES_MAX_PER_INBOX" envDefault:"20"`
}

// Sanitize clamps notice settings.
func (n *NoticesConfig) Sanitize() {
	if n.Backend != NoticesBackendRedis {
		n.Backend = NoticesBackendMemory
	}
	if n.TTL <= 0 {
		n.TTL = 10 * time.Minute
	}
	if n.MaxPerInbox <= 0 {
		n.MaxPerInbox = 20
	}
}

// PrototypeConfig enables the create-user prototype screen.
type PrototypeConfig struct {
	Enabled  bool   `env:"PROTOTYPE_ENABLED"  envDefault:"false"`
	Email    string `env:"PROTOTYPE_EMAIL"    envDefault:"test@test.com"`
	Username string `env:"PROTOTYPE_USERNAME" envDefault:"tester"`
	Password string `env:"PROTOTYPE_PASSWORD" envDefault:"testtest"`
}
