package config

import (
	"log/slog"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server, theme, notice and prototype configuration
//   - gateway.go: auth gateway client and dev gateway server
//   - database.go: PostgreSQL and Redis configuration
//   - services.go: Service mode selection
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, debug logs).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error. Dev mode forces debug.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP      HTTPConfig
	Theme     ThemeConfig
	Notices   NoticesConfig
	Prototype PrototypeConfig

	Gateway       GatewayClientConfig
	GatewayServer GatewayServerConfig

	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// Services is a comma list of roles to run in this process.
	Services string `env:"SERVICES" envDefault:"http"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Theme.Sanitize()
	c.Notices.Sanitize()
	c.Gateway.Sanitize()
	c.GatewayServer.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks NODE_ENV as a fallback to DEV.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c *AppConfig) SlogLevel() slog.Level {
	if c.IsDev {
		return slog.LevelDebug
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the web client is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsGatewayEnabled returns true if the dev auth gateway is enabled.
func (c *AppConfig) IsGatewayEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeGateway]
}

// NeedsDatabase reports whether any enabled role stores data in PostgreSQL.
func (c *AppConfig) NeedsDatabase() bool {
	return c.IsGatewayEnabled() && c.GatewayServer.Storage == StoragePostgres
}

// NeedsRedis reports whether any enabled role keeps state in Redis.
func (c *AppConfig) NeedsRedis() bool {
	return c.IsHTTPServerEnabled() && c.Notices.Backend == NoticesBackendRedis
}
