package bootstrap

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/chat-portal/config"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVICES", "http,gateway")
	t.Setenv("NOTICES_BACKEND", "bogus")
	t.Setenv("THEME_STORAGE_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http,gateway", cfg.Services)
	assert.Equal(t, config.NoticesBackendMemory, cfg.Notices.Backend, "sanitized")
	assert.Equal(t, "vite-ui-theme", cfg.Theme.StorageKey)
}

func TestLoadConfig_ParseError(t *testing.T) {
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidateServiceConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.AppConfig
		wantErr string
	}{
		{name: "nil config", wantErr: "required"},
		{name: "unknown service", cfg: &config.AppConfig{Services: "http,mail"}, wantErr: "invalid service"},
		{name: "http", cfg: &config.AppConfig{Services: "http"}},
		{
			name: "prototype without gateway address",
			cfg: &config.AppConfig{
				Services:  "http",
				Prototype: config.PrototypeConfig{Enabled: true},
			},
			wantErr: "AUTH_GATEWAY_ADDR",
		},
		{
			name:    "gateway without address",
			cfg:     &config.AppConfig{Services: "gateway"},
			wantErr: "GATEWAY_ADDR",
		},
		{
			name: "both roles",
			cfg: &config.AppConfig{
				Services:      "gateway,http",
				GatewayServer: config.GatewayServerConfig{Addr: ":0"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceConfig(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateServiceConfig_ReportsEveryMissingSetting(t *testing.T) {
	err := ValidateServiceConfig(&config.AppConfig{
		Services:  "http,gateway",
		Prototype: config.PrototypeConfig{Enabled: true},
		Gateway:   config.GatewayClientConfig{Addr: "   "},
	})
	require.Error(t, err)
	assert.Equal(t,
		"invalid service configuration: AUTH_GATEWAY_ADDR (prototype screen) is required. GATEWAY_ADDR (gateway service) is required.",
		err.Error())
}

func TestGetEnabledServices(t *testing.T) {
	assert.Empty(t, GetEnabledServices(nil))
	assert.Empty(t, GetEnabledServices(&config.AppConfig{Services: "nope"}))
	assert.Equal(t, []string{"gateway", "http"}, GetEnabledServices(&config.AppConfig{Services: "http, gateway"}))
}

func TestInitLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := InitLogger(slog.LevelWarn)
	require.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}
