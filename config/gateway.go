package config

import "time"

// GatewayClientConfig points the web client at the auth service.
type GatewayClientConfig struct {
	Addr    string        `env:"AUTH_GATEWAY_ADDR"    envDefault:"localhost:44044"`
	Timeout time.Duration `env:"AUTH_GATEWAY_TIMEOUT" envDefault:"5s"`
	TLS     GatewayTLSConfig
}

// GatewayTLSConfig enables TLS to the auth service. Setting cert and key
// turns on mutual TLS.
type GatewayTLSConfig struct {
	Enabled    bool   `env:"AUTH_GATEWAY_TLS_ENABLED"     envDefault:"false"`
	CAFile     string `env:"AUTH_GATEWAY_TLS_CA_FILE"`
	CertFile   string `env:"AUTH_GATEWAY_TLS_CERT_FILE"`
	KeyFile    string `env:"AUTH_GATEWAY_TLS_KEY_FILE"`
	ServerName string `env:"AUTH_GATEWAY_TLS_SERVER_NAME"`
}

// Sanitize clamps the call timeout.
func (g *GatewayClientConfig) Sanitize() {
	if g.Timeout <= 0 {
		g.Timeout = 5 * time.Second
	}
	if g.Timeout > time.Minute {
		g.Timeout = time.Minute
	}
}

// Gateway storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// GatewayServerConfig configures the dev auth gateway.
type GatewayServerConfig struct {
	Addr     string        `env:"GATEWAY_ADDR"      envDefault:":44044"`
	Storage  string        `env:"GATEWAY_STORAGE"   envDefault:"memory"`
	TokenTTL time.Duration `env:"GATEWAY_TOKEN_TTL" envDefault:"24h"`
	// BcryptCost of 0 uses bcrypt.DefaultCost.
	BcryptCost int `env:"GATEWAY_BCRYPT_COST" envDefault:"0"`
}

// Sanitize clamps gateway server settings.
func (g *GatewayServerConfig) Sanitize() {
	if g.Storage != StoragePostgres {
		g.Storage = StorageMemory
	}
	if g.TokenTTL <= 0 {
		g.TokenTTL = 24 * time.Hour
	}
	if g.BcryptCost != 0 && (g.BcryptCost < 4 || g.BcryptCost > 31) {
		g.BcryptCost = 0
	}
}
