package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/target/chat-portal/config"
	"github.com/target/chat-portal/internal/adapters/authgrpc"
	"github.com/target/chat-portal/internal/ports"
)

// DialGateway creates the client the prototype screen calls.
func DialGateway(cfg config.GatewayClientConfig, logger *slog.Logger) (*authgrpc.Client, error) {
	client, err := authgrpc.Dial(authgrpc.ClientOptions{
		Addr:    cfg.Addr,
		Timeout: cfg.Timeout,
		TLS: authgrpc.TLSOptions{
			Enabled:    cfg.TLS.Enabled,
			CAFile:     cfg.TLS.CAFile,
			CertFile:   cfg.TLS.CertFile,
			KeyFile:    cfg.TLS.KeyFile,
			ServerName: cfg.TLS.ServerName,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("dial auth gateway: %w", err)
	}
	return client, nil
}

// NewGatewayServer wraps the registrar in the gRPC auth service.
func NewGatewayServer(registrar ports.AccountRegistrar, logger *slog.Logger) (*authgrpc.Server, error) {
	srv, err := authgrpc.NewServer(authgrpc.ServerOptions{Registrar: registrar, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create auth gateway server: %w", err)
	}
	return srv, nil
}

// RunGatewayServer serves on lis until ctx is canceled, then stops
// gracefully within shutdownTimeout.
func RunGatewayServer(ctx context.Context, srv *authgrpc.Server, lis net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	srv.Shutdown(shutdownCtx)
	return <-errCh
}
