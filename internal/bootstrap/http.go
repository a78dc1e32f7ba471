package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/target/chat-portal/config"
	httpx "github.com/target/chat-portal/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// NewHTTPServer builds the web client server without starting it.
func NewHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	if cfg.Services.Login == nil {
		return nil, errors.New("http server requires the login service")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	cookies := httpx.CookieOptions{
		Domain: appCfg.HTTP.CookieDomain,
		Secure: appCfg.HTTP.SecureCookies,
	}
	services := httpx.RouterServices{
		Login:   cfg.Services.Login,
		Themes:  httpx.NewThemeStore(appCfg.Theme.StorageKey, appCfg.Theme.Default, cookies),
		Cookies: cookies,
		IsDev:   appCfg.IsDev,
		Logger:  logger,
	}
	// Typed nils must not reach the router's interfaces.
	if cfg.Services.Notices != nil {
		services.Notices = cfg.Services.Notices
	}
	if cfg.Services.Prototype != nil {
		services.Prototype = cfg.Services.Prototype
	}

	addr := appCfg.HTTP.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:              addr,
		Handler:           buildHTTPHandler(logger, httpx.NewRouter(services)),
		ReadHeaderTimeout: appCfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}, nil
}

// Order: Recover -> Logging -> Router
func buildHTTPHandler(logger *slog.Logger, router http.Handler) http.Handler {
	h := httpx.Logging(logger)(router)
	return httpx.Recover(logger)(h)
}

// RunHTTPServer serves on lis until ctx is canceled, then drains in-flight
// requests for at most shutdownTimeout.
func RunHTTPServer(ctx context.Context, srv *http.Server, lis net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting HTTP server", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.InfoContext(ctx, "shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.InfoContext(ctx, "HTTP server stopped")
	return <-errCh
}
