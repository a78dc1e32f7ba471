package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/target/chat-portal/config"
	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/service"
)

// gatewayShutdownTimeout bounds the gRPC graceful stop.
const gatewayShutdownTimeout = 10 * time.Second

// ServiceContainer holds the services wired for the enabled roles. Fields
// for disabled roles stay nil.
type ServiceContainer struct {
	Login     *service.LoginService
	Notices   *service.NoticeService
	Prototype *service.PrototypeService
	Accounts  *service.AccountService

	closers []io.Closer
}

// Close releases clients opened by NewServices.
func (c ServiceContainer) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ServiceDeps contains dependencies for creating services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices creates the services for every enabled role.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	var c ServiceContainer
	if deps == nil || deps.Config == nil {
		return c, errors.New("service deps require config")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enabled, err := cfg.GetEnabledServices()
	if err != nil {
		return c, fmt.Errorf("determine enabled services: %w", err)
	}

	if enabled[config.ServiceModeHTTP] {
		if err := c.addWebClient(cfg, deps.RedisClient, logger); err != nil {
			return c, errors.Join(err, c.Close())
		}
	}

	if enabled[config.ServiceModeGateway] {
		stores, err := NewAccountStores(cfg.GatewayServer, deps.DB)
		if err != nil {
			return c, errors.Join(err, c.Close())
		}
		c.Accounts = service.NewAccountService(service.AccountServiceOptions{
			Stores: stores,
			Config: service.AccountConfig{
				TokenTTL:   cfg.GatewayServer.TokenTTL,
				BcryptCost: cfg.GatewayServer.BcryptCost,
			},
			Logger: logger,
		})
	}

	return c, nil
}

func (c *ServiceContainer) addWebClient(cfg *config.AppConfig, client redis.UniversalClient, logger *slog.Logger) error {
	store, err := NewNoticeStore(cfg.Notices, client, logger)
	if err != nil {
		return err
	}
	c.Login = service.NewLoginService(service.LoginServiceOptions{Notices: store, Logger: logger})
	c.Notices = service.NewNoticeService(store, logger)

	if !cfg.Prototype.Enabled {
		return nil
	}
	gw, err := DialGateway(cfg.Gateway, logger)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, gw)
	c.Prototype = service.NewPrototypeService(service.PrototypeServiceOptions{
		Gateway: gw,
		Demo: account.Credentials{
			Username: cfg.Prototype.Username,
			Email:    cfg.Prototype.Email,
			Password: cfg.Prototype.Password,
		},
		Logger: logger,
	})
	return nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger

	// Listen opens the listeners; nil listens on tcp.
	Listen func(ctx context.Context, addr string) (net.Listener, error)
}

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(ctx context.Context, cfg *ServiceOrchestrationConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("service orchestration config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runServices(ctx, cfg, logger)
}

// runner serves one prepared role until ctx is canceled.
type runner func(ctx context.Context) error

func runServices(ctx context.Context, cfg *ServiceOrchestrationConfig, logger *slog.Logger) error {
	runners, err := prepareRunners(ctx, cfg, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, run := range runners {
		g.Go(func() error { return run(gctx) })
	}

	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "service error", "error", err)
		return err
	}
	logger.InfoContext(ctx, "services stopped")
	return nil
}

// prepareRunners opens every listener before anything serves, so a bad
// address fails startup without leaving a half-started process.
func prepareRunners(ctx context.Context, cfg *ServiceOrchestrationConfig, logger *slog.Logger) ([]runner, error) {
	enabled, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return nil, fmt.Errorf("determine enabled services: %w", err)
	}
	listen := cfg.Listen
	if listen == nil {
		listen = func(ctx context.Context, addr string) (net.Listener, error) {
			var lc net.ListenConfig
			return lc.Listen(ctx, "tcp", addr)
		}
	}

	var (
		runners   []runner
		listeners []net.Listener
	)
	fail := func(err error) ([]runner, error) {
		for _, l := range listeners {
			_ = l.Close()
		}
		return nil, err
	}

	if enabled[config.ServiceModeHTTP] {
		srv, err := NewHTTPServer(&HTTPServerConfig{Config: cfg.Config, Services: cfg.Services, Logger: logger})
		if err != nil {
			return fail(err)
		}
		lis, err := listen(ctx, srv.Addr)
		if err != nil {
			return fail(fmt.Errorf("listen http: %w", err))
		}
		listeners = append(listeners, lis)
		timeout := cfg.Config.HTTP.ShutdownTimeout
		runners = append(runners, func(ctx context.Context) error {
			return RunHTTPServer(ctx, srv, lis, timeout, logger)
		})
	}

	if enabled[config.ServiceModeGateway] {
		if cfg.Services.Accounts == nil {
			return fail(errors.New("gateway service requires the account service"))
		}
		srv, err := NewGatewayServer(cfg.Services.Accounts, logger)
		if err != nil {
			return fail(err)
		}
		lis, err := listen(ctx, cfg.Config.GatewayServer.Addr)
		if err != nil {
			return fail(fmt.Errorf("listen gateway: %w", err))
		}
		listeners = append(listeners, lis)
		runners = append(runners, func(ctx context.Context) error {
			return RunGatewayServer(ctx, srv, lis, gatewayShutdownTimeout)
		})
	}

	return runners, nil
}
