package authgrpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

var _ ports.AuthGateway = (*Client)(nil)

const defaultCallTimeout = 5 * time.Second

// TLSOptions enables TLS to the auth service. With CertFile and KeyFile set
// the client also presents a certificate (mutual TLS).
type TLSOptions struct {
	Enabled    bool
	CAFile     string
	CertFile   string
	KeyFile    string
	ServerName string
}

// ClientOptions configures Dial.
type ClientOptions struct {
	Addr    string
	Timeout time.Duration
	TLS     TLSOptions
	Logger  *slog.Logger
	// DialOptions are appended after the transport credentials.
	DialOptions []grpc.DialOption
}

// Client calls the remote auth service.
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *slog.Logger
}

// Dial creates a client for opts.Addr. The connection is established lazily
// on the first call.
func Dial(opts ClientOptions) (*Client, error) {
	if opts.Addr == "" {
		return nil, errors.New("auth gateway address is required")
	}

	creds, err := transportCredentials(opts.TLS)
	if err != nil {
		return nil, err
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}, opts.DialOptions...)

	conn, err := grpc.NewClient(opts.Addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create auth gateway client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	return &Client{
		conn:    conn,
		timeout: timeout,
		logger:  logger.With("component", "auth_gateway_client", "addr", opts.Addr),
	}, nil
}

func transportCredentials(opts TLSOptions) (credentials.TransportCredentials, error) {
	if !opts.Enabled {
		return insecure.NewCredentials(), nil
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12, ServerName: opts.ServerName}
	if opts.CAFile != "" {
		pem, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read auth gateway CA: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", opts.CAFile)
		}
		cfg.RootCAs = pool
	}
	if opts.CertFile != "" || opts.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load auth gateway client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return credentials.NewTLS(cfg), nil
}

// CreateUser registers an account on the auth service. Transport failures
// and server rejections come back as *errors.AppError.
func (c *Client) CreateUser(
	ctx context.Context,
	email, password, username string,
) (account.AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &createUserRequest{Email: email, Password: password, Username: username}
	var resp createUserResponse

	start := time.Now()
	err := c.conn.Invoke(ctx, createUserFullName, req, &resp)
	if err != nil {
		mapped := fromStatus(err)
		c.logger.WarnContext(ctx, "create user rpc failed",
			"error", err,
			"duration", time.Since(start),
		)
		return account.AuthResult{}, mapped
	}

	c.logger.DebugContext(ctx, "create user rpc succeeded", "duration", time.Since(start))
	return toAuthResult(resp), nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func toAuthResult(resp createUserResponse) account.AuthResult {
	out := account.AuthResult{Success: resp.Success}
	if resp.User != nil {
		out.User = &account.User{
			ID:       resp.User.ID,
			Username: resp.User.Username,
			Email:    resp.User.Email,
			Verified: resp.User.Verified,
		}
	}
	return out
}
