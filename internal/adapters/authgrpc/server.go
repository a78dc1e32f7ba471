package authgrpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"runtime/debug"
	"time"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// authServiceServer is the handler type the service descriptor dispatches to.
type authServiceServer interface {
	CreateUser(ctx context.Context, in ports.CreateUserInput) (account.AuthResult, error)
}

//nolint:gochecknoglobals // grpc service descriptors are static
var authServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*authServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: createUserMethod, Handler: createUserHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}

func createUserHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(createUserRequest)
	if err := dec(in); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode request: %v", err)
	}

	call := func(ctx context.Context, req any) (any, error) {
		r, ok := req.(*createUserRequest)
		if !ok {
			return nil, status.Error(codes.Internal, "unexpected request type")
		}
		res, err := srv.(authServiceServer).CreateUser(ctx, ports.CreateUserInput{
			Email:    r.Email,
			Password: r.Password,
			Username: r.Username,
		})
		if err != nil {
			return nil, toStatus(err)
		}
		return fromAuthResult(res), nil
	}

	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: createUserFullName}
	return interceptor(ctx, in, info, call)
}

func fromAuthResult(res account.AuthResult) *createUserResponse {
	out := &createUserResponse{Success: res.Success}
	if res.User != nil {
		out.User = &wireUser{
			ID:       res.User.ID,
			Username: res.User.Username,
			Email:    res.User.Email,
			Verified: res.User.Verified,
		}
	}
	return out
}

// ServerOptions configures NewServer.
type ServerOptions struct {
	Registrar ports.AccountRegistrar
	Logger    *slog.Logger
	// ServerOptions are appended after the built-in interceptors.
	ServerOptions []grpc.ServerOption
}

// Server exposes an AccountRegistrar as auth.AuthService.
type Server struct {
	grpc   *grpc.Server
	logger *slog.Logger
}

// NewServer builds a gRPC server with recovery and logging interceptors.
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Registrar == nil {
		return nil, errors.New("account registrar is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "auth_gateway_server")

	grpcOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
		),
	}, opts.ServerOptions...)

	gs := grpc.NewServer(grpcOpts...)
	gs.RegisterService(&authServiceDesc, opts.Registrar)
	return &Server{grpc: gs, logger: logger}, nil
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("auth gateway listening", "addr", lis.Addr().String())
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("auth gateway serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight RPCs and forces a stop when ctx expires.
func (s *Server) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("auth gateway graceful stop timed out, forcing")
		s.grpc.Stop()
	}
}

// RecoveryInterceptor turns handler panics into Internal errors.
func RecoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic in rpc handler",
					"method", info.FullMethod,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// LoggingInterceptor logs method, status code and duration for every call.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		level := slog.LevelInfo
		if code == codes.Internal || code == codes.Unknown {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "rpc",
			"method", info.FullMethod,
			"code", code.String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
