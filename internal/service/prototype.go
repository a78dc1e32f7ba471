package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
)

// PrototypeServiceOptions groups dependencies for PrototypeService.
type PrototypeServiceOptions struct {
	Gateway ports.AuthGateway   // Required
	Demo    account.Credentials // Credentials sent on every run
	Logger  *slog.Logger
}

// PrototypeService drives the create-user prototype screen.
type PrototypeService struct {
	gateway ports.AuthGateway
	demo    account.Credentials
	logger  *slog.Logger
}

// NewPrototypeService constructs a PrototypeService.
func NewPrototypeService(opts PrototypeServiceOptions) *PrototypeService {
	if opts.Gateway == nil {
		panic("PrototypeService requires an AuthGateway")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PrototypeService{
		gateway: opts.Gateway,
		demo:    opts.Demo,
		logger:  logger.With("component", "prototype_service"),
	}
}

// PrototypeRun is what one page load of the prototype screen did.
type PrototypeRun struct {
	Demo       account.Credentials
	Violations account.Violations // set when the demo credentials were rejected locally
	Result     account.AuthResult
	Err        error
	Duration   time.Duration
}

// Called reports whether the gateway was contacted.
func (r PrototypeRun) Called() bool { return r.Violations.Valid() }

// Run validates the demo credentials and, when they pass, issues exactly
// one CreateUser call. Gateway failures are captured in the run.
func (s *PrototypeService) Run(ctx context.Context) PrototypeRun {
	run := PrototypeRun{Demo: s.demo, Violations: account.Validate(s.demo)}
	if !run.Violations.Valid() {
		s.logger.WarnContext(ctx, "demo credentials rejected, skipping create user call",
			"fields", len(run.Violations))
		return run
	}

	start := time.Now()
	run.Result, run.Err = s.gateway.CreateUser(ctx, s.demo.Email, s.demo.Password, s.demo.Username)
	run.Duration = time.Since(start)

	if run.Err != nil {
		s.logger.ErrorContext(ctx, "create user call failed", "error", run.Err, "duration", run.Duration)
		return run
	}
	attrs := []any{"success", run.Result.Success, "duration", run.Duration}
	if run.Result.User != nil {
		attrs = append(attrs, "user_id", run.Result.User.ID)
	}
	s.logger.InfoContext(ctx, "create user call completed", attrs...)
	return run
}
