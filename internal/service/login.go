package service

import (
	"context"
	"log/slog"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
)

// LoginServiceOptions groups dependencies for LoginService.
type LoginServiceOptions struct {
	Notices ports.NoticeStore // Required
	Logger  *slog.Logger      // Optional
}

// LoginService runs the login/register form pipeline. It talks to no
// remote service; a successful submit only queues the mode's toast.
type LoginService struct {
	notices ports.NoticeStore
	logger  *slog.Logger
}

// NewLoginService constructs a LoginService.
func NewLoginService(opts LoginServiceOptions) *LoginService {
	if opts.Notices == nil {
		panic("LoginService requires a NoticeStore")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginService{
		notices: opts.Notices,
		logger:  logger.With("component", "login_service"),
	}
}

// SubmitInput is a submitted form plus the visitor's toast inbox.
type SubmitInput struct {
	Form  account.Form
	Inbox string
}

// SubmitResult reports the form after validation and, when OK, where to go next.
type SubmitResult struct {
	Form    account.Form
	Outcome account.Outcome
	OK      bool
}

// Submit validates the form. Blocked submits write nothing. On success the
// notice is queued for the inbox; a queueing failure is logged and does not
// block navigation.
func (s *LoginService) Submit(ctx context.Context, in SubmitInput) SubmitResult {
	form, outcome, ok := in.Form.Submit()
	if !ok {
		s.logger.DebugContext(ctx, "form submit blocked",
			"mode", form.Mode.String(),
			"fields", len(form.Violations),
		)
		return SubmitResult{Form: form}
	}

	if in.Inbox != "" {
		if err := s.notices.Push(ctx, in.Inbox, outcome.Notice); err != nil {
			s.logger.WarnContext(ctx, "failed to queue notice", "error", err, "mode", form.Mode.String())
		}
	}

	s.logger.InfoContext(ctx, "form submitted", "mode", form.Mode.String())
	return SubmitResult{Form: form, Outcome: outcome, OK: true}
}

// Toggle switches the form to the other mode with an empty draft.
func (s *LoginService) Toggle(form account.Form) account.Form {
	return form.Toggle()
}
