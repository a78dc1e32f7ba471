package service

import (
	"context"
	"log/slog"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
)

// NoticeService hands queued toasts to the page shell.
type NoticeService struct {
	store  ports.NoticeStore
	logger *slog.Logger
}

// NewNoticeService constructs a NoticeService. logger may be nil.
func NewNoticeService(store ports.NoticeStore, logger *slog.Logger) *NoticeService {
	if store == nil {
		panic("NoticeService requires a NoticeStore")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NoticeService{store: store, logger: logger.With("component", "notice_service")}
}

// Pending drains the inbox. Store failures are logged and yield no toasts,
// so a broken store never breaks page rendering.
func (s *NoticeService) Pending(ctx context.Context, inbox string) []account.Notice {
	if inbox == "" {
		return nil
	}
	notices, err := s.store.Drain(ctx, inbox)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to drain notices", "error", err)
		return nil
	}
	return notices
}
