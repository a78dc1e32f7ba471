package ports

import (
	"context"

	"github.com/target/chat-portal/internal/domain/account"
)

// NoticeStore keeps pending toasts per visitor inbox until the next page render.
type NoticeStore interface {
	// Push appends a notice to the inbox.
	Push(ctx context.Context, inbox string, n account.Notice) error
	// Drain returns the inbox's notices in push order and empties it.
	Drain(ctx context.Context, inbox string) ([]account.Notice, error)
}
