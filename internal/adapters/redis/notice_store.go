// Package redis provides Redis-based adapters for the chat portal.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
)

var _ ports.NoticeStore = (*NoticeStore)(nil)

// ErrEmptyInbox is returned when Push is called without an inbox key.
var ErrEmptyInbox = errors.New("inbox cannot be empty")

const (
	defaultNoticePrefix = "notices:"
	defaultNoticeTTL    = 10 * time.Minute
	defaultMaxNotices   = 20
)

// NoticeStore keeps pending toasts in a Redis list per inbox.
// The list expires if nobody drains it within the TTL.
type NoticeStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	max    int64
	logger *slog.Logger
}

// NoticeStoreOptions configures a NoticeStore. Zero values use defaults.
type NoticeStoreOptions struct {
	Prefix     string
	TTL        time.Duration
	MaxPerUser int
	Logger     *slog.Logger
}

// NewNoticeStore creates a Redis notice store with default options.
func NewNoticeStore(client redis.UniversalClient) *NoticeStore {
	return NewNoticeStoreWithOptions(client, NoticeStoreOptions{})
}

// NewNoticeStoreWithOptions creates a Redis notice store.
func NewNoticeStoreWithOptions(client redis.UniversalClient, opts NoticeStoreOptions) *NoticeStore {
	s := &NoticeStore{
		client: client,
		prefix: opts.Prefix,
		ttl:    opts.TTL,
		max:    int64(opts.MaxPerUser),
		logger: opts.Logger,
	}
	if s.prefix == "" {
		s.prefix = defaultNoticePrefix
	}
	if s.ttl <= 0 {
		s.ttl = defaultNoticeTTL
	}
	if s.max <= 0 {
		s.max = defaultMaxNotices
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "redis_notice_store")
	return s
}

func (s *NoticeStore) Push(ctx context.Context, inbox string, n account.Notice) error {
	if inbox == "" {
		return ErrEmptyInbox
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	key := s.prefix + inbox
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, data)
		p.LTrim(ctx, key, -s.max, -1)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis push notice: %w", err)
	}
	return nil
}

func (s *NoticeStore) Drain(ctx context.Context, inbox string) ([]account.Notice, error) {
	if inbox == "" {
		return nil, nil
	}

	key := s.prefix + inbox
	var lrange *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		lrange = p.LRange(ctx, key, 0, -1)
		p.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis drain notices: %w", err)
	}

	raw := lrange.Val()
	if len(raw) == 0 {
		return nil, nil
	}

	// The list is already deleted, so an undecodable entry is dropped rather
	// than taking the rest of the batch with it.
	out := make([]account.Notice, 0, len(raw))
	for i, item := range raw {
		var n account.Notice
		if unmarshalErr := json.Unmarshal([]byte(item), &n); unmarshalErr != nil {
			s.logger.WarnContext(ctx, "dropping undecodable notice",
				"inbox", inbox,
				"index", i,
				"error", unmarshalErr)
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
