// Package memory provides in-process adapters for single-instance runs and tests.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/ports"
)

var _ ports.NoticeStore = (*NoticeStore)(nil)

// ErrEmptyInbox is returned when an inbox key is blank.
var ErrEmptyInbox = errors.New("inbox cannot be empty")

const (
	defaultMaxNotices = 20
	defaultNoticeTTL  = 10 * time.Minute
)

// NoticeStore keeps notices in a map guarded by a mutex. An inbox expires
// TTL after its last push, matching the redis store.
type NoticeStore struct {
	mu        sync.Mutex
	inbox     map[string]*pendingNotices
	maxLen    int
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type pendingNotices struct {
	notices  []account.Notice
	deadline time.Time
}

// NoticeStoreOptions configures a NoticeStore. Zero values use defaults.
type NoticeStoreOptions struct {
	MaxPerInbox int
	TTL         time.Duration
	Now         func() time.Time
}

// NewNoticeStore creates an empty store. Each inbox keeps at most maxLen
// notices, dropping the oldest; maxLen <= 0 means 20.
func NewNoticeStore(maxLen int) *NoticeStore {
	return NewNoticeStoreWithOptions(NoticeStoreOptions{MaxPerInbox: maxLen})
}

// NewNoticeStoreWithOptions creates an empty store.
func NewNoticeStoreWithOptions(opts NoticeStoreOptions) *NoticeStore {
	s := &NoticeStore{
		inbox:  make(map[string]*pendingNotices),
		maxLen: opts.MaxPerInbox,
		ttl:    opts.TTL,
		now:    opts.Now,
	}
	if s.maxLen <= 0 {
		s.maxLen = defaultMaxNotices
	}
	if s.ttl <= 0 {
		s.ttl = defaultNoticeTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.lastSweep = s.now()
	return s
}

func (s *NoticeStore) Push(_ context.Context, inbox string, n account.Notice) error {
	if inbox == "" {
		return ErrEmptyInbox
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	p, ok := s.inbox[inbox]
	if !ok || !now.Before(p.deadline) {
		p = &pendingNotices{}
		s.inbox[inbox] = p
	}
	p.notices = append(p.notices, n)
	if len(p.notices) > s.maxLen {
		p.notices = p.notices[len(p.notices)-s.maxLen:]
	}
	p.deadline = now.Add(s.ttl)
	return nil
}

func (s *NoticeStore) Drain(_ context.Context, inbox string) ([]account.Notice, error) {
	if inbox == "" {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.inbox[inbox]
	if !ok {
		return nil, nil
	}
	delete(s.inbox, inbox)
	if !s.now().Before(p.deadline) {
		return nil, nil
	}
	return p.notices, nil
}

// sweepLocked drops expired inboxes at most once per TTL so abandoned
// visitors do not pin memory.
func (s *NoticeStore) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.ttl {
		return
	}
	for key, p := range s.inbox {
		if !now.Before(p.deadline) {
			delete(s.inbox, key)
		}
	}
	s.lastSweep = now
}
