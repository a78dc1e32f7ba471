package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestNoticeStore_PushAndDrain(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewNoticeStore(client)
	ctx := context.Background()

	login := account.ModeLogin.Notice()
	register := account.ModeRegister.Notice()
	require.NoError(t, store.Push(ctx, "inbox-1", login))
	require.NoError(t, store.Push(ctx, "inbox-1", register))

	got, err := store.Drain(ctx, "inbox-1")
	require.NoError(t, err)
	assert.Equal(t, []account.Notice{login, register}, got)

	again, err := store.Drain(ctx, "inbox-1")
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestNoticeStore_SetsTTL(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewNoticeStoreWithOptions(client, NoticeStoreOptions{Prefix: "test:notices:", TTL: time.Minute})
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, "inbox-ttl", account.Notice{Title: "x"}))

	ttl, err := client.TTL(ctx, "test:notices:inbox-ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestNoticeStore_TrimsToMax(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewNoticeStoreWithOptions(client, NoticeStoreOptions{MaxPerUser: 2})
	ctx := context.Background()

	for i := range 4 {
		require.NoError(t, store.Push(ctx, "inbox-max", account.Notice{Title: fmt.Sprint(i)}))
	}

	got, err := store.Drain(ctx, "inbox-max")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].Title)
	assert.Equal(t, "3", got[1].Title)
}

func TestNoticeStore_DrainSkipsUndecodableEntries(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewNoticeStoreWithOptions(client, NoticeStoreOptions{Prefix: "test:notices:"})
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, "inbox-bad", account.Notice{Title: "before"}))
	require.NoError(t, client.RPush(ctx, "test:notices:inbox-bad", "{not json").Err())
	require.NoError(t, store.Push(ctx, "inbox-bad", account.Notice{Title: "after"}))

	got, err := store.Drain(ctx, "inbox-bad")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "before", got[0].Title)
	assert.Equal(t, "after", got[1].Title)

	exists, err := client.Exists(ctx, "test:notices:inbox-bad").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestNoticeStore_EmptyInbox(t *testing.T) {
	store := NewNoticeStore(nil)

	err := store.Push(context.Background(), "", account.Notice{})
	assert.ErrorIs(t, err, ErrEmptyInbox)

	got, err := store.Drain(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}
