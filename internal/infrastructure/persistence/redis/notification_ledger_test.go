package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/progress-tracker/internal/domain/notification"
	"github.com/alem-hub/progress-tracker/internal/domain/shared"
)

func TestNewClient_EmptyAddr(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrEmptyAddr)
}

func TestClient_Key(t *testing.T) {
	c := &Client{config: Config{KeyPrefix: "tracker:"}}
	assert.Equal(t, "tracker:notifications:sent", c.Key(sentSetName))
}

func TestNotificationLedger_Unavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer rdb.Close()

	ledger := NewNotificationLedger(&Client{rdb: rdb, config: Config{KeyPrefix: "tracker:"}})
	key := notification.Key{Email: "jane@x.io", FullName: "Jane Doe", Course: "Python"}

	_, err := ledger.Contains(context.Background(), key)
	assert.True(t, shared.IsUnavailable(err))
	assert.ErrorContains(t, err, "notification.Contains: ledger is unavailable")

	err = ledger.Record(context.Background(), key)
	assert.True(t, shared.IsUnavailable(err))
}

func TestNotificationLedger_Integration(t *testing.T) {
	addr := os.Getenv("TRACKER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TRACKER_TEST_REDIS_ADDR is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := DefaultConfig()
	cfg.Addr = addr
	cfg.KeyPrefix = "tracker-test:"
	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	ledger := NewNotificationLedger(client)
	require.NoError(t, ledger.Reset(ctx))
	defer ledger.Reset(ctx)

	key := notification.Key{Email: "jane@x.io", FullName: "Jane Doe", Course: "Python"}

	ok, err := ledger.Contains(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ledger.Record(ctx, key))
	require.NoError(t, ledger.Record(ctx, key))

	ok, err = ledger.Contains(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := ledger.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
