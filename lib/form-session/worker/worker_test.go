package formsessionworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	formsessionstore "leave-letter-backend/lib/form-session/store"
)

type countingStore struct {
	formsessionstore.Provider
	calls int32
}

func (c *countingStore) DeleteExpired(context.Context) (int, error) {
	atomic.AddInt32(&c.calls, 1)
	return 1, nil
}

func TestStartWorker(t *testing.T) {
	t.Run(`cleaner store is swept periodically`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		store := &countingStore{Provider: formsessionstore.NewMemoryInstance(time.Hour)}
		StartWorker(ctx, store, 5*time.Millisecond)
		require.Eventually(t, func() bool {
			return atomic.LoadInt32(&store.calls) >= 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run(`memory store supports cleanup`, func(t *testing.T) {
		ctx := context.Background()
		store := formsessionstore.NewMemoryInstance(10 * time.Millisecond)
		require.NoError(t, store.Save(ctx, formsessionstore.Session{ID: "s1"}))
		cleaner, ok := store.(formsessionstore.ExpiredCleaner)
		require.True(t, ok)
		time.Sleep(20 * time.Millisecond)
		count, err := cleaner.DeleteExpired(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}
