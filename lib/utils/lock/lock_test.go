package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run(`runs code and returns its error`, func(t *testing.T) {
		codeErr := errors.New("fail")
		ok, err := WithDelay(ctx, "k1", time.Second, func() error { return codeErr })
		require.True(t, ok)
		require.ErrorIs(t, err, codeErr)

		ok, err = WithDelay(ctx, "k1", time.Second, func() error { return nil })
		require.True(t, ok)
		require.NoError(t, err)
	})

	t.Run(`timeout while key is held`, func(t *testing.T) {
		held := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "k2", time.Second, func() error {
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		ran := false
		ok, err := WithDelay(ctx, "k2", 30*time.Millisecond, func() error {
			ran = true
			return nil
		})
		close(release)
		require.False(t, ok)
		require.NoError(t, err)
		require.False(t, ran)
	})

	t.Run(`serializes same key`, func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			active  int
			overlap bool
		)
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = WithDelay(ctx, "k3", 5*time.Second, func() error {
					mu.Lock()
					active++
					if active > 1 {
						overlap = true
					}
					mu.Unlock()
					time.Sleep(5 * time.Millisecond)
					mu.Lock()
					active--
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()
		require.False(t, overlap)
	})
}
