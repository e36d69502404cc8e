package lock

import (
	"context"
	"sync"
	"time"
)

const retryInterval = 10 * time.Millisecond

var (
	lockMap sync.Map
)

// WithDelay выполняет safeCode под блокировкой key в пределах процесса.
// Если блокировку не удалось получить за wait или контекст завершился, safeCode не выполняется
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(retryInterval):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}
