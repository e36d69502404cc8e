package formsessionworker

import (
	"context"
	"time"

	formsessionstore "leave-letter-backend/lib/form-session/store"
	baseworker "leave-letter-backend/lib/utils/base-worker"
)

// StartWorker удаляет истекшие сессии из хранилища в памяти. Valkey удаляет ключи сам, там воркер не нужен
func StartWorker(ctx context.Context, store formsessionstore.Provider, interval time.Duration) {
	cleaner, ok := store.(formsessionstore.ExpiredCleaner)
	if !ok {
		return
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("FormSessionCleanupWorker", interval, interval),
		cleaner:  cleaner,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	cleaner formsessionstore.ExpiredCleaner
}

func (i impl) handle(ctx context.Context) {
	count, err := i.cleaner.DeleteExpired(ctx)
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка удаления истекших сессий заполнения формы")
		return
	}
	if count > 0 {
		i.GetLogger().WithField("count", count).Info("удалены истекшие сессии заполнения формы")
	}
}
