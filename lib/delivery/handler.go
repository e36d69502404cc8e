package deliveryhandler

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-letter-backend/db"
	deliverystore "leave-letter-backend/lib/delivery/store"
	xlsexport "leave-letter-backend/lib/export/xls"
	initchecker "leave-letter-backend/lib/utils/init-checker"
	"leave-letter-backend/models"
	letterapimodels "leave-letter-backend/models/api/letter"
	dbmodels "leave-letter-backend/models/db"
)

type Provider interface {
	// Record пишет в журнал результат отправки; sendErr == nil - письмо отправлено
	Record(ctx context.Context, userID, recipientEmail, subject, letter string, sendErr error)
	List(ctx context.Context, userID string, filter letterapimodels.DeliveryFilter) ([]letterapimodels.DeliveryView, int64, error)
	Export(ctx context.Context, userID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"xlsexport", xlsexport.Instance,
	)
	Instance = NewInstance(deliverystore.NewInstance(db.DB), xlsexport.Instance)
}

func NewInstance(store deliverystore.Provider, exporter xlsexport.Provider) Provider {
	return impl{
		store:    store,
		exporter: exporter,
	}
}

type impl struct {
	store    deliverystore.Provider
	exporter xlsexport.Provider
}

func (i impl) Record(ctx context.Context, userID, recipientEmail, subject, letter string, sendErr error) {
	logger := log.WithField("user_id", userID).
		WithField("recipient_email", recipientEmail)
	if userID == "" {
		return
	}
	rec := dbmodels.LetterDelivery{
		UserID:         userID,
		RecipientEmail: recipientEmail,
		Subject:        subject,
		Letter:         letter,
		Status:         models.DeliveryStatusSent,
	}
	if sendErr != nil {
		rec.Status = models.DeliveryStatusFailed
		rec.Error = sendErr.Error()
	}
	_, err := i.store.Create(ctx, rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения записи в журнал отправки писем")
	}
}

func (i impl) List(ctx context.Context, userID string, filter letterapimodels.DeliveryFilter) ([]letterapimodels.DeliveryView, int64, error) {
	rowCount, err := i.store.ListCount(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []letterapimodels.DeliveryView{}, rowCount, nil
	}

	list, err := i.store.List(ctx, userID, page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала отправки писем")
		return nil, 0, errors.New("ошибка получения журнала отправки писем")
	}
	result := make([]letterapimodels.DeliveryView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

func (i impl) Export(ctx context.Context, userID string) (*bytes.Buffer, error) {
	list, err := i.store.ListAll(ctx, userID)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала отправки писем")
		return nil, errors.New("ошибка получения журнала отправки писем")
	}
	return i.exporter.ExportDeliveryList(list)
}
