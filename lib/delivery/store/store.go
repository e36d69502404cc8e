package deliverystore

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "leave-letter-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.LetterDelivery) (id string, err error)
	ListCount(ctx context.Context, userID string) (count int64, err error)
	List(ctx context.Context, userID string, page, limit int) (list []dbmodels.LetterDelivery, err error)
	ListAll(ctx context.Context, userID string) (list []dbmodels.LetterDelivery, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.LetterDelivery) (id string, err error) {
	err = i.db.
		WithContext(ctx).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(ctx context.Context, userID string) (count int64, err error) {
	var rowCount int64
	err = i.db.
		WithContext(ctx).
		Model(dbmodels.LetterDelivery{}).
		Where("user_id = ?", userID).
		Count(&rowCount).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества отправленных писем")
		return 0, errors.New("ошибка получения общего количества отправленных писем")
	}
	return rowCount, nil
}

func (i impl) List(ctx context.Context, userID string, page, limit int) (list []dbmodels.LetterDelivery, err error) {
	list = []dbmodels.LetterDelivery{}
	tx := i.db.
		WithContext(ctx).
		Model(dbmodels.LetterDelivery{}).
		Where("user_id = ?", userID)
	i.setPage(tx, page, limit)
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(ctx context.Context, userID string) (list []dbmodels.LetterDelivery, err error) {
	list = []dbmodels.LetterDelivery{}
	err = i.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
