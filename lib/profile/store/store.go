package profilestore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "leave-letter-backend/models/db"
)

type Provider interface {
	GetInstitutional(ctx context.Context, userID string) (rec *dbmodels.InstitutionalProfile, err error)
	GetGeneral(ctx context.Context, userID string) (rec *dbmodels.GeneralProfile, err error)
	UpsertInstitutional(ctx context.Context, rec dbmodels.InstitutionalProfile) error
	UpsertGeneral(ctx context.Context, rec dbmodels.GeneralProfile) error
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetInstitutional(ctx context.Context, userID string) (rec *dbmodels.InstitutionalProfile, err error) {
	err = i.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetGeneral(ctx context.Context, userID string) (rec *dbmodels.GeneralProfile, err error) {
	err = i.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) UpsertInstitutional(ctx context.Context, rec dbmodels.InstitutionalProfile) error {
	return i.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"student_name", "batch", "manager_name", "recipient_email", "updated_at"}),
		}).
		Create(&rec).
		Error
}

func (i impl) UpsertGeneral(ctx context.Context, rec dbmodels.GeneralProfile) error {
	return i.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_name", "company_name", "designation", "email", "phone", "recipient_email", "updated_at"}),
		}).
		Create(&rec).
		Error
}
