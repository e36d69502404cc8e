package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "leave-letter-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.InstitutionalProfile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InstitutionalProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.GeneralProfile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры GeneralProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.LetterDelivery{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LetterDelivery")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
