package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"leave-letter-backend/config"
	filestorage "leave-letter-backend/lib/file-storage"
	s3client "leave-letter-backend/s3"
)

// InitS3 без настроенного хранилища функция "поделиться" недоступна, остальное работает
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, ссылки на письма недоступны")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
		return
	}
	filestorage.NewInstance(minioClient, config.Conf.S3.BucketName, time.Duration(config.Conf.S3.LinkTTLMinutes)*time.Minute)
	log.Info("S3 клиент успешно инициализирован")
}
