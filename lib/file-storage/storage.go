package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const letterFileName = "leave-application.pdf"

type Provider interface {
	// UploadLetter сохраняет pdf письма, возвращает ключ объекта
	UploadLetter(ctx context.Context, userID string, file []byte) (string, error)
	GetLink(ctx context.Context, objectKey string) (string, error)
	LinkTTL() time.Duration
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
	linkTTL    time.Duration
}

func NewInstance(s3client *minio.Client, bucketName string, linkTTL time.Duration) {
	if linkTTL <= 0 {
		linkTTL = time.Hour
	}
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
		linkTTL:    linkTTL,
	}
}

func (i impl) UploadLetter(ctx context.Context, userID string, file []byte) (string, error) {
	objectKey := LetterObjectKey(userID, uuid.New().String())
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectKey, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		log.WithField("object_key", objectKey).WithError(err).Error("ошибка загрузки файла в хранилище")
		return "", errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return objectKey, nil
}

func (i impl) GetLink(ctx context.Context, objectKey string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", letterFileName))
	link, err := i.s3client.PresignedGetObject(ctx, i.bucketName, objectKey, i.linkTTL, params)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения ссылки на файл")
	}
	return link.String(), nil
}

func (i impl) LinkTTL() time.Duration {
	return i.linkTTL
}

func LetterObjectKey(userID, fileID string) string {
	return fmt.Sprintf("letters/%s/%s.pdf", userID, fileID)
}
