package letterdisplay

import "github.com/pkg/errors"

var (
	ErrStorageUnavailable = errors.New("хранилище файлов не настроено")
	ErrMailUnavailable    = errors.New("отправка почты не настроена")
)
