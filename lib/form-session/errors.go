package formsession

import "github.com/pkg/errors"

var (
	ErrSessionNotFound      = errors.New("сессия заполнения формы не найдена")
	ErrSessionForbidden     = errors.New("сессия принадлежит другому пользователю")
	ErrGenerationInProgress = errors.New("письмо уже формируется")
	ErrUnknownField         = errors.New("неизвестное поле формы")
	ErrInvalidFieldValue    = errors.New("недопустимое значение поля")
	ErrUnknownKind          = errors.New("неизвестный вид формы")
	ErrSessionBusy          = errors.New("сессия занята другим запросом, повторите позже")
)
