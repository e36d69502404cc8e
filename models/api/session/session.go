package sessionapimodels

import (
	"strings"

	"leave-letter-backend/lib/letter"
	letterapimodels "leave-letter-backend/models/api/letter"

	"github.com/pkg/errors"
)

type OpenRequest struct {
	Kind string `json:"kind"` // Вид формы: general/institutional
}

func (r OpenRequest) Validate() error {
	if !letter.FormKind(r.Kind).IsValid() {
		return errors.New("не указан или неизвестен вид формы")
	}
	return nil
}

// FieldChange событие изменения поля формы
type FieldChange struct {
	Field string `json:"field"` // Имя поля, например company_name
	Value string `json:"value"` // Новое значение
}

func (r FieldChange) Validate() error {
	if len(strings.TrimSpace(r.Field)) == 0 {
		return errors.New("не указано поле формы")
	}
	return nil
}

// SessionView состояние сессии заполнения формы
type SessionView struct {
	ID            string                                   `json:"id"`
	Kind          string                                   `json:"kind"`
	General       *letterapimodels.GeneralLetterData       `json:"general,omitempty"`
	Institutional *letterapimodels.InstitutionalLetterData `json:"institutional,omitempty"`
	Progress      int                                      `json:"progress"`
	ProfileLoaded bool                                     `json:"profile_loaded"`
	Notice        string                                   `json:"notice,omitempty"`
	Generating    bool                                     `json:"generating"`
	Letter        *letterapimodels.GeneratedLetter         `json:"letter,omitempty"`
}
