package formsessionstore

import (
	"context"
	"time"

	"leave-letter-backend/lib/letter"
	letterapimodels "leave-letter-backend/models/api/letter"
)

// Session состояние одной сессии заполнения формы
type Session struct {
	ID            string                                   `json:"id"`
	UserID        string                                   `json:"user_id,omitempty"`
	Kind          letter.FormKind                          `json:"kind"`
	General       *letterapimodels.GeneralLetterData       `json:"general,omitempty"`
	Institutional *letterapimodels.InstitutionalLetterData `json:"institutional,omitempty"`
	ProfileLoaded bool                                     `json:"profile_loaded"`
	Notice        string                                   `json:"notice,omitempty"`
	Generating    bool                                     `json:"generating"`
	Letter        *letterapimodels.GeneratedLetter         `json:"letter,omitempty"`
	CreatedAt     time.Time                                `json:"created_at"`
}

// Clone копия сессии без общих указателей с исходной
func (s Session) Clone() Session {
	if s.General != nil {
		general := *s.General
		s.General = &general
	}
	if s.Institutional != nil {
		institutional := *s.Institutional
		s.Institutional = &institutional
	}
	if s.Letter != nil {
		generated := *s.Letter
		s.Letter = &generated
	}
	return s
}

type Provider interface {
	// Get возвращает nil, если сессии нет или она истекла
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess Session) error
	Delete(ctx context.Context, id string) error
}

// ExpiredCleaner хранилище без собственного механизма истечения ключей
type ExpiredCleaner interface {
	DeleteExpired(ctx context.Context) (int, error)
}
