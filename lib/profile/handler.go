package profile

import (
	"context"

	"leave-letter-backend/db"
	profilestore "leave-letter-backend/lib/profile/store"
	profileapimodels "leave-letter-backend/models/api/profile"
	dbmodels "leave-letter-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Fetch профили пользователя; отсутствующий профиль - nil.
	// email - почта из токена, подставляется в общий профиль если там пусто
	Fetch(ctx context.Context, userID, email string) (profileapimodels.ProfilesView, error)
	SaveInstitutional(ctx context.Context, userID string, data profileapimodels.InstitutionalProfile) error
	SaveGeneral(ctx context.Context, userID string, data profileapimodels.GeneralProfile) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(profilestore.NewInstance(db.DB))
}

func NewInstance(store profilestore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store profilestore.Provider
}

func (i impl) Fetch(ctx context.Context, userID, email string) (result profileapimodels.ProfilesView, err error) {
	logger := log.WithField("user_id", userID)
	if userID == "" {
		return result, nil
	}
	instRec, err := i.store.GetInstitutional(ctx, userID)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения институционального профиля")
		return result, errors.Wrap(err, "ошибка получения институционального профиля")
	}
	if instRec != nil {
		inst := instRec.ToModel()
		result.Institutional = &inst
	}

	genRec, err := i.store.GetGeneral(ctx, userID)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения общего профиля")
		return result, errors.Wrap(err, "ошибка получения общего профиля")
	}
	if genRec != nil {
		gen := genRec.ToModel()
		if gen.Email == "" {
			gen.Email = email
		}
		result.General = &gen
	}
	return result, nil
}

func (i impl) SaveInstitutional(ctx context.Context, userID string, data profileapimodels.InstitutionalProfile) error {
	if userID == "" {
		return errors.New("не указан пользователь")
	}
	err := i.store.UpsertInstitutional(ctx, dbmodels.NewInstitutionalProfile(userID, data))
	if err != nil {
		log.WithField("user_id", userID).
			WithError(err).
			Error("ошибка сохранения институционального профиля")
		return errors.Wrap(err, "ошибка сохранения институционального профиля")
	}
	return nil
}

func (i impl) SaveGeneral(ctx context.Context, userID string, data profileapimodels.GeneralProfile) error {
	if userID == "" {
		return errors.New("не указан пользователь")
	}
	err := i.store.UpsertGeneral(ctx, dbmodels.NewGeneralProfile(userID, data))
	if err != nil {
		log.WithField("user_id", userID).
			WithError(err).
			Error("ошибка сохранения общего профиля")
		return errors.Wrap(err, "ошибка сохранения общего профиля")
	}
	return nil
}
