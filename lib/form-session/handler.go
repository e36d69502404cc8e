package formsession

import (
	"context"
	"time"

	formsessionstore "leave-letter-backend/lib/form-session/store"
	"leave-letter-backend/lib/letter"
	"leave-letter-backend/lib/profile"
	"leave-letter-backend/lib/utils/lock"
	letterapimodels "leave-letter-backend/models/api/letter"
	sessionapimodels "leave-letter-backend/models/api/session"
	wsmodels "leave-letter-backend/models/ws"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	noticeProfileUnavailable = "Не удалось загрузить профиль, заполните поля вручную"

	sessionLockPrefix = "form-session:"
	// больше таймаута загрузки профиля, который выполняется под блокировкой
	sessionLockWait = 10 * time.Second
)

type Provider interface {
	Open(ctx context.Context, userID, email string, kind letter.FormKind) (sessionapimodels.SessionView, error)
	Get(ctx context.Context, id, userID string) (sessionapimodels.SessionView, error)
	ChangeField(ctx context.Context, id, userID string, change sessionapimodels.FieldChange) (sessionapimodels.SessionView, error)
	// Generate проверяет форму, проигрывает анимацию прогресса и формирует письмо.
	// При ошибке проверки возвращается *letter.ValidationError, состояние не меняется
	Generate(ctx context.Context, id, userID string) (letterapimodels.GeneratedLetter, error)
	ReturnToEditing(ctx context.Context, id, userID string) (sessionapimodels.SessionView, error)
	Reset(ctx context.Context, id, userID string) (sessionapimodels.SessionView, error)
	RefreshProfile(ctx context.Context, id, userID, email string) (sessionapimodels.SessionView, error)
	Close(ctx context.Context, id, userID string) error
}

// Notifier получатель событий прогресса и готовности письма
type Notifier interface {
	SendMessage(msg wsmodels.ServerMessage)
	// SendClose закрывает подписку на события сессии
	SendClose(sessionID string)
}

// CompletionFunc вызывается после формирования письма, передает результат на отображение
type CompletionFunc func(sessionID string, result letterapimodels.GeneratedLetter)

type Config struct {
	ProfileFetchTimeout    time.Duration
	GeneralAnimation       Animation
	InstitutionalAnimation Animation
}

var Instance Provider

func NewHandler(store formsessionstore.Provider, profiles profile.Provider, notifier Notifier, cfg Config) {
	Instance = NewInstance(store, profiles, notifier, cfg, nil)
}

// NewInstance onComplete может быть nil, тогда готовое письмо отправляется событием letter_ready
func NewInstance(store formsessionstore.Provider, profiles profile.Provider, notifier Notifier, cfg Config, onComplete CompletionFunc) Provider {
	i := &impl{
		store:      store,
		profiles:   profiles,
		notifier:   notifier,
		cfg:        cfg,
		engine:     letter.NewEngine(),
		onComplete: onComplete,
	}
	if i.onComplete == nil {
		i.onComplete = i.notifyLetterReady
	}
	return i
}

type impl struct {
	store      formsessionstore.Provider
	profiles   profile.Provider
	notifier   Notifier
	cfg        Config
	engine     letter.Engine
	onComplete CompletionFunc
}

func (i *impl) Open(ctx context.Context, userID, email string, kind letter.FormKind) (sessionapimodels.SessionView, error) {
	if !kind.IsValid() {
		return sessionapimodels.SessionView{}, ErrUnknownKind
	}
	sess := newBlankSession(uuid.New().String(), userID, kind)
	sess.CreatedAt = time.Now()
	i.loadProfile(ctx, &sess, email)

	if err := i.store.Save(ctx, sess); err != nil {
		log.WithField("user_id", userID).
			WithError(err).
			Error("ошибка сохранения сессии заполнения формы")
		return sessionapimodels.SessionView{}, err
	}
	return toView(sess), nil
}

func (i *impl) Get(ctx context.Context, id, userID string) (sessionapimodels.SessionView, error) {
	sess, err := i.getSession(ctx, id, userID)
	if err != nil {
		return sessionapimodels.SessionView{}, err
	}
	return toView(*sess), nil
}

func (i *impl) ChangeField(ctx context.Context, id, userID string, change sessionapimodels.FieldChange) (sessionapimodels.SessionView, error) {
	sess, err := i.update(ctx, id, userID, func(sess *formsessionstore.Session) error {
		return setField(sess, letter.Field(change.Field), change.Value)
	})
	if err != nil {
		return sessionapimodels.SessionView{}, err
	}
	return toView(*sess), nil
}

func (i *impl) Generate(ctx context.Context, id, userID string) (letterapimodels.GeneratedLetter, error) {
	logger := log.WithField("session_id", id)
	snapshot, err := i.beginGenerate(ctx, id, userID)
	if err != nil {
		return letterapimodels.GeneratedLetter{}, err
	}
	form, _ := sessionForm(snapshot)

	i.animation(snapshot.Kind).Run(func(progress int) {
		i.notify(wsmodels.ServerMessage{
			ToSessionID: id,
			Code:        wsmodels.EventProgress,
			Progress:    progress,
		})
	})

	text, renderErr := i.engine.Render(form)
	result := letterapimodels.GeneratedLetter{
		Letter:         text,
		RecipientEmail: recipientEmail(snapshot),
	}

	// за время анимации поля могли измениться, письмо сохраняем в актуальное состояние.
	// Отмена запроса не должна оставлять сессию в состоянии генерации
	_, err = i.update(context.WithoutCancel(ctx), id, userID, func(sess *formsessionstore.Session) error {
		sess.Generating = false
		if renderErr == nil {
			sess.Letter = &result
		}
		return nil
	})
	if err != nil {
		return letterapimodels.GeneratedLetter{}, err
	}
	if renderErr != nil {
		logger.WithError(renderErr).Error("ошибка формирования письма")
		return letterapimodels.GeneratedLetter{}, renderErr
	}
	logger.Info("письмо сформировано")
	i.onComplete(id, result)
	return result, nil
}

// beginGenerate проверяет форму и отмечает сессию как генерирующуюся
func (i *impl) beginGenerate(ctx context.Context, id, userID string) (formsessionstore.Session, error) {
	sess, err := i.update(ctx, id, userID, func(sess *formsessionstore.Session) error {
		if sess.Generating {
			return ErrGenerationInProgress
		}
		form, err := sessionForm(*sess)
		if err != nil {
			return err
		}
		if err = letter.Validate(form); err != nil {
			return err
		}
		sess.Generating = true
		return nil
	})
	if err != nil {
		return formsessionstore.Session{}, err
	}
	return *sess, nil
}

func (i *impl) ReturnToEditing(ctx context.Context, id, userID string) (sessionapimodels.SessionView, error) {
	sess, err := i.update(ctx, id, userID, func(sess *formsessionstore.Session) error {
		sess.Letter = nil
		return nil
	})
	if err != nil {
		return sessionapimodels.SessionView{}, err
	}
	return toView(*sess), nil
}

func (i *impl) Reset(ctx context.Context, id, userID string) (sessionapimodels.SessionView, error) {
	sess, err := i.update(ctx, id, userID, func(sess *formsessionstore.Session) error {
		resetFields(sess)
		sess.Letter = nil
		sess.Notice = ""
		sess.Generating = false
		return nil
	})
	if err != nil {
		return sessionapimodels.SessionView{}, err
	}
	return toView(*sess), nil
}

func (i *impl) RefreshProfile(ctx context.Context, id, userID, email string) (sessionapimodels.SessionView, error) {
	sess, err := i.update(ctx, id, userID, func(sess *formsessionstore.Session) error {
		i.loadProfile(ctx, sess, email)
		return nil
	})
	if err != nil {
		return sessionapimodels.SessionView{}, err
	}
	return toView(*sess), nil
}

func (i *impl) Close(ctx context.Context, id, userID string) error {
	if _, err := i.getSession(ctx, id, userID); err != nil {
		return err
	}
	if err := i.store.Delete(ctx, id); err != nil {
		log.WithField("session_id", id).
			WithError(err).
			Error("ошибка удаления сессии заполнения формы")
		return err
	}
	if i.notifier != nil {
		i.notifier.SendClose(id)
	}
	return nil
}

// loadProfile ошибки и таймаут профиля не фатальны: поля остаются как есть, в сессии появляется уведомление
func (i *impl) loadProfile(ctx context.Context, sess *formsessionstore.Session, email string) {
	sess.Notice = ""
	if sess.UserID == "" || i.profiles == nil {
		return
	}
	fetchCtx := ctx
	if i.cfg.ProfileFetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, i.cfg.ProfileFetchTimeout)
		defer cancel()
	}
	profiles, err := i.profiles.Fetch(fetchCtx, sess.UserID, email)
	if err != nil {
		log.WithFields(log.Fields{
			"session_id": sess.ID,
			"user_id":    sess.UserID,
		}).
			WithError(err).
			Warn("профиль для автозаполнения не получен")
		sess.Notice = noticeProfileUnavailable
		i.notify(wsmodels.ServerMessage{
			ToSessionID: sess.ID,
			Code:        wsmodels.EventNotice,
			Msg:         noticeProfileUnavailable,
		})
		return
	}
	sess.ProfileLoaded = applyProfiles(sess, profiles, email)
}

func (i *impl) getSession(ctx context.Context, id, userID string) (*formsessionstore.Session, error) {
	sess, err := i.store.Get(ctx, id)
	if err != nil {
		log.WithField("session_id", id).
			WithError(err).
			Error("ошибка получения сессии заполнения формы")
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.UserID != "" && sess.UserID != userID {
		return nil, ErrSessionForbidden
	}
	return sess, nil
}

// update загружает сессию, применяет fn и сохраняет результат под блокировкой сессии
func (i *impl) update(ctx context.Context, id, userID string, fn func(sess *formsessionstore.Session) error) (*formsessionstore.Session, error) {
	var result *formsessionstore.Session
	locked, err := lock.WithDelay(ctx, sessionLockPrefix+id, sessionLockWait, func() error {
		sess, err := i.getSession(ctx, id, userID)
		if err != nil {
			return err
		}
		if err = fn(sess); err != nil {
			return err
		}
		if err = i.save(ctx, *sess); err != nil {
			return err
		}
		result = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSessionBusy
	}
	return result, nil
}

func (i *impl) save(ctx context.Context, sess formsessionstore.Session) error {
	if err := i.store.Save(ctx, sess); err != nil {
		log.WithField("session_id", sess.ID).
			WithError(err).
			Error("ошибка сохранения сессии заполнения формы")
		return errors.Wrap(err, "ошибка сохранения сессии заполнения формы")
	}
	return nil
}

func (i *impl) animation(kind letter.FormKind) Animation {
	if kind == letter.KindInstitutional {
		return i.cfg.InstitutionalAnimation
	}
	return i.cfg.GeneralAnimation
}

func (i *impl) notify(msg wsmodels.ServerMessage) {
	if i.notifier == nil {
		return
	}
	msg.Time = time.Now().Format("02.01.2006 15:04:05")
	i.notifier.SendMessage(msg)
}

func (i *impl) notifyLetterReady(sessionID string, result letterapimodels.GeneratedLetter) {
	i.notify(wsmodels.ServerMessage{
		ToSessionID: sessionID,
		Code:        wsmodels.EventLetterReady,
		Msg:         result.Letter,
	})
}
