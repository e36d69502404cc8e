package formsessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/valkey-io/valkey-go"
)

const (
	keyPrefix  = "leave-letter:form-session:"
	defaultTTL = 24 * time.Hour
)

type valkeyImpl struct {
	client valkey.Client
	ttl    time.Duration
}

// NewValkeyInstance хранилище сессий в valkey, общее для нескольких инстансов сервиса
func NewValkeyInstance(client valkey.Client, ttl time.Duration) Provider {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &valkeyImpl{
		client: client,
		ttl:    ttl,
	}
}

func (v valkeyImpl) Get(ctx context.Context, id string) (*Session, error) {
	data, err := v.client.Do(ctx, v.client.B().Get().Key(keyPrefix+id).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения сессии из valkey")
	}
	var sess Session
	if err = json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора сессии")
	}
	return &sess, nil
}

func (v valkeyImpl) Save(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации сессии")
	}
	cmd := v.client.B().Set().Key(keyPrefix + sess.ID).Value(valkey.BinaryString(data)).Ex(v.ttl).Build()
	if err = v.client.Do(ctx, cmd).Error(); err != nil {
		return errors.Wrap(err, "ошибка записи сессии в valkey")
	}
	return nil
}

func (v valkeyImpl) Delete(ctx context.Context, id string) error {
	err := v.client.Do(ctx, v.client.B().Del().Key(keyPrefix+id).Build()).Error()
	if err != nil {
		return errors.Wrap(err, "ошибка удаления сессии из valkey")
	}
	return nil
}
