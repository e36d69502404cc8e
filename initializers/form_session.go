package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/valkey-io/valkey-go"
	"leave-letter-backend/config"
	formsession "leave-letter-backend/lib/form-session"
	formsessionstore "leave-letter-backend/lib/form-session/store"
	formsessionworker "leave-letter-backend/lib/form-session/worker"
	"leave-letter-backend/lib/profile"
	initchecker "leave-letter-backend/lib/utils/init-checker"
	connectionhub "leave-letter-backend/lib/ws/hub/connection-hub"
)

const sessionBackendValkey = "valkey"

const sessionCleanupInterval = time.Minute

func InitFormSession(ctx context.Context) {
	initchecker.CheckInit(
		"profile", profile.Instance,
		"connectionhub", connectionhub.Instance,
	)
	ttl := time.Duration(config.Conf.Session.TTLMinutes) * time.Minute
	store := newSessionStore(ttl)
	formsession.NewHandler(store, profile.Instance, connectionhub.Instance, formSessionConfig())
	formsessionworker.StartWorker(ctx, store, sessionCleanupInterval)
}

func newSessionStore(ttl time.Duration) formsessionstore.Provider {
	if config.Conf.Session.Backend != sessionBackendValkey {
		return formsessionstore.NewMemoryInstance(ttl)
	}
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{config.Conf.Valkey.Address},
		Password:    config.Conf.Valkey.Password,
	})
	if err != nil {
		panic(err.Error())
	}
	log.WithField("address", config.Conf.Valkey.Address).Info("сессии форм хранятся в valkey")
	return formsessionstore.NewValkeyInstance(client, ttl)
}

func formSessionConfig() formsession.Config {
	cfg := formsession.Config{
		ProfileFetchTimeout: time.Duration(config.Conf.Session.ProfileFetchTimeoutMsec) * time.Millisecond,
	}
	if *config.Conf.Animation.Enabled {
		cfg.GeneralAnimation = formsession.GeneralAnimation
		cfg.InstitutionalAnimation = formsession.InstitutionalAnimation
	}
	return cfg
}
