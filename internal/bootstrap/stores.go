package bootstrap

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/target/chat-portal/config"
	"github.com/target/chat-portal/internal/adapters/memory"
	redisadapter "github.com/target/chat-portal/internal/adapters/redis"
	"github.com/target/chat-portal/internal/data"
	"github.com/target/chat-portal/internal/ports"
	"github.com/target/chat-portal/internal/service"
)

// NewNoticeStore picks the toast store backend. The redis backend needs a
// connected client.
//
//nolint:ireturn // callers only need the port.
func NewNoticeStore(cfg config.NoticesConfig, client redis.UniversalClient, logger *slog.Logger) (ports.NoticeStore, error) {
	if cfg.Backend == config.NoticesBackendRedis {
		if client == nil {
			return nil, errors.New("redis notice backend requires a redis client")
		}
		if logger != nil {
			logger.Info("using redis notice store", "ttl", cfg.TTL, "max_per_inbox", cfg.MaxPerInbox)
		}
		return redisadapter.NewNoticeStoreWithOptions(client, redisadapter.NoticeStoreOptions{
			TTL:        cfg.TTL,
			MaxPerUser: cfg.MaxPerInbox,
			Logger:     logger,
		}), nil
	}

	if logger != nil {
		logger.Info("using in-memory notice store", "ttl", cfg.TTL, "max_per_inbox", cfg.MaxPerInbox)
	}
	return memory.NewNoticeStoreWithOptions(memory.NoticeStoreOptions{
		MaxPerInbox: cfg.MaxPerInbox,
		TTL:         cfg.TTL,
	}), nil
}

// NewAccountStores picks the dev gateway storage. Postgres needs a connected db.
func NewAccountStores(cfg config.GatewayServerConfig, db *sql.DB) (service.AccountStores, error) {
	if cfg.Storage == config.StoragePostgres {
		if db == nil {
			return service.AccountStores{}, errors.New("postgres gateway storage requires a database")
		}
		return service.AccountStores{
			Users:  data.NewUserRepo(db),
			Tokens: data.NewEmailTokenRepo(db),
		}, nil
	}

	users := memory.NewUserStore()
	return service.AccountStores{Users: users, Tokens: users}, nil
}
