package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every repository used by the service layer together
// with the connections backing them.
type Storages struct {
	UserRepository      UserRepository
	CircleRepository    CircleRepository
	HandshakeRepository HandshakeRepository

	// HandshakesExpireNatively is true when handshakes live in Redis and
	// no sweeper is needed.
	HandshakesExpireNatively bool

	db    *DB
	redis *redis.Client
}

// NewStorages connects to Postgres, applies migrations and, when a Redis
// URL is configured, keeps handshakes in Redis instead of Postgres.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:   NewUserRepository(db, log),
		CircleRepository: NewCircleRepository(db, log),
		db:               db,
	}

	if cfg.Redis.URL == "" {
		storages.HandshakeRepository = NewHandshakeRepository(db, log)
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	storages.redis = client
	storages.HandshakeRepository = NewRedisHandshakeRepository(client, utils.NewUUIDGenerator(), log)
	storages.HandshakesExpireNatively = true

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
