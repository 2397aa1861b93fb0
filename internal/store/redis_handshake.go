// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/redis/go-redis/v9"
)

const handshakePrefix = "handshake:"

// ErrHandshakeAlreadyExpired is returned when a handshake is created with
// an expiry that is not in the future.
var ErrHandshakeAlreadyExpired = fmt.Errorf("%w: handshake expiry is in the past", models.ErrValidation)

// redisHandshakeRepository keeps each handshake under its own key with a
// native TTL equal to the time left until ExpiresAt, so Redis purges it
// without any sweeper.
type redisHandshakeRepository struct {
	client redis.UniversalClient
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewRedisHandshakeRepository constructs a Redis-backed [HandshakeRepository].
func NewRedisHandshakeRepository(client redis.UniversalClient, ids utils.IDGenerator, logger *logger.Logger) HandshakeRepository {
	logger.Debug().Msg("creating redis handshake repository")
	return &redisHandshakeRepository{
		client: client,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func handshakeKey(id string) string {
	return handshakePrefix + id
}

func (r *redisHandshakeRepository) CreateHandshake(ctx context.Context, handshake models.Handshake) (models.Handshake, error) {
	log := logger.FromContext(ctx)

	ttl := handshake.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return models.Handshake{}, ErrHandshakeAlreadyExpired
	}

	handshake.ID = r.ids.Generate()
	payload, err := json.Marshal(handshake)
	if err != nil {
		return models.Handshake{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	if err = r.client.Set(ctx, handshakeKey(handshake.ID), payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "redisHandshakeRepository.CreateHandshake").Str("sender_id", handshake.SenderID).Msg("failed to store handshake")
		return models.Handshake{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return handshake, nil
}

func (r *redisHandshakeRepository) FindHandshakeByID(ctx context.Context, handshakeID string) (models.Handshake, error) {
	log := logger.FromContext(ctx)

	payload, err := r.client.Get(ctx, handshakeKey(handshakeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Handshake{}, ErrHandshakeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "redisHandshakeRepository.FindHandshakeByID").Str("handshake_id", handshakeID).Msg("failed to read handshake")
		return models.Handshake{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var handshake models.Handshake
	if err = json.Unmarshal(payload, &handshake); err != nil {
		log.Err(err).Str("func", "redisHandshakeRepository.FindHandshakeByID").Str("handshake_id", handshakeID).Msg("failed to decode handshake")
		return models.Handshake{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// a key may outlive ExpiresAt by Redis' expiry granularity
	if !handshake.ExpiresAt.After(r.now()) {
		return models.Handshake{}, ErrHandshakeNotFound
	}

	return handshake, nil
}

func (r *redisHandshakeRepository) DeleteHandshake(ctx context.Context, handshakeID string) error {
	if err := r.client.Del(ctx, handshakeKey(handshakeID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisHandshakeRepository.DeleteHandshake").
			Str("handshake_id", handshakeID).
			Msg("failed to delete handshake")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredHandshakes is a no-op: Redis expires keys itself.
func (r *redisHandshakeRepository) DeleteExpiredHandshakes(context.Context) (int64, error) {
	return 0, nil
}
