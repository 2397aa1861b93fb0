package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

// handshakeRepository keeps handshakes in the "handshakes" table. Expired
// rows are invisible to lookups and purged by [DeleteExpiredHandshakes],
// which the sweeper worker calls periodically.
type handshakeRepository struct {
	*DB
	logger *logger.Logger
}

func NewHandshakeRepository(db *DB, logger *logger.Logger) HandshakeRepository {
	logger.Debug().Msg("creating postgres handshake repository")
	return &handshakeRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *handshakeRepository) CreateHandshake(ctx context.Context, handshake models.Handshake) (models.Handshake, error) {
	log := logger.FromContext(ctx)

	err := h.DB.QueryRowContext(ctx, createHandshake, handshake.SenderID, handshake.ExpiresAt).Scan(&handshake.ID)
	if err != nil {
		log.Err(err).Str("func", "handshakeRepository.CreateHandshake").Str("sender_id", handshake.SenderID).Msg("failed to insert handshake")
		if mapped := mapPostgresError(err, ErrUserNotFound); mapped != nil {
			return models.Handshake{}, mapped
		}
		return models.Handshake{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return handshake, nil
}

func (h *handshakeRepository) FindHandshakeByID(ctx context.Context, handshakeID string) (models.Handshake, error) {
	log := logger.FromContext(ctx)

	var handshake models.Handshake
	err := h.DB.withRetry(ctx, func() error {
		return h.DB.QueryRowContext(ctx, findHandshakeByID, handshakeID).
			Scan(&handshake.ID, &handshake.SenderID, &handshake.ExpiresAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Handshake{}, ErrHandshakeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "handshakeRepository.FindHandshakeByID").Str("handshake_id", handshakeID).Msg("failed to find handshake")
		if mapped := mapPostgresError(err, ErrHandshakeNotFound); mapped != nil {
			return models.Handshake{}, mapped
		}
		return models.Handshake{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return handshake, nil
}

func (h *handshakeRepository) DeleteHandshake(ctx context.Context, handshakeID string) error {
	log := logger.FromContext(ctx)

	err := h.DB.withRetry(ctx, func() error {
		_, err := h.DB.ExecContext(ctx, deleteHandshake, handshakeID)
		return err
	})
	if err != nil {
		if mapped := mapPostgresError(err, ErrHandshakeNotFound); errors.Is(mapped, ErrHandshakeNotFound) {
			return nil
		}
		log.Err(err).Str("func", "handshakeRepository.DeleteHandshake").Str("handshake_id", handshakeID).Msg("failed to delete handshake")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (h *handshakeRepository) DeleteExpiredHandshakes(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := h.DB.ExecContext(ctx, deleteExpiredHandshakes)
	if err != nil {
		log.Err(err).Str("func", "handshakeRepository.DeleteExpiredHandshakes").Msg("failed to delete expired handshakes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
