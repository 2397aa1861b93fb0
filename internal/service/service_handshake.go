package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// handshakeService is the concrete implementation of HandshakeService.
//
// Handshakes expire in the store: a handshake past its expiry is simply not
// found, and not found is the only signal this service relies on.
type handshakeService struct {
	handshakeRepository store.HandshakeRepository
	circleService       CircleService

	// ttl is added to the creation time to get the expiry.
	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

// NewHandshakeService constructs a HandshakeService. Accepted handshakes
// link users through circleService.
func NewHandshakeService(handshakeRepository store.HandshakeRepository, circleService CircleService, cfg config.App, logger *logger.Logger) HandshakeService {
	return &handshakeService{
		handshakeRepository: handshakeRepository,
		circleService:       circleService,
		ttl:                 cfg.HandshakeTTL,
		now:                 time.Now,
		logger:              logger,
	}
}

func (s *handshakeService) CreateHandshake(ctx context.Context, senderID string) (models.Handshake, error) {
	handshake, err := s.handshakeRepository.CreateHandshake(ctx, models.Handshake{
		SenderID:  senderID,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "handshakeService.CreateHandshake").
			Str("sender_id", senderID).
			Msg("handshake creation failed")
		return models.Handshake{}, fmt.Errorf("handshake creation failed: %w", err)
	}

	return handshake, nil
}

// AcceptHandshake makes the sender and the receiver contacts of each other's
// default circle, then consumes the handshake.
//
// Neither default circle is created here. Both additions are attempted even
// if one fails; on any failure the handshake is kept so that acceptance can
// be retried, and additions that already succeeded are not rolled back.
func (s *handshakeService) AcceptHandshake(ctx context.Context, handshakeID, receiverID string) error {
	log := logger.FromContext(ctx)

	handshake, err := s.findHandshake(ctx, handshakeID)
	if err != nil {
		return err
	}

	if handshake.SenderID == receiverID {
		log.Warn().Str("func", "handshakeService.AcceptHandshake").Str("handshake_id", handshakeID).Msg("sender tried to accept own handshake")
		return ErrOwnHandshake
	}

	senderCircle, err := s.circleService.GetDefaultCircle(ctx, handshake.SenderID)
	if err != nil {
		return fmt.Errorf("sender circle: %w", err)
	}
	receiverCircle, err := s.circleService.GetDefaultCircle(ctx, receiverID)
	if err != nil {
		return fmt.Errorf("receiver circle: %w", err)
	}

	_, senderErr := s.circleService.AddContact(ctx, receiverCircle.ID, receiverID, handshake.SenderID)
	_, receiverErr := s.circleService.AddContact(ctx, senderCircle.ID, handshake.SenderID, receiverID)
	if err = errors.Join(senderErr, receiverErr); err != nil {
		log.Err(err).
			Str("func", "handshakeService.AcceptHandshake").
			Str("handshake_id", handshakeID).
			Msg("linking contacts failed, handshake kept")
		return fmt.Errorf("linking contacts failed: %w", err)
	}

	if err = s.handshakeRepository.DeleteHandshake(ctx, handshakeID); err != nil {
		log.Err(err).Str("func", "handshakeService.AcceptHandshake").Str("handshake_id", handshakeID).Msg("handshake deletion failed")
		return fmt.Errorf("handshake deletion failed: %w", err)
	}

	return nil
}

func (s *handshakeService) DeleteHandshake(ctx context.Context, senderID, handshakeID string) error {
	log := logger.FromContext(ctx)

	handshake, err := s.findHandshake(ctx, handshakeID)
	if err != nil {
		return err
	}

	if handshake.SenderID != senderID {
		log.Warn().
			Str("func", "handshakeService.DeleteHandshake").
			Str("handshake_id", handshakeID).
			Str("sender_id", senderID).
			Msg("caller is not the sender of the handshake")
		return ErrHandshakeNotOwned
	}

	if err = s.handshakeRepository.DeleteHandshake(ctx, handshakeID); err != nil {
		log.Err(err).Str("func", "handshakeService.DeleteHandshake").Str("handshake_id", handshakeID).Msg("handshake deletion failed")
		return fmt.Errorf("handshake deletion failed: %w", err)
	}

	return nil
}

// findHandshake reports a missing handshake as ErrHandshakeExpiredOrInvalid:
// one that never existed and one that expired look the same.
func (s *handshakeService) findHandshake(ctx context.Context, handshakeID string) (models.Handshake, error) {
	handshake, err := s.handshakeRepository.FindHandshakeByID(ctx, handshakeID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Handshake{}, ErrHandshakeExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "handshakeService.findHandshake").
			Str("handshake_id", handshakeID).
			Msg("handshake lookup failed")
		return models.Handshake{}, fmt.Errorf("handshake lookup failed: %w", err)
	}

	return handshake, nil
}
