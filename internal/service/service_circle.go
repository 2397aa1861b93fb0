// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// circleService is the concrete implementation of CircleService.
//
// All access control on existing circles goes through checkCircleAndOwner.
// Membership is changed with the repository's atomic set operations, so
// concurrent adds and removes on one circle do not overwrite each other.
type circleService struct {
	circleRepository store.CircleRepository
	validator        validators.Validator

	logger *logger.Logger
}

// NewCircleService constructs a CircleService backed by circleRepository.
func NewCircleService(circleRepository store.CircleRepository, validator validators.Validator, logger *logger.Logger) CircleService {
	return &circleService{
		circleRepository: circleRepository,
		validator:        validator,
		logger:           logger,
	}
}

// CreateDefaultCircle creates the owner's default circle. A second default
// circle for the same owner is rejected by the store with a constraint
// violation.
func (s *circleService) CreateDefaultCircle(ctx context.Context, ownerID string) (models.Circle, error) {
	log := logger.FromContext(ctx)

	circle, err := s.circleRepository.CreateCircle(ctx, models.NewDefaultCircle(ownerID))
	if err != nil {
		log.Err(err).Str("func", "circleService.CreateDefaultCircle").Str("owner_id", ownerID).Msg("default circle creation failed")
		return models.Circle{}, fmt.Errorf("default circle creation failed: %w", err)
	}

	return circle, nil
}

func (s *circleService) CreateCustomCircle(ctx context.Context, ownerID, name string) (models.Circle, error) {
	log := logger.FromContext(ctx)

	request := models.CircleNameRequest{Name: name}
	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "circleService.CreateCustomCircle").Msg("invalid circle name")
		return models.Circle{}, err
	}

	circle, err := s.circleRepository.CreateCircle(ctx, models.NewCustomCircle(ownerID, strings.TrimSpace(name)))
	if err != nil {
		log.Err(err).Str("func", "circleService.CreateCustomCircle").Str("owner_id", ownerID).Msg("circle creation failed")
		return models.Circle{}, fmt.Errorf("circle creation failed: %w", err)
	}

	return circle, nil
}

// GetDefaultCircle never creates a missing default circle: it fails with
// store.ErrDefaultCircleNotFound instead.
func (s *circleService) GetDefaultCircle(ctx context.Context, ownerID string) (models.Circle, error) {
	circle, err := s.circleRepository.FindDefaultCircle(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "circleService.GetDefaultCircle").
			Str("owner_id", ownerID).
			Msg("default circle lookup failed")
		return models.Circle{}, fmt.Errorf("default circle lookup failed: %w", err)
	}

	return circle, nil
}

func (s *circleService) HasContact(ctx context.Context, circleID, ownerID, contactID string) (bool, error) {
	circle, err := s.checkCircleAndOwner(ctx, circleID, ownerID)
	if err != nil {
		return false, err
	}

	return circle.HasContact(contactID), nil
}

// AddContact is idempotent: an existing member is reported back without
// touching the store.
func (s *circleService) AddContact(ctx context.Context, circleID, ownerID, contactID string) (models.Circle, error) {
	circle, err := s.checkCircleAndOwner(ctx, circleID, ownerID)
	if err != nil {
		return models.Circle{}, err
	}

	if circle.HasContact(contactID) {
		return circle, nil
	}

	if err = s.circleRepository.AddContact(ctx, circleID, contactID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "circleService.AddContact").
			Str("circle_id", circleID).
			Str("contact_id", contactID).
			Msg("adding contact failed")
		return models.Circle{}, fmt.Errorf("adding contact failed: %w", err)
	}

	circle.Contacts = append(circle.Contacts, contactID)
	return circle, nil
}

func (s *circleService) RemoveContact(ctx context.Context, circleID, ownerID, contactID string) (models.Circle, error) {
	circle, err := s.checkCircleAndOwner(ctx, circleID, ownerID)
	if err != nil {
		return models.Circle{}, err
	}

	if err = s.circleRepository.RemoveContact(ctx, circleID, contactID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "circleService.RemoveContact").
			Str("circle_id", circleID).
			Str("contact_id", contactID).
			Msg("removing contact failed")
		return models.Circle{}, fmt.Errorf("removing contact failed: %w", err)
	}

	circle.Contacts = slices.DeleteFunc(circle.Contacts, func(id string) bool { return id == contactID })
	return circle, nil
}

// UpdateAllowedInfo merges partial over the stored policy: fields missing
// from partial keep their value.
func (s *circleService) UpdateAllowedInfo(ctx context.Context, circleID, ownerID string, partial models.AllowedInfo) (models.Circle, error) {
	log := logger.FromContext(ctx)

	circle, err := s.checkCircleAndOwner(ctx, circleID, ownerID)
	if err != nil {
		return models.Circle{}, err
	}

	if err = s.validator.Validate(ctx, partial); err != nil {
		log.Err(err).Str("func", "circleService.UpdateAllowedInfo").Msg("invalid allowed info")
		return models.Circle{}, err
	}

	merged, err := s.circleRepository.MergeAllowedInfo(ctx, circleID, partial)
	if err != nil {
		log.Err(err).Str("func", "circleService.UpdateAllowedInfo").Str("circle_id", circleID).Msg("allowed info update failed")
		return models.Circle{}, fmt.Errorf("allowed info update failed: %w", err)
	}

	circle.AllowedInfo = merged
	return circle, nil
}

func (s *circleService) UpdateName(ctx context.Context, circleID, ownerID, name string) (models.Circle, error) {
	log := logger.FromContext(ctx)

	circle, err := s.checkCircleAndOwner(ctx, circleID, ownerID)
	if err != nil {
		return models.Circle{}, err
	}

	if circle.IsDefault() {
		log.Warn().Str("func", "circleService.UpdateName").Str("circle_id", circleID).Msg("attempt to rename default circle")
		return models.Circle{}, ErrRenameDefaultCircle
	}

	if err = s.validator.Validate(ctx, models.CircleNameRequest{Name: name}); err != nil {
		log.Err(err).Str("func", "circleService.UpdateName").Msg("invalid circle name")
		return models.Circle{}, err
	}

	name = strings.TrimSpace(name)
	if err = s.circleRepository.UpdateCircleName(ctx, circleID, name); err != nil {
		log.Err(err).Str("func", "circleService.UpdateName").Str("circle_id", circleID).Msg("circle rename failed")
		return models.Circle{}, fmt.Errorf("circle rename failed: %w", err)
	}

	circle.Name = name
	return circle, nil
}

func (s *circleService) DeleteCircle(ctx context.Context, circleID, ownerID string) error {
	log := logger.FromContext(ctx)

	circle, err := s.checkCircleAndOwner(ctx, circleID, ownerID)
	if err != nil {
		return err
	}

	if circle.IsDefault() {
		log.Warn().Str("func", "circleService.DeleteCircle").Str("circle_id", circleID).Msg("attempt to delete default circle")
		return ErrDeleteDefaultCircle
	}

	if err = s.circleRepository.DeleteCircle(ctx, circleID); err != nil {
		log.Err(err).Str("func", "circleService.DeleteCircle").Str("circle_id", circleID).Msg("circle deletion failed")
		return fmt.Errorf("circle deletion failed: %w", err)
	}

	return nil
}

// checkCircleAndOwner resolves the circle and verifies ownership. Lookup
// failures are returned first, so a foreign id that does not exist is
// reported as not found rather than unauthorized.
func (s *circleService) checkCircleAndOwner(ctx context.Context, circleID, ownerID string) (models.Circle, error) {
	log := logger.FromContext(ctx)

	circle, err := s.circleRepository.FindCircleByID(ctx, circleID)
	if err != nil {
		log.Err(err).Str("func", "circleService.checkCircleAndOwner").Str("circle_id", circleID).Msg("circle lookup failed")
		return models.Circle{}, fmt.Errorf("circle lookup failed: %w", err)
	}

	if circle.OwnerID != ownerID {
		log.Warn().
			Str("func", "circleService.checkCircleAndOwner").
			Str("circle_id", circleID).
			Str("owner_id", ownerID).
			Msg("caller does not own the circle")
		return models.Circle{}, ErrCircleNotOwned
	}

	return circle, nil
}
