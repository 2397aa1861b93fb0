package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// userService is the concrete implementation of UserService.
//
// It owns the account lifecycle and decides which profile fields a user may
// see of another one.
type userService struct {
	userRepository   store.UserRepository
	circleRepository store.CircleRepository
	circleService    CircleService
	validator        validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService. Registration creates the default
// circle through circleService; profile projection reads circles straight
// from circleRepository.
func NewUserService(userRepository store.UserRepository, circleRepository store.CircleRepository, circleService CircleService, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		circleRepository: circleRepository,
		circleService:    circleService,
		validator:        validator,
		logger:           logger,
	}
}

// RegisterUser validates and normalizes the profile, hashes the password,
// stores the account and creates its default circle.
//
// If the default circle cannot be created the account is deleted again, so
// a registered user always has exactly one default circle.
func (u *userService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "userService.RegisterUser").Msg("invalid registration data")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "userService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := u.userRepository.CreateUser(ctx, models.User{
		Profile:      request.Profile.Normalize(),
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("func", "userService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if _, err = u.circleService.CreateDefaultCircle(ctx, user.ID); err != nil {
		if deleteErr := u.userRepository.DeleteUser(ctx, user.ID); deleteErr != nil {
			log.Err(deleteErr).Str("func", "userService.RegisterUser").Str("user_id", user.ID).Msg("removing half-registered user failed")
		}
		return models.User{}, fmt.Errorf("user registration failed: %w", err)
	}

	return user, nil
}

func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUser").Str("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ShowUserInfo returns the part of target's profile that requester may see.
//
// A user sees every defined field of their own profile. Anyone else must be
// a contact in at least one of target's circles; the policies of all such
// circles are united and only visible, defined fields are returned.
func (u *userService) ShowUserInfo(ctx context.Context, requesterID, targetID string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	target, err := u.GetUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if requesterID == targetID {
		return target.Info(), nil
	}
	if requesterID == "" {
		return nil, ErrRequesterNotInCircles
	}

	circles, err := u.circleRepository.FindCirclesWithContact(ctx, targetID, requesterID)
	if err != nil {
		log.Err(err).Str("func", "userService.ShowUserInfo").Str("target_id", targetID).Msg("circle lookup failed")
		return nil, fmt.Errorf("circle lookup failed: %w", err)
	}
	if len(circles) == 0 {
		log.Warn().
			Str("func", "userService.ShowUserInfo").
			Str("requester_id", requesterID).
			Str("target_id", targetID).
			Msg("requester is not a contact of target")
		return nil, ErrRequesterNotInCircles
	}

	policy := models.AllowedInfo{}
	for _, circle := range circles {
		policy = policy.Union(circle.AllowedInfo)
	}

	info := make(models.UserInfo)
	for _, field := range policy.Visible() {
		if value := target.Field(field); strings.TrimSpace(value) != "" {
			info[field] = value
		}
	}

	return info, nil
}

// UpdateUser applies a partial profile update. Only the account owner may
// update it, and the primary e-mail can never change.
func (u *userService) UpdateUser(ctx context.Context, authUserID, targetUserID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if authUserID != targetUserID {
		log.Warn().Str("func", "userService.UpdateUser").Str("user_id", authUserID).Str("target_id", targetUserID).Msg("update of foreign account")
		return models.User{}, ErrNotAccountOwner
	}
	if update.TouchesEmail1() {
		return models.User{}, ErrPrimaryEmailImmutable
	}

	if err := u.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Msg("invalid profile update")
		return models.User{}, err
	}

	user, err := u.userRepository.UpdateUser(ctx, targetUserID, update.Changes())
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Str("user_id", targetUserID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

// DeleteUser removes the account together with its circles and its
// memberships in other users' circles. Pending handshakes are removed with it
// when they live in Postgres; in Redis they stay until their TTL expires.
func (u *userService) DeleteUser(ctx context.Context, authUserID, targetUserID string) error {
	log := logger.FromContext(ctx)

	if authUserID != targetUserID {
		log.Warn().Str("func", "userService.DeleteUser").Str("user_id", authUserID).Str("target_id", targetUserID).Msg("deletion of foreign account")
		return ErrNotAccountOwner
	}

	if err := u.userRepository.DeleteUser(ctx, targetUserID); err != nil {
		log.Err(err).Str("func", "userService.DeleteUser").Str("user_id", targetUserID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
