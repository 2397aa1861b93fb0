package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes kept by the UserRepository
// and manages the JWT token lifecycle.
type authService struct {
	// userRepository is used to look up users by e-mail.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a user by primary e-mail and password.
//
// Returns the user without its password hash, or:
//   - a validation error if either credential is empty;
//   - ErrWrongCredentials if no account has that e-mail or the password does
//     not match, so callers cannot tell which one was wrong.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("invalid credentials provided")
		return models.User{}, err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		log.Warn().Str("func", "authService.Login").Str("email", email).Msg("unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, request.Password); err != nil {
		log.Warn().Str("func", "authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// CreateToken issues a signed JWT whose subject is the user id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
