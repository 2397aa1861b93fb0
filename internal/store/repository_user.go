package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, partial update and deletion against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (ID, CreatedAt, UpdatedAt) populated.
//
// Error handling:
//   - unique violation on e-mail or phone → [ErrEmailAlreadyExists] / [ErrPhoneAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	// create user in db
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if mapped := mapPostgresError(err, ErrUserNotFound); mapped != nil {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// FindUserByID returns the profile of the user with the given id.
// The password hash is never selected.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID}, false, "*userRepository.FindUserByID")
}

// FindUserByEmail returns the user whose primary e-mail equals email,
// including the password hash needed to verify credentials.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email1": email}, true, "*userRepository.FindUserByEmail")
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq, withPassword bool, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(where, withPassword)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		dest := userScanDest(&user)
		if withPassword {
			dest = append(dest, &user.PasswordHash)
		}
		return row.Scan(dest...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		if mapped := mapPostgresError(err, ErrUserNotFound); mapped != nil {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUser applies changes to the user's profile and returns the
// updated record. An empty change set only refreshes updated_at.
func (r *userRepository) UpdateUser(ctx context.Context, userID string, changes map[models.ProfileField]string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, changes)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(userScanDest(&user)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("error updating user")
		if mapped := mapPostgresError(err, ErrUserNotFound); mapped != nil {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user. Owned circles and their memberships are
// removed by the cascading foreign keys.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, deleteUser, userID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		if mapped := mapPostgresError(err, ErrUserNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func userScanDest(u *models.User) []any {
	return []any{
		&u.ID,
		&u.Name,
		&u.Surname1,
		&u.Surname2,
		&u.Email1,
		&u.Email2,
		&u.Phone1,
		&u.Phone2,
		&u.Country,
		&u.Address,
		&u.Link1,
		&u.Link2,
		&u.Avatar,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}
