// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// circleRepository is the PostgreSQL-backed implementation of
// [CircleRepository]. Circle rows live in "circles", membership in
// "circle_contacts" keyed by (circle_id, contact_id).
type circleRepository struct {
	*DB
	logger *logger.Logger
}

// NewCircleRepository constructs a [CircleRepository] backed by the
// provided database connection and logger.
func NewCircleRepository(db *DB, logger *logger.Logger) CircleRepository {
	logger.Debug().Msg("creating circle repository")
	return &circleRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCircle inserts circle and returns it with ID and timestamps set.
// A second default circle for the same owner yields [ErrDefaultCircleExists].
func (c *circleRepository) CreateCircle(ctx context.Context, circle models.Circle) (models.Circle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCircleQuery(circle)
	if err != nil {
		log.Err(err).Str("func", "circleRepository.CreateCircle").Msg("failed to build query")
		return models.Circle{}, err
	}

	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&circle.ID, &circle.CreatedAt, &circle.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "circleRepository.CreateCircle").
			Str("owner_id", circle.OwnerID).
			Str("circle_type", string(circle.Type)).
			Msg("failed to insert circle")
		if mapped := mapPostgresError(err, ErrOwnerNotFound); mapped != nil {
			return models.Circle{}, mapped
		}
		return models.Circle{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if circle.Contacts == nil {
		circle.Contacts = []string{}
	}
	return circle, nil
}

// FindCircleByID returns the circle with its members.
func (c *circleRepository) FindCircleByID(ctx context.Context, circleID string) (models.Circle, error) {
	query, args, err := buildSelectCirclesQuery(sq.Eq{"c.id": circleID})
	if err != nil {
		return models.Circle{}, err
	}

	circles, err := c.selectCircles(ctx, query, args, ErrCircleNotFound)
	if err != nil {
		return models.Circle{}, err
	}
	if len(circles) == 0 {
		return models.Circle{}, ErrCircleNotFound
	}

	return circles[0], nil
}

// FindDefaultCircle returns the owner's default circle with its members.
func (c *circleRepository) FindDefaultCircle(ctx context.Context, ownerID string) (models.Circle, error) {
	query, args, err := buildSelectCirclesQuery(sq.Eq{
		"c.owner_id":    ownerID,
		"c.circle_type": string(models.CircleTypeDefault),
	})
	if err != nil {
		return models.Circle{}, err
	}

	circles, err := c.selectCircles(ctx, query, args, ErrDefaultCircleNotFound)
	if err != nil {
		return models.Circle{}, err
	}
	if len(circles) == 0 {
		return models.Circle{}, ErrDefaultCircleNotFound
	}

	return circles[0], nil
}

// FindCirclesWithContact returns every circle of ownerID that has contactID
// as a member. A malformed or empty identifier yields an empty result.
func (c *circleRepository) FindCirclesWithContact(ctx context.Context, ownerID, contactID string) ([]models.Circle, error) {
	if contactID == "" {
		return []models.Circle{}, nil
	}

	query, args, err := buildSelectCirclesWithContactQuery(ownerID, contactID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "circleRepository.FindCirclesWithContact").Msg("failed to build query")
		return nil, err
	}

	circles, err := c.selectCircles(ctx, query, args, ErrCircleNotFound)
	if errors.Is(err, ErrCircleNotFound) {
		return []models.Circle{}, nil
	}

	return circles, err
}

func (c *circleRepository) selectCircles(ctx context.Context, query string, args []any, notFound error) ([]models.Circle, error) {
	log := logger.FromContext(ctx)

	var circles []models.Circle
	err := c.DB.withRetry(ctx, func() error {
		var queryErr error
		circles, queryErr = c.queryCircles(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "circleRepository.selectCircles").Msg("failed to select circles")
		if mapped := mapPostgresError(err, notFound); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}

	if err = c.loadContacts(ctx, circles); err != nil {
		return nil, err
	}

	return circles, nil
}

func (c *circleRepository) queryCircles(ctx context.Context, query string, args []any) ([]models.Circle, error) {
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	circles := make([]models.Circle, 0, 4)
	for rows.Next() {
		var circle models.Circle
		if err = rows.Scan(
			&circle.ID,
			&circle.OwnerID,
			&circle.Type,
			&circle.Name,
			&circle.AllowedInfo,
			&circle.CreatedAt,
			&circle.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		circle.Contacts = []string{}
		circles = append(circles, circle)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return circles, nil
}

// loadContacts fills the Contacts of every circle with one query.
func (c *circleRepository) loadContacts(ctx context.Context, circles []models.Circle) error {
	if len(circles) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	index := make(map[string]int, len(circles))
	ids := make([]string, 0, len(circles))
	for i, circle := range circles {
		index[circle.ID] = i
		ids = append(ids, circle.ID)
	}

	query, args, err := buildSelectContactsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "circleRepository.loadContacts").Msg("failed to build query")
		return err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "circleRepository.loadContacts").Msg("failed to select circle contacts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var circleID, contactID string
		if err = rows.Scan(&circleID, &contactID); err != nil {
			log.Err(err).Str("func", "circleRepository.loadContacts").Msg("failed to scan circle contact")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[circleID]; ok {
			circles[i].Contacts = append(circles[i].Contacts, contactID)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "circleRepository.loadContacts").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// AddContact inserts the membership row; an existing membership is kept
// as is.
func (c *circleRepository) AddContact(ctx context.Context, circleID, contactID string) error {
	log := logger.FromContext(ctx)

	err := c.DB.withRetry(ctx, func() error {
		_, err := c.DB.ExecContext(ctx, addCircleContact, circleID, contactID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "circleRepository.AddContact").
			Str("circle_id", circleID).
			Str("contact_id", contactID).
			Msg("failed to add contact")
		if mapped := mapPostgresError(err, ErrContactNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveContact deletes the membership row if present. A contact id that is
// not a valid uuid can never be a member, so it is a no-op as well.
func (c *circleRepository) RemoveContact(ctx context.Context, circleID, contactID string) error {
	log := logger.FromContext(ctx)

	err := c.DB.withRetry(ctx, func() error {
		_, err := c.DB.ExecContext(ctx, removeCircleContact, circleID, contactID)
		return err
	})
	if code, _ := postgresError(err); code == pgerrcode.InvalidTextRepresentation {
		return nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "circleRepository.RemoveContact").
			Str("circle_id", circleID).
			Str("contact_id", contactID).
			Msg("failed to remove contact")
		if mapped := mapPostgresError(err, ErrCircleNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// MergeAllowedInfo overlays partial on the stored policy with a single
// jsonb concatenation and returns the resulting policy.
func (c *circleRepository) MergeAllowedInfo(ctx context.Context, circleID string, partial models.AllowedInfo) (models.AllowedInfo, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(partial)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	merged := models.AllowedInfo{}
	err = c.DB.withRetry(ctx, func() error {
		return c.DB.QueryRowContext(ctx, mergeCircleAllowedInfo, string(payload), circleID).Scan(&merged)
	})
	if err != nil {
		log.Err(err).Str("func", "circleRepository.MergeAllowedInfo").Str("circle_id", circleID).Msg("failed to merge allowed info")
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCircleNotFound
		}
		if mapped := mapPostgresError(err, ErrCircleNotFound); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return merged, nil
}

// UpdateCircleName renames the circle.
func (c *circleRepository) UpdateCircleName(ctx context.Context, circleID, name string) error {
	return c.execAffectingOne(ctx, "circleRepository.UpdateCircleName", updateCircleName, name, circleID)
}

// DeleteCircle removes the circle together with its memberships.
func (c *circleRepository) DeleteCircle(ctx context.Context, circleID string) error {
	return c.execAffectingOne(ctx, "circleRepository.DeleteCircle", deleteCircle, circleID)
}

func (c *circleRepository) execAffectingOne(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		if mapped := mapPostgresError(err, ErrCircleNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCircleNotFound
	}

	return nil
}
