package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Each wraps one of the [models] error kinds so callers can
// classify them with [errors.Is] without importing this package.
var (
	// ErrUserNotFound is returned when no user row matches the identifier
	// or the e-mail address.
	ErrUserNotFound = fmt.Errorf("user %w", models.ErrNotFound)

	// ErrEmailAlreadyExists is returned when the primary or secondary e-mail
	// is already used by another account.
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", models.ErrConstraintViolation)

	// ErrPhoneAlreadyExists is returned when a phone number is already used
	// by another account.
	ErrPhoneAlreadyExists = fmt.Errorf("%w: phone already exists", models.ErrConstraintViolation)

	// ErrCircleNotFound is returned when no circle matches the identifier.
	ErrCircleNotFound = fmt.Errorf("circle %w", models.ErrNotFound)

	// ErrDefaultCircleNotFound is returned when the user has no default
	// circle.
	ErrDefaultCircleNotFound = fmt.Errorf("default circle %w", models.ErrNotFound)

	// ErrDefaultCircleExists is returned by a second attempt to create a
	// default circle for the same owner.
	ErrDefaultCircleExists = fmt.Errorf("%w: default circle already exists", models.ErrConstraintViolation)

	// ErrCircleConstraint is returned when a circle row breaks one of the
	// table's check constraints (blank name, renamed default circle).
	ErrCircleConstraint = fmt.Errorf("%w: circle check failed", models.ErrConstraintViolation)

	// ErrOwnerNotFound is returned when a circle references a user that
	// does not exist.
	ErrOwnerNotFound = fmt.Errorf("circle owner %w", models.ErrNotFound)

	// ErrContactNotFound is returned when a circle member references a user
	// that does not exist.
	ErrContactNotFound = fmt.Errorf("contact %w", models.ErrNotFound)

	// ErrEmptyContactID is returned when a membership lookup is asked for
	// an empty contact id.
	ErrEmptyContactID = fmt.Errorf("%w: empty contact id", models.ErrValidation)

	// ErrHandshakeNotFound is returned when a handshake does not exist or
	// has already expired.
	ErrHandshakeNotFound = fmt.Errorf("handshake %w", models.ErrNotFound)
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue is returned when a value cannot be serialized for
	// storage (e.g. a handshake kept in Redis).
	ErrEncodingValue = errors.New("failed to encode value")
)
