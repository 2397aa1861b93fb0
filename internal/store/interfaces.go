package store

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user and returns it with ID and timestamps set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns the user without its password hash.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindUserByEmail returns the user, including the password hash, whose
	// primary e-mail equals email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUser applies the non-empty changes and returns the updated user.
	UpdateUser(ctx context.Context, userID string, changes map[models.ProfileField]string) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// CircleRepository persists circles, their membership and their policies.
//
// Membership changes are single-statement set operations, so concurrent
// adds and removes on the same circle never lose each other's writes.
type CircleRepository interface {
	CreateCircle(ctx context.Context, circle models.Circle) (models.Circle, error)
	FindCircleByID(ctx context.Context, circleID string) (models.Circle, error)
	FindDefaultCircle(ctx context.Context, ownerID string) (models.Circle, error)
	// FindCirclesWithContact returns the circles of ownerID having contactID
	// as a member.
	FindCirclesWithContact(ctx context.Context, ownerID, contactID string) ([]models.Circle, error)
	// AddContact adds contactID to the circle. Adding an existing member is
	// a no-op.
	AddContact(ctx context.Context, circleID, contactID string) error
	// RemoveContact removes contactID from the circle. Removing a
	// non-member is a no-op.
	RemoveContact(ctx context.Context, circleID, contactID string) error
	// MergeAllowedInfo applies partial on top of the stored policy and
	// returns the merged result.
	MergeAllowedInfo(ctx context.Context, circleID string, partial models.AllowedInfo) (models.AllowedInfo, error)
	UpdateCircleName(ctx context.Context, circleID, name string) error
	DeleteCircle(ctx context.Context, circleID string) error
}

// HandshakeRepository persists short-lived handshakes. Implementations
// must never return a handshake whose ExpiresAt has passed.
type HandshakeRepository interface {
	CreateHandshake(ctx context.Context, handshake models.Handshake) (models.Handshake, error)
	FindHandshakeByID(ctx context.Context, handshakeID string) (models.Handshake, error)
	// DeleteHandshake removes the handshake. Deleting a missing handshake
	// is not an error.
	DeleteHandshake(ctx context.Context, handshakeID string) error
	// DeleteExpiredHandshakes purges expired handshakes and reports how many
	// were removed. Stores with native expiry return 0.
	DeleteExpiredHandshakes(ctx context.Context) (int64, error)
}
