package service

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CircleService manages circles and their membership.
//
// Every operation on an existing circle first resolves it and checks that
// ownerID owns it: a missing circle fails with models.ErrNotFound, a foreign
// one with models.ErrUnauthorized.
type CircleService interface {
	CreateDefaultCircle(ctx context.Context, ownerID string) (models.Circle, error)
	CreateCustomCircle(ctx context.Context, ownerID, name string) (models.Circle, error)
	GetDefaultCircle(ctx context.Context, ownerID string) (models.Circle, error)

	HasContact(ctx context.Context, circleID, ownerID, contactID string) (bool, error)
	AddContact(ctx context.Context, circleID, ownerID, contactID string) (models.Circle, error)
	RemoveContact(ctx context.Context, circleID, ownerID, contactID string) (models.Circle, error)

	UpdateAllowedInfo(ctx context.Context, circleID, ownerID string, partial models.AllowedInfo) (models.Circle, error)
	UpdateName(ctx context.Context, circleID, ownerID, name string) (models.Circle, error)
	DeleteCircle(ctx context.Context, circleID, ownerID string) error
}

// HandshakeService links two users as mutual contacts through short-lived
// invitations.
type HandshakeService interface {
	CreateHandshake(ctx context.Context, senderID string) (models.Handshake, error)
	// AcceptHandshake makes the sender and receiverID mutual contacts and
	// consumes the handshake. A sender accepting its own handshake gets
	// ErrOwnHandshake (InvalidOperation).
	AcceptHandshake(ctx context.Context, handshakeID, receiverID string) error
	DeleteHandshake(ctx context.Context, senderID, handshakeID string) error
}

// UserService manages accounts and projects profiles to other users.
type UserService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	ShowUserInfo(ctx context.Context, requesterID, targetID string) (models.UserInfo, error)
	UpdateUser(ctx context.Context, authUserID, targetUserID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, authUserID, targetUserID string) error
}

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
