package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/models"
)

var (
	ErrCircleNotOwned      = fmt.Errorf("%w: not the owner of the circle", models.ErrUnauthorized)
	ErrRenameDefaultCircle = fmt.Errorf("%w: can't rename default circle", models.ErrInvalidOperation)
	ErrDeleteDefaultCircle = fmt.Errorf("%w: can't delete default circle", models.ErrInvalidOperation)

	ErrHandshakeExpiredOrInvalid = fmt.Errorf("handshake %w", models.ErrExpiredOrInvalid)
	ErrHandshakeNotOwned         = fmt.Errorf("%w: not the owner of the handshake", models.ErrUnauthorized)
	ErrOwnHandshake              = fmt.Errorf("%w: can't accept own handshake", models.ErrInvalidOperation)

	ErrRequesterNotInCircles = fmt.Errorf("%w: requester does not exist in circles from target", models.ErrUnauthorized)
	ErrNotAccountOwner       = fmt.Errorf("%w: not the owner of the account", models.ErrUnauthorized)
	ErrPrimaryEmailImmutable = fmt.Errorf("%w: email1 cannot be updated", models.ErrInvalidOperation)

	ErrWrongCredentials        = fmt.Errorf("%w: wrong email or password", models.ErrUnauthorized)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", models.ErrUnauthorized)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
