package validators

import (
	"fmt"

	"github.com/MKhiriev/go-contacts/models"
)

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", models.ErrValidation)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", models.ErrValidation)

	ErrEmptyName        = fmt.Errorf("%w: name is required", models.ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email is required", models.ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email address", models.ErrValidation)
	ErrInvalidPhone     = fmt.Errorf("%w: invalid phone number", models.ErrValidation)
	ErrInvalidLink      = fmt.Errorf("%w: invalid link", models.ErrValidation)
	ErrFieldTooLong     = fmt.Errorf("%w: field is too long", models.ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password is too short", models.ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password is required", models.ErrValidation)
	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", models.ErrValidation)
	ErrEmptyCircleName  = fmt.Errorf("%w: circle name is required", models.ErrValidation)
	ErrEmptyAllowedInfo = fmt.Errorf("%w: allowed info cannot be empty", models.ErrValidation)
	ErrUnknownInfoField = fmt.Errorf("%w: unknown profile field", models.ErrValidation)
)
