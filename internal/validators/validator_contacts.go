package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-contacts/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldName targets the display name of a profile.
	FieldName = "name"

	// FieldEmail targets the primary e-mail address (registration, login).
	FieldEmail = "email"

	// FieldSecondaryEmail targets the optional secondary e-mail address.
	FieldSecondaryEmail = "email2"

	// FieldPhones targets both phone numbers.
	FieldPhones = "phones"

	// FieldLinks targets the link and avatar URLs.
	FieldLinks = "links"

	// FieldLength enforces the maximum length of every text field.
	FieldLength = "length"

	// FieldPassword targets the plain-text password.
	FieldPassword = "password"

	// FieldChanges requires a partial update to carry at least one field.
	FieldChanges = "changes"

	// FieldCircleName targets the name of a circle.
	FieldCircleName = "circle_name"

	// FieldAllowedInfo targets the keys of an allowed-info policy.
	FieldAllowedInfo = "allowed_info"
)

// maxFieldLength bounds every free-text profile field and circle names.
const maxFieldLength = 255

// ContactsValidator implements [Validator] for the request models of the
// contacts API. Both value and pointer forms are accepted.
type ContactsValidator struct {
	passwordMinLength int
}

// NewContactsValidator returns a Validator that requires passwords of at
// least passwordMinLength characters.
func NewContactsValidator(passwordMinLength int) Validator {
	return &ContactsValidator{passwordMinLength: passwordMinLength}
}

// Validate dispatches to the type-specific rules for obj.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.UserUpdate / *models.UserUpdate
//   - models.CircleNameRequest / *models.CircleNameRequest
//   - models.AllowedInfo
//
// Returns ErrUnsupportedType for anything else.
func (v *ContactsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)
	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)
	case models.CircleNameRequest:
		return v.validateCircleName(ctx, value, fields...)
	case *models.CircleNameRequest:
		return v.validateCircleName(ctx, *value, fields...)
	case models.AllowedInfo:
		return v.validateAllowedInfo(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContactsValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldSecondaryEmail, FieldPhones, FieldLinks, FieldLength, FieldPassword}
	}

	p := request.Profile
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if err := validateEmail(p.Email1, true); err != nil {
				return err
			}
		case FieldSecondaryEmail:
			if err := validateEmail(p.Email2, false); err != nil {
				return err
			}
		case FieldPhones:
			if err := validatePhones(p.Phone1, p.Phone2); err != nil {
				return err
			}
		case FieldLinks:
			if err := validateLinks(p.Link1, p.Link2, p.Avatar); err != nil {
				return err
			}
		case FieldLength:
			for _, pf := range models.ProfileFields {
				if err := validateLength(pf, p.Field(pf)); err != nil {
					return err
				}
			}
		case FieldPassword:
			if err := v.validatePassword(request.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactsValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate checks only the fields present in the update. An empty
// string clears an optional field, so only Name must stay non-blank.
func (v *ContactsValidator) validateUserUpdate(_ context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldName, FieldSecondaryEmail, FieldPhones, FieldLinks, FieldLength}
	}

	changes := update.Changes()
	for _, f := range fields {
		switch f {
		case FieldChanges:
			if len(changes) == 0 && !update.TouchesEmail1() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if name, ok := changes[models.FieldName]; ok && name == "" {
				return ErrEmptyName
			}
		case FieldSecondaryEmail:
			if err := validateEmail(changes[models.FieldEmail2], false); err != nil {
				return err
			}
		case FieldPhones:
			if err := validatePhones(changes[models.FieldPhone1], changes[models.FieldPhone2]); err != nil {
				return err
			}
		case FieldLinks:
			if err := validateLinks(changes[models.FieldLink1], changes[models.FieldLink2], changes[models.FieldAvatar]); err != nil {
				return err
			}
		case FieldLength:
			for pf, value := range changes {
				if err := validateLength(pf, value); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactsValidator) validateCircleName(_ context.Context, request models.CircleNameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCircleName}
	}

	for _, f := range fields {
		switch f {
		case FieldCircleName:
			name := strings.TrimSpace(request.Name)
			if name == "" {
				return ErrEmptyCircleName
			}
			if utf8.RuneCountInString(name) > maxFieldLength {
				return fmt.Errorf("%w: circle name", ErrFieldTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactsValidator) validateAllowedInfo(_ context.Context, info models.AllowedInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAllowedInfo}
	}

	for _, f := range fields {
		switch f {
		case FieldAllowedInfo:
			if len(info) == 0 {
				return ErrEmptyAllowedInfo
			}
			for field := range info {
				if !models.IsProfileField(field) {
					return fmt.Errorf("%w: %q", ErrUnknownInfoField, field)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactsValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < v.passwordMinLength {
		return fmt.Errorf("%w: at least %d characters", ErrPasswordTooShort, v.passwordMinLength)
	}
	return nil
}

// validateEmail accepts a bare address only: display names and angle
// brackets are rejected.
func validateEmail(email string, required bool) error {
	email = strings.TrimSpace(email)
	if email == "" {
		if required {
			return ErrEmptyEmail
		}
		return nil
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func validatePhones(phones ...string) error {
	for _, phone := range phones {
		phone = strings.TrimSpace(phone)
		if phone == "" {
			continue
		}
		if !isPhone(phone) {
			return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
		}
	}
	return nil
}

// isPhone allows an optional leading plus, digits and the usual separators,
// with at least three digits.
func isPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return false
		}
	}
	return digits >= 3
}

func validateLinks(links ...string) error {
	for _, link := range links {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		u, err := url.ParseRequestURI(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidLink, link)
		}
	}
	return nil
}

func validateLength(field models.ProfileField, value string) error {
	if utf8.RuneCountInString(value) > maxFieldLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return nil
}
