package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ProfileField names a single visible field of a user profile. The same names
// are used as keys of a circle's [AllowedInfo] policy and of [UserInfo].
type ProfileField string

const (
	FieldName     ProfileField = "name"
	FieldSurname1 ProfileField = "surname1"
	FieldSurname2 ProfileField = "surname2"
	FieldEmail1   ProfileField = "email1"
	FieldEmail2   ProfileField = "email2"
	FieldPhone1   ProfileField = "phone1"
	FieldPhone2   ProfileField = "phone2"
	FieldCountry  ProfileField = "country"
	FieldAddress  ProfileField = "address"
	FieldLink1    ProfileField = "link1"
	FieldLink2    ProfileField = "link2"
	FieldAvatar   ProfileField = "avatar"
)

// ProfileFields lists every profile field in schema order.
var ProfileFields = []ProfileField{
	FieldName,
	FieldSurname1,
	FieldSurname2,
	FieldEmail1,
	FieldEmail2,
	FieldPhone1,
	FieldPhone2,
	FieldCountry,
	FieldAddress,
	FieldLink1,
	FieldLink2,
	FieldAvatar,
}

// IsProfileField reports whether f is one of [ProfileFields].
func IsProfileField(f ProfileField) bool {
	for _, field := range ProfileFields {
		if field == f {
			return true
		}
	}
	return false
}

// Profile holds the user-visible attributes of an account.
// Empty strings mean the field is not defined.
type Profile struct {
	Name     string `json:"name"`
	Surname1 string `json:"surname1,omitempty"`
	Surname2 string `json:"surname2,omitempty"`
	Email1   string `json:"email1"`
	Email2   string `json:"email2,omitempty"`
	Phone1   string `json:"phone1,omitempty"`
	Phone2   string `json:"phone2,omitempty"`
	Country  string `json:"country,omitempty"`
	Address  string `json:"address,omitempty"`
	Link1    string `json:"link1,omitempty"`
	Link2    string `json:"link2,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Field returns the value of the named profile field.
func (p Profile) Field(f ProfileField) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldSurname1:
		return p.Surname1
	case FieldSurname2:
		return p.Surname2
	case FieldEmail1:
		return p.Email1
	case FieldEmail2:
		return p.Email2
	case FieldPhone1:
		return p.Phone1
	case FieldPhone2:
		return p.Phone2
	case FieldCountry:
		return p.Country
	case FieldAddress:
		return p.Address
	case FieldLink1:
		return p.Link1
	case FieldLink2:
		return p.Link2
	case FieldAvatar:
		return p.Avatar
	}
	return ""
}

// Info returns every defined (non-blank) field of the profile.
func (p Profile) Info() UserInfo {
	info := make(UserInfo, len(ProfileFields))
	for _, f := range ProfileFields {
		if v := p.Field(f); strings.TrimSpace(v) != "" {
			info[f] = v
		}
	}
	return info
}

// Normalize trims every field and lowercases the e-mail addresses,
// mirroring how they are compared for uniqueness.
func (p Profile) Normalize() Profile {
	return Profile{
		Name:     strings.TrimSpace(p.Name),
		Surname1: strings.TrimSpace(p.Surname1),
		Surname2: strings.TrimSpace(p.Surname2),
		Email1:   strings.ToLower(strings.TrimSpace(p.Email1)),
		Email2:   strings.ToLower(strings.TrimSpace(p.Email2)),
		Phone1:   strings.TrimSpace(p.Phone1),
		Phone2:   strings.TrimSpace(p.Phone2),
		Country:  strings.TrimSpace(p.Country),
		Address:  strings.TrimSpace(p.Address),
		Link1:    strings.TrimSpace(p.Link1),
		Link2:    strings.TrimSpace(p.Link2),
		Avatar:   strings.TrimSpace(p.Avatar),
	}
}

// User represents a registered account.
//
// PasswordHash is populated only by credential lookups used during login;
// regular profile reads never select it and it is never serialized.
type User struct {
	ID string `json:"id"`

	Profile

	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInfo is a projection of a profile: only the fields a viewer may see,
// keyed by field name. Hidden fields are absent, never empty.
type UserInfo map[ProfileField]string

// UserUpdate is a partial profile update. Nil fields are left unchanged.
//
// Email1 exists only so that attempts to change the primary e-mail can be
// detected and rejected; it is never written. It keeps the raw JSON so that
// an explicit null counts as an attempt too.
type UserUpdate struct {
	Name     *string         `json:"name,omitempty"`
	Surname1 *string         `json:"surname1,omitempty"`
	Surname2 *string         `json:"surname2,omitempty"`
	Email1   json.RawMessage `json:"email1,omitempty"`
	Email2   *string         `json:"email2,omitempty"`
	Phone1   *string         `json:"phone1,omitempty"`
	Phone2   *string         `json:"phone2,omitempty"`
	Country  *string         `json:"country,omitempty"`
	Address  *string         `json:"address,omitempty"`
	Link1    *string         `json:"link1,omitempty"`
	Link2    *string         `json:"link2,omitempty"`
	Avatar   *string         `json:"avatar,omitempty"`
}

// TouchesEmail1 reports whether the update carries the email1 key, whatever
// its value.
func (u UserUpdate) TouchesEmail1() bool {
	return len(u.Email1) > 0
}

// Changes returns the non-nil fields of the update keyed by column name,
// with values trimmed and e-mails lowercased. Email1 is never included.
func (u UserUpdate) Changes() map[ProfileField]string {
	changes := make(map[ProfileField]string)
	set := func(f ProfileField, v *string) {
		if v != nil {
			changes[f] = strings.TrimSpace(*v)
		}
	}

	set(FieldName, u.Name)
	set(FieldSurname1, u.Surname1)
	set(FieldSurname2, u.Surname2)
	set(FieldPhone1, u.Phone1)
	set(FieldPhone2, u.Phone2)
	set(FieldCountry, u.Country)
	set(FieldAddress, u.Address)
	set(FieldLink1, u.Link1)
	set(FieldLink2, u.Link2)
	set(FieldAvatar, u.Avatar)

	if u.Email2 != nil {
		changes[FieldEmail2] = strings.ToLower(strings.TrimSpace(*u.Email2))
	}

	return changes
}
