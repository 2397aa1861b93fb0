package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// CircleType distinguishes the single per-user default circle from
// user-created ones.
type CircleType string

const (
	// CircleTypeDefault is the one circle every user has. It is always named
	// [DefaultCircleName] and can be neither renamed nor deleted.
	CircleTypeDefault CircleType = "default"

	// CircleTypeCustom is any additional, freely named circle.
	CircleTypeCustom CircleType = "custom"
)

// DefaultCircleName is the fixed name of every default circle.
const DefaultCircleName = "contacts"

// AllowedInfo is a circle's visibility policy: which profile fields members
// of the circle may see.
type AllowedInfo map[ProfileField]bool

// DefaultAllowedInfo returns the policy every new circle starts with:
// the name is visible, everything else is hidden.
func DefaultAllowedInfo() AllowedInfo {
	info := make(AllowedInfo, len(ProfileFields))
	for _, f := range ProfileFields {
		info[f] = f == FieldName
	}
	return info
}

// Merge returns a copy of a with every entry of partial applied on top.
// Fields absent from partial keep their current value.
func (a AllowedInfo) Merge(partial AllowedInfo) AllowedInfo {
	merged := make(AllowedInfo, len(a)+len(partial))
	for f, v := range a {
		merged[f] = v
	}
	for f, v := range partial {
		merged[f] = v
	}
	return merged
}

// Union returns a policy in which a field is visible when it is visible in
// a or in other.
func (a AllowedInfo) Union(other AllowedInfo) AllowedInfo {
	union := make(AllowedInfo, len(a))
	for f, v := range a {
		union[f] = v
	}
	for f, v := range other {
		union[f] = union[f] || v
	}
	return union
}

// Visible returns the fields marked visible, in schema order.
func (a AllowedInfo) Visible() []ProfileField {
	visible := make([]ProfileField, 0, len(a))
	for _, f := range ProfileFields {
		if a[f] {
			visible = append(visible, f)
		}
	}
	return visible
}

// Value implements [driver.Valuer]; the policy is stored as jsonb.
func (a AllowedInfo) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("error marshaling allowed info: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (a *AllowedInfo) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = AllowedInfo{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported allowed info source type %T", src)
	}

	info := AllowedInfo{}
	if err := json.Unmarshal(raw, &info); err != nil {
		return fmt.Errorf("error unmarshaling allowed info: %w", err)
	}
	*a = info
	return nil
}

// Circle is an owned group of contacts with an attached visibility policy.
type Circle struct {
	ID      string     `json:"id"`
	OwnerID string     `json:"owner_id"`
	Type    CircleType `json:"type"`
	Name    string     `json:"name"`

	// Contacts holds the identifiers of member users. Order is irrelevant
	// and every identifier appears at most once.
	Contacts []string `json:"contacts"`

	AllowedInfo AllowedInfo `json:"allowed_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Circle model.
func (c Circle) TableName() string {
	return "circles"
}

// IsDefault reports whether c is its owner's default circle.
func (c Circle) IsDefault() bool {
	return c.Type == CircleTypeDefault
}

// HasContact reports whether contactID is a member of c.
func (c Circle) HasContact(contactID string) bool {
	return slices.Contains(c.Contacts, contactID)
}

// NewDefaultCircle returns an unsaved default circle for ownerID.
func NewDefaultCircle(ownerID string) Circle {
	return Circle{
		OwnerID:     ownerID,
		Type:        CircleTypeDefault,
		Name:        DefaultCircleName,
		Contacts:    []string{},
		AllowedInfo: DefaultAllowedInfo(),
	}
}

// NewCustomCircle returns an unsaved custom circle for ownerID.
func NewCustomCircle(ownerID, name string) Circle {
	return Circle{
		OwnerID:     ownerID,
		Type:        CircleTypeCustom,
		Name:        name,
		Contacts:    []string{},
		AllowedInfo: DefaultAllowedInfo(),
	}
}
