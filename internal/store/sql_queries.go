package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns are selected for every profile read. Optional fields are
// stored as NULL and coalesced so they scan into plain strings.
var userColumns = []string{
	"id",
	"name",
	"COALESCE(surname1, '')",
	"COALESCE(surname2, '')",
	"email1",
	"COALESCE(email2, '')",
	"COALESCE(phone1, '')",
	"COALESCE(phone2, '')",
	"COALESCE(country, '')",
	"COALESCE(address, '')",
	"COALESCE(link1, '')",
	"COALESCE(link2, '')",
	"COALESCE(avatar, '')",
	"created_at",
	"updated_at",
}

var circleColumns = []string{
	"c.id",
	"c.owner_id",
	"c.circle_type",
	"c.name",
	"c.allowed_info",
	"c.created_at",
	"c.updated_at",
}

const (
	deleteUser = `DELETE FROM users WHERE id = $1;`

	addCircleContact = `INSERT INTO circle_contacts (circle_id, contact_id)
		VALUES ($1, $2)
		ON CONFLICT (circle_id, contact_id) DO NOTHING;`

	removeCircleContact = `DELETE FROM circle_contacts
		WHERE circle_id = $1 AND contact_id = $2;`

	mergeCircleAllowedInfo = `UPDATE circles
		SET allowed_info = allowed_info || $1::jsonb, updated_at = NOW()
		WHERE id = $2
		RETURNING allowed_info;`

	updateCircleName = `UPDATE circles
		SET name = $1, updated_at = NOW()
		WHERE id = $2;`

	deleteCircle = `DELETE FROM circles WHERE id = $1;`

	createHandshake = `INSERT INTO handshakes (sender_id, expires_at)
		VALUES ($1, $2)
		RETURNING id;`

	findHandshakeByID = `SELECT id, sender_id, expires_at
		FROM handshakes
		WHERE id = $1 AND expires_at > NOW();`

	deleteHandshake = `DELETE FROM handshakes WHERE id = $1;`

	deleteExpiredHandshakes = `DELETE FROM handshakes WHERE expires_at <= NOW();`
)

// profileColumn returns the users column holding f.
func profileColumn(f models.ProfileField) string {
	return string(f)
}

// nullable turns an undefined optional field into SQL NULL so partial
// unique indexes ignore it.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// buildCreateUserQuery builds the INSERT for a new account.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	p := user.Profile
	query, args, err := psql.Insert(user.TableName()).
		Columns(
			"name", "surname1", "surname2", "email1", "email2", "phone1", "phone2",
			"country", "address", "link1", "link2", "avatar", "password_hash",
		).
		Values(
			p.Name, nullable(p.Surname1), nullable(p.Surname2), p.Email1, nullable(p.Email2),
			nullable(p.Phone1), nullable(p.Phone2), nullable(p.Country), nullable(p.Address),
			nullable(p.Link1), nullable(p.Link2), nullable(p.Avatar), user.PasswordHash,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserQuery selects a single user by id or by primary e-mail.
// withPassword adds password_hash as the last column.
func buildFindUserQuery(where sq.Eq, withPassword bool) (string, []any, error) {
	columns := userColumns
	if withPassword {
		columns = append(append([]string{}, userColumns...), "password_hash")
	}

	query, args, err := psql.Select(columns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE touching only the changed
// columns, in schema order. Email1 is never written.
func buildUpdateUserQuery(userID string, changes map[models.ProfileField]string) (string, []any, error) {
	builder := psql.Update(models.User{}.TableName())

	for _, f := range models.ProfileFields {
		v, ok := changes[f]
		if !ok || f == models.FieldEmail1 {
			continue
		}
		if f == models.FieldName {
			builder = builder.Set(profileColumn(f), v)
			continue
		}
		builder = builder.Set(profileColumn(f), nullable(v))
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateCircleQuery builds the INSERT for a circle.
func buildCreateCircleQuery(circle models.Circle) (string, []any, error) {
	query, args, err := psql.Insert(circle.TableName()).
		Columns("owner_id", "circle_type", "name", "allowed_info").
		Values(circle.OwnerID, string(circle.Type), circle.Name, circle.AllowedInfo).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectCirclesQuery selects circles matching where.
func buildSelectCirclesQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.Select(circleColumns...).
		From(models.Circle{}.TableName()+" c").
		Where(where).
		OrderBy("c.created_at", "c.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectCirclesWithContactQuery selects the owner's circles that have
// contactID as a member.
func buildSelectCirclesWithContactQuery(ownerID, contactID string) (string, []any, error) {
	if contactID == "" {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, ErrEmptyContactID)
	}

	query, args, err := psql.Select(circleColumns...).
		From(models.Circle{}.TableName()+" c").
		Join("circle_contacts cc ON cc.circle_id = c.id").
		Where(sq.Eq{"c.owner_id": ownerID}).
		Where(sq.Eq{"cc.contact_id": contactID}).
		OrderBy("c.created_at", "c.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectContactsQuery selects the members of the given circles in the
// order they were added.
func buildSelectContactsQuery(circleIDs []string) (string, []any, error) {
	query, args, err := psql.Select("circle_id", "contact_id").
		From("circle_contacts").
		Where(sq.Eq{"circle_id": circleIDs}).
		OrderBy("added_at", "contact_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
