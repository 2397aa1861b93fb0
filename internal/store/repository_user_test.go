package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var userRowColumns = []string{
	"id", "name", "surname1", "surname2", "email1", "email2", "phone1", "phone2",
	"country", "address", "link1", "link2", "avatar", "created_at", "updated_at",
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Profile:      models.Profile{Name: "Ann", Email1: "ann@example.com", Phone1: "+100"},
		PasswordHash: "hash",
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow("u-1", now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Ann", nil, nil, "ann@example.com", nil, "+100", nil, nil, nil, nil, nil, nil, "hash").
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "u-1" {
		t.Errorf("expected ID=u-1, got %s", created.ID)
	}
	if created.PasswordHash != "" {
		t.Error("expected password hash to be cleared from the returned user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"users_email1_key", ErrEmailAlreadyExists},
		{"users_email2_key", ErrEmailAlreadyExists},
		{"users_phone1_key", ErrPhoneAlreadyExists},
		{"users_phone2_key", ErrPhoneAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, tt.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{Profile: models.Profile{Name: "Ann"}})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, models.ErrConstraintViolation) {
				t.Fatalf("expected constraint violation kind, got %v", err)
			}
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u-1", "Ann", "Lee", "", "ann@example.com", "", "+100", "", "NL", "", "", "", "", now, now)

	mock.ExpectQuery("SELECT id, name").
		WithArgs("u-1").
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Ann" || found.Surname1 != "Lee" || found.Country != "NL" {
		t.Errorf("unexpected profile: %+v", found.Profile)
	}
	if found.PasswordHash != "" {
		t.Error("expected no password hash on profile read")
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name").
		WithArgs("u-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), "u-404")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found kind, got %v", err)
	}
}

func TestFindUserByID_MalformedID(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name").
		WithArgs("not-a-uuid").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.FindUserByID(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmail_SelectsPassword(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(append(append([]string{}, userRowColumns...), "password_hash")).
		AddRow("u-1", "Ann", "", "", "ann@example.com", "", "", "", "", "", "", "", "", now, now, "hash")

	mock.ExpectQuery("SELECT .*password_hash FROM users WHERE email1 = \\$1").
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PasswordHash != "hash" {
		t.Errorf("expected password hash, got %q", found.PasswordHash)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u-1", "Ann", "", "", "ann@example.com", "", "", "", "PT", "", "", "", "", now, now)

	mock.ExpectQuery("UPDATE users SET country = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2 RETURNING").
		WithArgs("PT", "u-1").
		WillReturnRows(rows)

	updated, err := repo.UpdateUser(context.Background(), "u-1", map[models.ProfileField]string{models.FieldCountry: "PT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Country != "PT" {
		t.Errorf("expected country PT, got %s", updated.Country)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(context.Background(), "u-1", map[models.ProfileField]string{models.FieldName: "B"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_PhoneTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "users_phone1_key"))

	_, err := repo.UpdateUser(context.Background(), "u-1", map[models.ProfileField]string{models.FieldPhone1: "+1"})
	if !errors.Is(err, ErrPhoneAlreadyExists) {
		t.Fatalf("expected ErrPhoneAlreadyExists, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs("u-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteUser(context.Background(), "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteUser(context.Background(), "u-2"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
