package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/kscius/aura-test/internal/server/models"
	"github.com/kscius/aura-test/internal/server/repository"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

func modelUser(id int64, email string) models.User {
	return models.User{ID: id, Email: email, FirstName: "Ivan", LastName: "Petrov"}
}

var userCols = []string{"id", "email", "first_name", "last_name", "password_hash", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRow(id int64, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).
		AddRow(id, email, "Ivan", "Petrov", "$2a$10$hash", now, now)
}

func TestCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("user@example.com", "Ivan", "Petrov", "$2a$10$hash").
		WillReturnRows(userRow(1, "user@example.com"))

	u, err := repo.Create(context.Background(), "user@example.com", "Ivan", "Petrov", "$2a$10$hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 1 || u.Email != "user@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), "user@example.com", "Ivan", "Petrov", "hash")
	if !errors.Is(err, serr.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), "user@example.com", "Ivan", "Petrov", "hash")
	if !errors.Is(err, serr.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestGetByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("user@example.com").
		WillReturnRows(userRow(7, "user@example.com"))

	u, err := repo.GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`UPDATE users`).
		WithArgs(int64(7), "new@example.com", "Ivan", "Petrov").
		WillReturnRows(userRow(7, "new@example.com"))

	got, err := repo.Update(context.Background(), modelUser(7, "new@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "new@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`UPDATE users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Update(context.Background(), modelUser(7, "taken@example.com"))
	if !errors.Is(err, serr.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`UPDATE users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), modelUser(99, "user@example.com"))
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userCols).
		AddRow(2, "b@example.com", "B", "B", "hash", now, now).
		AddRow(1, "a@example.com", "A", "A", "hash", now.Add(-time.Hour), now)

	mock.ExpectQuery(`SELECT .+ FROM users ORDER BY created_at DESC`).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users[0].ID != 2 || users[1].ID != 1 {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestList_Empty(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(userCols))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
}
