package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"

	"github.com/kscius/aura-test/internal/server/models"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

const userColumns = `id, email, first_name, last_name, password_hash, created_at, updated_at`

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (r *UsersRepository) Create(ctx context.Context, email, firstName, lastName, passwordHash string) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, first_name, last_name, password_hash)
		 VALUES ($1,$2,$3,$4)
		 RETURNING `+userColumns,
		email, firstName, lastName, passwordHash,
	)

	u, err := scanUser(row)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrEmailTaken
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`,
		email,
	)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`,
		id,
	)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Update перезаписывает изменяемые поля пользователя и обновляет updated_at.
// password_hash текущими операциями не меняется.
func (r *UsersRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET email=$2, first_name=$3, last_name=$4, updated_at=now()
		 WHERE id=$1
		 RETURNING `+userColumns,
		user.ID, user.Email, user.FirstName, user.LastName,
	)

	u, err := scanUser(row)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrEmailTaken
			}
		}
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// List возвращает всех пользователей, новые первыми.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
