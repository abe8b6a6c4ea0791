package repository

import (
	"context"
	"database/sql"

	"github.com/biosecret/go-crud/models"
	"github.com/google/uuid"
)

const userColumns = "id, email, password, created_at, updated_at"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create lưu người dùng với mật khẩu đã hash; email trùng trả về ErrDuplicate
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO users (email, password) VALUES ($1, $2) RETURNING "+userColumns,
		email, passwordHash,
	)
	return scanUser(row)
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, mapError(err)
	}
	return user, nil
}
