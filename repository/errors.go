// Package repository chứa các truy vấn PostgreSQL cho posts và users.
package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound: không có dòng nào khớp với điều kiện
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate: vi phạm ràng buộc UNIQUE
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolation = "23505"

// mapError chuyển lỗi của driver thành lỗi của package
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
