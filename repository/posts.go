package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/biosecret/go-crud/models"
	"github.com/google/uuid"
)

const postColumns = "id, title, body, created_at, updated_at"

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List trả về tối đa limit bài viết sau khi bỏ qua offset dòng
func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts ORDER BY created_at, id LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, title, body string) (models.Post, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO posts (title, body) VALUES ($1, $2) RETURNING "+postColumns,
		title, body,
	)
	return scanPost(row)
}

func (r *PostRepository) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE id = $1", id)
	return scanPost(row)
}

// Update ghi đè title, body và updated_at; trả về ErrNotFound nếu không có dòng nào
func (r *PostRepository) Update(ctx context.Context, id uuid.UUID, title, body string, updatedAt time.Time) (models.Post, error) {
	row := r.db.QueryRowContext(ctx,
		"UPDATE posts SET title = $1, body = $2, updated_at = $3 WHERE id = $4 RETURNING "+postColumns,
		title, body, updatedAt, id,
	)
	return scanPost(row)
}

// Delete xóa bài viết; 0 dòng bị ảnh hưởng trả về ErrNotFound
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPost(row *sql.Row) (models.Post, error) {
	var post models.Post
	if err := row.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return models.Post{}, mapError(err)
	}
	return post, nil
}
