package models

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	PostTitleMaxLen = 100
	PostBodyMaxLen  = 1000

	DefaultPostPage  = 1
	DefaultPostLimit = 10
	MaxPostLimit     = 100
)

// Post là một dòng trong bảng posts
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Độ dài tính theo ký tự (rune), không theo byte
type CreatePostRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
	Body  string `json:"body" validate:"required,min=1,max=1000"`
}

func (r CreatePostRequest) Validate() error {
	return validateStruct(r)
}

// EditPostRequest là body của PATCH; trường nil giữ nguyên giá trị cũ
type EditPostRequest struct {
	Title *string `json:"title" validate:"omitnil,min=1,max=100"`
	Body  *string `json:"body" validate:"omitnil,min=1,max=1000"`
}

func (r EditPostRequest) Validate() error {
	return validateStruct(r)
}

// Apply ghép các trường được gửi lên bài viết hiện tại
func (r EditPostRequest) Apply(cur Post) (title, body string) {
	title, body = cur.Title, cur.Body
	if r.Title != nil {
		title = *r.Title
	}
	if r.Body != nil {
		body = *r.Body
	}
	return title, body
}

// PostListQuery: Offset là số trang bắt đầu từ 1, Limit là số bài mỗi trang.
type PostListQuery struct {
	Offset *int
	Limit  *int
}

// Resolve trả về limit và số dòng cần bỏ qua. Trang 0 được coi là trang 1.
// Trang quá lớn làm tràn số được kẹp về math.MaxInt, tức là một trang rỗng.
func (q PostListQuery) Resolve() (limit, skip int, err error) {
	page, limit := DefaultPostPage, DefaultPostLimit
	if q.Offset != nil {
		if *q.Offset < 0 {
			return 0, 0, errors.New("offset: must be a non-negative integer")
		}
		page = max(*q.Offset, 1)
	}
	if q.Limit != nil {
		if *q.Limit < 0 {
			return 0, 0, errors.New("limit: must be a non-negative integer")
		}
		limit = min(*q.Limit, MaxPostLimit)
	}
	if limit > 0 && page-1 > math.MaxInt/limit {
		return limit, math.MaxInt, nil
	}
	return limit, (page - 1) * limit, nil
}
