package models

import (
	"errors"

	"github.com/google/uuid"
)

// Todo là một bản ghi todo trong bộ nhớ
type Todo struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// CreateTodoRequest là body của POST /api/todos; text chỉ cần khác rỗng
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r CreateTodoRequest) Validate() error {
	return validateStruct(r)
}

// TodoListQuery chứa tham số phân trang của danh sách todo.
// Offset mặc định là 0, Limit mặc định là không giới hạn.
type TodoListQuery struct {
	Offset *int
	Limit  *int
}

// Unbounded được dùng làm limit khi không giới hạn số bản ghi trả về
const Unbounded = -1

// Resolve trả về offset và limit sau khi áp dụng giá trị mặc định
func (q TodoListQuery) Resolve() (offset, limit int, err error) {
	offset, limit = 0, Unbounded
	if q.Offset != nil {
		if *q.Offset < 0 {
			return 0, 0, errors.New("offset: must be a non-negative integer")
		}
		offset = *q.Offset
	}
	if q.Limit != nil {
		if *q.Limit < 0 {
			return 0, 0, errors.New("limit: must be a non-negative integer")
		}
		limit = *q.Limit
	}
	return offset, limit, nil
}
