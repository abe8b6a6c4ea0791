// Package store giữ danh sách todo trong bộ nhớ của tiến trình.
package store

import (
	"sync"

	"github.com/biosecret/go-crud/models"
	"github.com/google/uuid"
)

// TodoStore là tập todo an toàn khi truy cập đồng thời.
//
// Nhiều goroutine có thể đọc cùng lúc; Create giữ khóa ghi trong lúc chèn.
// Mọi hàm trả về bản sao nên bên gọi không thể sửa dữ liệu bên trong.
// Không có I/O nào được thực hiện khi đang giữ khóa.
//
// Các thao tác: List, Get, Create và Len (số bản ghi hiện có).
type TodoStore struct {
	mu    sync.RWMutex
	todos map[uuid.UUID]models.Todo
	order []uuid.UUID // thứ tự chèn, dùng cho List
	newID func() uuid.UUID
}

func NewTodoStore() *TodoStore {
	return &TodoStore{
		todos: make(map[uuid.UUID]models.Todo),
		newID: uuid.New,
	}
}

// List bỏ qua offset bản ghi đầu và trả về tối đa limit bản ghi theo thứ tự chèn.
// limit < 0 nghĩa là không giới hạn. Offset vượt quá kích thước trả về slice rỗng.
func (s *TodoStore) List(offset, limit int) []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.order) || limit == 0 {
		return []models.Todo{}
	}

	// so sánh với phần còn lại để offset+limit không bị tràn số
	end := len(s.order)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}

	todos := make([]models.Todo, 0, end-offset)
	for _, id := range s.order[offset:end] {
		todos = append(todos, s.todos[id])
	}
	return todos
}

// Get trả về todo và true nếu tồn tại, ngược lại false
func (s *TodoStore) Get(id uuid.UUID) (models.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	return todo, ok
}

// Create tạo todo mới với ID ngẫu nhiên và completed = false
func (s *TodoStore) Create(text string) models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	// UUID v4 gần như không thể trùng, nhưng ID đã cấp không bao giờ được dùng lại
	for _, exists := s.todos[id]; exists; _, exists = s.todos[id] {
		id = s.newID()
	}

	todo := models.Todo{ID: id, Text: text, Completed: false}
	s.todos[id] = todo
	s.order = append(s.order, id)
	return todo
}

// Len trả về số todo hiện có
func (s *TodoStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}
