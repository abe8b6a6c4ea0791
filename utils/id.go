package utils

import (
	"github.com/google/uuid"
)

// ParseID kiểm tra và chuyển tham số đường dẫn thành UUID
func ParseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
