package handlers

import (
	"errors"
	"strconv"

	"github.com/biosecret/go-crud/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const statusSuccess = "success"

// Envelope là dạng chung của response thành công: {"status": "success", "data": ...}
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func success(c *fiber.Ctx, code int, data any) error {
	return c.Status(code).JSON(Envelope{Status: statusSuccess, Data: data})
}

func successMessage(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: statusSuccess, Message: msg})
}

// parseBody đọc JSON body; lỗi định dạng là lỗi của client
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return validationError(errors.New("invalid request body"))
	}
	return nil
}

// pathID đọc tham số :id dạng UUID
func pathID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return uuid.Nil, validationError(errors.New("invalid id"))
	}
	return id, nil
}

// queryInt trả về nil khi tham số không được gửi
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validationError(errors.New(key + ": must be a non-negative integer"))
	}
	return &n, nil
}

// pagination đọc offset và limit từ query string
func pagination(c *fiber.Ctx) (offset, limit *int, err error) {
	if offset, err = queryInt(c, "offset"); err != nil {
		return nil, nil, err
	}
	if limit, err = queryInt(c, "limit"); err != nil {
		return nil, nil, err
	}
	return offset, limit, nil
}
