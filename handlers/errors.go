package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Kind phân loại lỗi trả về từ handler
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Status trả về mã HTTP tương ứng với Kind
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Error là lỗi mà handler trả về. Message được gửi cho client,
// Err chỉ dùng để ghi log và không bao giờ lộ ra response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error()}
}

func unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

const genericInternalMessage = "Something went wrong"

// ErrorHandler là nơi duy nhất chuyển lỗi thành mã HTTP và body dạng text
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := genericInternalMessage

		var appErr *Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			code = appErr.Kind.Status()
			msg = appErr.Message
			if appErr.Kind == KindInternal {
				log.Error(appErr.Message, "error", appErr.Err, "method", c.Method(), "path", c.Path())
			}
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			msg = fiberErr.Message
		default:
			log.Error("unhandled error", "error", err, "method", c.Method(), "path", c.Path())
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(msg)
	}
}
