package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate dùng chung cho mọi DTO; *validator.Validate an toàn khi dùng đồng thời
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// dùng tên trong tag json để thông báo lỗi khớp với body client gửi lên
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct chạy các tag validate và trả về lỗi đầu tiên dạng "field: ..."
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return errors.New(fieldMessage(fieldErrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: must not be empty", fe.Field())
	case "min":
		return fmt.Sprintf("%s: length must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: length must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s: must be a valid address", fe.Field())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}
