package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"coursehub/domain/errs"
)

var validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tags
// error ที่คืนอยู่ใน chain ของ errs.ErrValidation เสมอ
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}
	return nil
}

// GetValidationErrors แปลง validator error เป็น field -> message
// สำหรับแสดงบนหน้า form
func GetValidationErrors(err error) map[string]string {
	result := make(map[string]string)

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return result
	}

	for _, fe := range vErrs {
		switch fe.Tag() {
		case "required":
			result[fe.Field()] = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			result[fe.Field()] = "must be a valid email address"
		case "min":
			result[fe.Field()] = fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			result[fe.Field()] = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		case "oneof":
			result[fe.Field()] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		default:
			result[fe.Field()] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}

	return result
}
