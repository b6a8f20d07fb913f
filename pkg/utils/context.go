package utils

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
)

const UserLocalsKey = "user"

// GetUserFromContext ดึง identity ที่ auth gate ใส่ไว้ใน locals
func GetUserFromContext(c *fiber.Ctx) (*dto.SessionUser, error) {
	user, ok := c.Locals(UserLocalsKey).(*dto.SessionUser)
	if !ok || user == nil {
		return nil, errs.ErrUnauthorized
	}
	return user, nil
}
