package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"coursehub/domain/errs"
	"coursehub/pkg/logger"
)

// ErrorHandler คือ last-resort สำหรับ error ที่หลุดจาก handler
// ทุกอย่าง degrade เป็นหน้า error ที่ render แล้วเสมอ
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		view := "error/500"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			if code == fiber.StatusNotFound {
				view = "error/404"
			}
		}
		if errs.IsNotFound(err) {
			code = fiber.StatusNotFound
			view = "error/404"
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "status", code)

		if renderErr := c.Status(code).Render(view, fiber.Map{}); renderErr != nil {
			// views engine พังเอง ส่ง plain text พอ
			return c.Status(code).SendString("Server Error")
		}
		return nil
	}
}
