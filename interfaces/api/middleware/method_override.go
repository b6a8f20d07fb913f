package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const methodOverrideField = "_method"

// MethodOverride อ่าน _method จาก form body แล้วสลับ HTTP method
// HTML form ส่งได้แค่ GET/POST เลยจำลอง PUT/DELETE ผ่าน convention นี้
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}

		override := c.FormValue(methodOverrideField)
		switch override {
		case fiber.MethodPut, fiber.MethodDelete:
			c.Method(override)
			// route ใหม่ตาม method ที่สลับแล้ว
			return c.RestartRouting()
		}

		return c.Next()
	}
}
