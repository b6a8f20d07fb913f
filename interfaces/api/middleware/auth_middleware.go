package middleware

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/domain/services"
	"coursehub/pkg/logger"
	"coursehub/pkg/utils"
)

// EnsureAuth คือ auth gate สำหรับ route ที่ต้อง login
// ไม่มี session ที่ valid = redirect ไปหน้า landing เงียบๆ ไม่มี error payload
func EnsureAuth(sessions services.SessionService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			return c.Redirect("/", fiber.StatusFound)
		}

		user, err := sessions.Verify(c.UserContext(), sid)
		if err != nil {
			logger.DebugContext(c.UserContext(), "Session rejected", "error", err)
			c.ClearCookie(cookieName)
			return c.Redirect("/", fiber.StatusFound)
		}

		// ส่ง identity ต่อให้ handler ใช้เช็ค ownership
		c.Locals(utils.UserLocalsKey, user)

		return c.Next()
	}
}

// EnsureGuest ผ่านเฉพาะตอนยังไม่ login (เช่นหน้า login เอง)
// มี session อยู่แล้ว = redirect ไป course list
func EnsureGuest(sessions services.SessionService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			return c.Next()
		}

		if _, err := sessions.Verify(c.UserContext(), sid); err != nil {
			return c.Next()
		}

		return c.Redirect("/courses", fiber.StatusFound)
	}
}
