package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/domain/services"
	"coursehub/interfaces/api/handlers"
	"coursehub/interfaces/api/middleware"
)

// Gates รวม middleware ที่ route layer ใช้
type Gates struct {
	EnsureAuth  fiber.Handler
	EnsureGuest fiber.Handler
	// FileGate คือ EnsureAuth หรือ pass-through ตาม config
	// (public share links ต้องตั้ง FILE_ROUTES_REQUIRE_AUTH=false)
	FileGate fiber.Handler
}

func NewGates(sessions services.SessionService, cookieName string, requireAuthForFiles bool) *Gates {
	g := &Gates{
		EnsureAuth:  middleware.EnsureAuth(sessions, cookieName),
		EnsureGuest: middleware.EnsureGuest(sessions, cookieName),
	}

	if requireAuthForFiles {
		g.FileGate = g.EnsureAuth
	} else {
		g.FileGate = func(c *fiber.Ctx) error { return c.Next() }
	}

	return g
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, g *Gates) {
	SetupAuthRoutes(app, h, g)
	SetupCourseRoutes(app, h, g)

	// /course/stories/... ต้องมาก่อน /course/:id/... ใน group เดียวกัน
	// ไม่งั้น :id จะกิน segment "stories"
	course := app.Group("/course")
	SetupFileRoutes(course, h, g)
	SetupStoryRoutes(course, h, g)
}
