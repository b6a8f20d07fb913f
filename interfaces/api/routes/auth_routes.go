package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/interfaces/api/handlers"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, g *Gates) {
	// landing = หน้า login สำหรับ guest เท่านั้น
	app.Get("/", g.EnsureGuest, h.AuthHandler.ShowLogin)

	auth := app.Group("/auth")
	auth.Post("/register", g.EnsureGuest, h.AuthHandler.Register)
	auth.Post("/login", g.EnsureGuest, h.AuthHandler.Login)
	auth.Get("/logout", g.EnsureAuth, h.AuthHandler.Logout)
}
