package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/interfaces/api/handlers"
)

func SetupCourseRoutes(app *fiber.App, h *handlers.Handlers, g *Gates) {
	app.Get("/courses", g.EnsureAuth, h.CourseHandler.ListCourses)
	app.Get("/course/:id/dashboard", g.EnsureAuth, h.CourseHandler.Dashboard)
}
