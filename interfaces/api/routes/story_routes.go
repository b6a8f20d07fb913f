package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/interfaces/api/handlers"
)

func SetupStoryRoutes(course fiber.Router, h *handlers.Handlers, g *Gates) {
	// single story (ลงทะเบียนหลัง file routes แล้ว "stories" เป็น literal match)
	course.Get("/stories/edit/:id", g.EnsureAuth, h.StoryHandler.EditForm)
	course.Get("/stories/:id", g.EnsureAuth, h.StoryHandler.Show)
	course.Put("/stories/:id", g.EnsureAuth, h.StoryHandler.Update)
	course.Delete("/stories/:id", g.EnsureAuth, h.StoryHandler.Delete)

	// per-course routes (:id คือ course id)
	course.Get("/:id/add", g.EnsureAuth, h.StoryHandler.AddForm)
	course.Post("/:id/stories", g.EnsureAuth, h.StoryHandler.Create)
	course.Get("/:id/stories", g.EnsureAuth, h.StoryHandler.ListPublic)
	course.Get("/:id/user/:userId", g.EnsureAuth, h.StoryHandler.ListByUser)
}
