package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/interfaces/api/handlers"
)

func SetupFileRoutes(course fiber.Router, h *handlers.Handlers, g *Gates) {
	// ทั้งสามเส้นนี้อยู่หลัง FileGate: default คือต้อง login
	// (ตั้ง FILE_ROUTES_REQUIRE_AUTH=false ถ้าจะเปิดเป็น public share links)
	course.Get("/stories/files/:id", g.FileGate, h.FileHandler.UploadForm)
	course.Post("/stories/files/:id", g.FileGate, h.FileHandler.Upload)
	course.Get("/stories/:id/files/:uuid", g.FileGate, h.FileHandler.Download)
}
