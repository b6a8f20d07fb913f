package handlers

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/domain/errs"
	"coursehub/domain/services"
)

// Services รวม dependency ที่ handler ต้องใช้ (มาจาก DI container)
type Services struct {
	UserService    services.UserService
	SessionService services.SessionService
	CourseService  services.CourseService
	StoryService   services.StoryService
	FileService    services.FileService

	SessionCookieName   string
	SessionCookieSecure bool
}

type Handlers struct {
	AuthHandler   *AuthHandler
	CourseHandler *CourseHandler
	StoryHandler  *StoryHandler
	FileHandler   *FileHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		AuthHandler:   NewAuthHandler(s.UserService, s.SessionService, s.SessionCookieName, s.SessionCookieSecure),
		CourseHandler: NewCourseHandler(s.CourseService),
		StoryHandler:  NewStoryHandler(s.StoryService),
		FileHandler:   NewFileHandler(s.FileService),
	}
}

// ========== Shared view helpers ==========

// ทุก failure จบที่หน้า error ที่ render แล้ว ไม่มี JSON payload หลุดออกไป

func renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("error/404", fiber.Map{})
}

func renderServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).Render("error/500", fiber.Map{})
}

// renderError map tagged error จาก service เป็น response เดียวกันทั้งแอป
func renderError(c *fiber.Ctx, err error) error {
	if errs.IsNotFound(err) {
		return renderNotFound(c)
	}
	return renderServerError(c)
}
