package handlers

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/domain/services"
	"coursehub/pkg/logger"
	"coursehub/pkg/utils"
)

type CourseHandler struct {
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses หน้ารวม course ทั้งหมด ไม่ paginate
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	courses, err := h.courseService.ListCourses(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list courses", "error", err)
		return renderServerError(c)
	}

	return c.Render("courses", fiber.Map{
		"Name":    user.DisplayName,
		"Courses": courses,
	}, "layouts/course")
}

// Dashboard หน้า course พร้อม story ของ caller ใน course นั้น
func (h *CourseHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	course, stories, err := h.courseService.Dashboard(ctx, c.Params("id"), user.ID)
	if err != nil {
		// course หาย = หน้า error รวม ไม่ใช่ 404 เฉพาะ (พฤติกรรมเดิมของแอป)
		logger.WarnContext(ctx, "Dashboard failed", "course_id", c.Params("id"), "error", err)
		return renderServerError(c)
	}

	return c.Render("dashboard", fiber.Map{
		"Name":    user.DisplayName,
		"Course":  course,
		"Stories": stories,
	}, "layouts/main")
}
