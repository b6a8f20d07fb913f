package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/services"
	"coursehub/pkg/logger"
	"coursehub/pkg/utils"
)

type StoryHandler struct {
	storyService services.StoryService
}

func NewStoryHandler(storyService services.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// AddForm หน้า form สร้าง story ใหม่ใต้ course
func (h *StoryHandler) AddForm(c *fiber.Ctx) error {
	return c.Render("stories/add", fiber.Map{
		"CourseID": c.Params("id"),
	}, "layouts/main")
}

// Create สร้าง story ใหม่ แล้วกลับไป dashboard ของ course
func (h *StoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	courseID := c.Params("id")

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	var req dto.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Create story: bad form body", "error", err)
		return renderServerError(c)
	}

	if _, err := h.storyService.Create(ctx, courseID, user.ID, &req); err != nil {
		logger.WarnContext(ctx, "Create story failed", "course_id", courseID, "error", err)
		return renderError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/course/%s/dashboard", courseID), fiber.StatusFound)
}

// ListPublic story สาธารณะทั้งหมดใน course ใหม่สุดก่อน
func (h *StoryHandler) ListPublic(c *fiber.Ctx) error {
	ctx := c.UserContext()
	courseID := c.Params("id")

	stories, err := h.storyService.ListPublic(ctx, courseID)
	if err != nil {
		logger.WarnContext(ctx, "List stories failed", "course_id", courseID, "error", err)
		return renderError(c, err)
	}

	return c.Render("stories/index", fiber.Map{
		"Stories":  stories,
		"CourseID": courseID,
	}, "layouts/main")
}

// ListByUser story สาธารณะของ user คนหนึ่งใน course
func (h *StoryHandler) ListByUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	courseID := c.Params("id")
	userID := c.Params("userId")

	stories, err := h.storyService.ListPublicByUser(ctx, courseID, userID)
	if err != nil {
		logger.WarnContext(ctx, "List user stories failed", "course_id", courseID, "user_id", userID, "error", err)
		return renderError(c, err)
	}

	return c.Render("stories/index", fiber.Map{
		"Stories":  stories,
		"CourseID": courseID,
	}, "layouts/main")
}

// Show story เดี่ยวพร้อมเจ้าของ
func (h *StoryHandler) Show(c *fiber.Ctx) error {
	story, err := h.storyService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderNotFound(c)
	}

	return c.Render("stories/show", fiber.Map{
		"Story": story,
	}, "layouts/main")
}

// EditForm หน้า edit; ไม่ใช่เจ้าของ = redirect ออกไป story list เฉยๆ
func (h *StoryHandler) EditForm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	story, err := h.storyService.GetForEdit(ctx, c.Params("id"), user)
	if err != nil {
		if errs.IsForbidden(err) {
			return c.Redirect(fmt.Sprintf("/course/%s/stories", story.CourseID.Hex()), fiber.StatusFound)
		}
		return renderError(c, err)
	}

	return c.Render("stories/edit", fiber.Map{
		"Story": story,
	}, "layouts/main")
}

// Update full update พร้อม re-validate; ownership guard เหมือน edit
func (h *StoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	storyID := c.Params("id")

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	var req dto.UpdateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Update story: bad form body", "error", err)
		return renderServerError(c)
	}

	story, err := h.storyService.Update(ctx, storyID, user, &req)
	if err != nil {
		if errs.IsForbidden(err) {
			return c.Redirect(fmt.Sprintf("/course/%s/stories", story.CourseID.Hex()), fiber.StatusFound)
		}
		logger.WarnContext(ctx, "Update story failed", "story_id", storyID, "error", err)
		return renderError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/course/%s/dashboard", story.CourseID.Hex()), fiber.StatusFound)
}

// Delete ลบ story ของตัวเอง แล้วกลับ dashboard
func (h *StoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	storyID := c.Params("id")

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	story, err := h.storyService.Delete(ctx, storyID, user)
	if err != nil {
		if errs.IsForbidden(err) {
			return c.Redirect(fmt.Sprintf("/course/%s/stories", story.CourseID.Hex()), fiber.StatusFound)
		}
		logger.WarnContext(ctx, "Delete story failed", "story_id", storyID, "error", err)
		return renderError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/course/%s/dashboard", story.CourseID.Hex()), fiber.StatusFound)
}
