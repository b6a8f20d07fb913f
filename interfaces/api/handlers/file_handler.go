package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"coursehub/domain/errs"
	"coursehub/domain/services"
	"coursehub/pkg/logger"
)

// ชื่อ field เดียวที่ upload form ใช้
const uploadFieldName = "myfile"

type FileHandler struct {
	fileService services.FileService
}

func NewFileHandler(fileService services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// UploadForm หน้า form แนบไฟล์ให้ story
func (h *FileHandler) UploadForm(c *fiber.Ctx) error {
	story, err := h.fileService.GetStoryForUpload(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderNotFound(c)
	}

	return c.Render("stories/addfile", fiber.Map{
		"Story": story,
	}, "layouts/main")
}

// Upload รับไฟล์เดียวจาก multipart form แล้วแนบ download link เข้า story
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()
	storyID := c.Params("id")

	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		logger.WarnContext(ctx, "Upload: no file provided", "story_id", storyID, "error", err)
		return c.Status(fiber.StatusBadRequest).Render("error/500", fiber.Map{
			"Message": "No file provided",
		})
	}

	result, err := h.fileService.Upload(ctx, storyID, fileHeader)
	if err != nil {
		if errs.IsNotFound(err) {
			return renderNotFound(c)
		}
		if errs.IsUploadRejected(err) {
			return c.Status(fiber.StatusRequestEntityTooLarge).Render("error/500", fiber.Map{
				"Message": "File is too large",
			})
		}
		logger.ErrorContext(ctx, "Upload failed", "story_id", storyID, "error", err)
		return renderServerError(c)
	}

	logger.InfoContext(ctx, "Upload complete", "story_id", storyID, "token", result.Token)
	return c.Redirect(fmt.Sprintf("/course/%s/dashboard", result.CourseID.Hex()), fiber.StatusFound)
}

// Download stream ไฟล์ตาม token; story id ใน path ไม่ใช้ตัดสินสิทธิ์
func (h *FileHandler) Download(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := c.Params("uuid")

	file, content, err := h.fileService.Download(ctx, token)
	if err != nil {
		// token ไม่ match = link ใช้ไม่ได้แล้ว
		return renderNotFound(c)
	}
	defer content.Close()

	c.Attachment(file.OriginalName)
	c.Set(fiber.HeaderContentLength, fmt.Sprintf("%d", file.Size))
	return c.SendStream(content)
}
