package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coursehub/domain/dto"
	"coursehub/domain/services"
	"coursehub/pkg/logger"
	"coursehub/pkg/utils"
)

type AuthHandler struct {
	userService    services.UserService
	sessionService services.SessionService
	cookieName     string
	cookieSecure   bool
}

func NewAuthHandler(userService services.UserService, sessionService services.SessionService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		cookieName:     cookieName,
		cookieSecure:   cookieSecure,
	}
}

// ShowLogin หน้า landing สำหรับ guest
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{}, "layouts/login")
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Register: bad form body", "error", err)
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "Invalid form submission",
		}, "layouts/login")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error":       "Please check the form",
			"FieldErrors": fieldErrors,
		}, "layouts/login")
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusConflict).Render("login", fiber.Map{
			"Error": "Could not create the account",
		}, "layouts/login")
	}

	sid, err := h.sessionService.Start(ctx, user)
	if err != nil {
		return renderServerError(c)
	}

	h.setSessionCookie(c, sid)
	return c.Redirect("/courses", fiber.StatusFound)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Login: bad form body", "error", err)
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "Invalid form submission",
		}, "layouts/login")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "Email and password are required",
		}, "layouts/login")
	}

	user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Error": "Invalid email or password",
		}, "layouts/login")
	}

	sid, err := h.sessionService.Start(ctx, user)
	if err != nil {
		return renderServerError(c)
	}

	h.setSessionCookie(c, sid)
	return c.Redirect("/courses", fiber.StatusFound)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(h.cookieName)
	if sid != "" {
		if err := h.sessionService.Destroy(c.UserContext(), sid); err != nil {
			logger.WarnContext(c.UserContext(), "Logout: failed to destroy session", "error", err)
		}
	}

	c.ClearCookie(h.cookieName)
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    sid,
		Expires:  time.Now().Add(h.sessionService.TTL()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
