package auth

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, h *Handler) {
	pages := app.Group("/auth")
	pages.Get("/login", h.ShowLoginPage)
	pages.Get("/register", h.ShowRegisterPage)
	pages.Post("/logout", h.LogoutAPI)

	api := app.Group("/api/auth")
	api.Post("/login", h.LoginAPI)
	api.Post("/signup", h.SignupAPI)
	api.Post("/logout", h.LogoutAPI)

	// Protected routes
	pages.Get("/profile", h.Guard.Middleware(), h.ShowProfilePage)
	api.Post("/change-password", h.Guard.Middleware(), h.ChangePasswordAPI)
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in users go straight to their dashboard.
	if _, err := h.Guard.CurrentUser(c.Context(), c.Cookies(SessionCookie)); err == nil {
		return c.Redirect("/")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Result Management",
	}, "")
}

func (h *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title": "Register - Result Management",
	}, "")
}

func (h *Handler) ShowProfilePage(c *fiber.Ctx) error {
	user := UserFromCtx(c)
	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - Result Management",
		"CurrentPage": "profile",
		"user":        user,
	})
}
