package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

func SetupStudentsRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")
	api.Use(h.Guard.Middleware())

	api.Get("/students", h.Guard.RequireType(models.UserTypeAdmin), h.GetStudentsAPI)
	api.Put("/profile", h.UpdateProfileAPI)
	api.Delete("/profile", h.DeleteProfileAPI)

	pages := app.Group("/profile")
	pages.Use(h.Guard.Middleware())
	pages.Get("/update", h.UpdateProfilePage)
}

func (h *Handler) UpdateProfilePage(c *fiber.Ctx) error {
	return c.Render("auth/update_profile", fiber.Map{
		"Title":       "Update Profile - Result Management",
		"CurrentPage": "profile",
		"user":        c.Locals("user"),
	})
}
