package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

func SetupSubjectsRoutes(app *fiber.App, h *Handler) {
	pages := app.Group("/subjects")
	pages.Use(h.Guard.Middleware())
	pages.Get("/", h.Guard.RequireType(models.UserTypeAdmin), h.SubjectsPage)

	api := app.Group("/api/subjects")
	api.Use(h.Guard.Middleware())
	api.Get("/", h.GetSubjectsAPI)
	api.Get("/:id", h.GetSubjectAPI)
	api.Post("/", h.Guard.RequireType(models.UserTypeAdmin), h.CreateSubjectAPI)
}

// SubjectsPage renders the admin add-subject form with the current list.
func (h *Handler) SubjectsPage(c *fiber.Ctx) error {
	subjects, err := h.Store.ListSubjects(c.Context())
	if err != nil {
		subjects = []*models.Subject{}
	}

	return c.Render("subjects/index", fiber.Map{
		"Title":       "Subjects - Result Management",
		"CurrentPage": "subjects",
		"user":        c.Locals("user"),
		"subjects":    subjects,
	})
}
