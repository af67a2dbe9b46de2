package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

func SetupResultsRoutes(app *fiber.App, h *Handler) {
	adminOnly := h.Guard.RequireType(models.UserTypeAdmin)

	pages := app.Group("/results")
	pages.Use(h.Guard.Middleware())
	pages.Get("/declare", adminOnly, h.DeclareResultPage)

	api := app.Group("/api/results")
	api.Use(h.Guard.Middleware())
	api.Get("/", h.GetResultsAPI)
	api.Get("/export", adminOnly, h.ExportResultsAPI)
	api.Get("/:id", h.GetResultAPI)
	api.Post("/", adminOnly, h.DeclareResultAPI)
}

// DeclareResultPage renders the declaration form: a student picker and
// one marks/total row per subject.
func (h *Handler) DeclareResultPage(c *fiber.Ctx) error {
	students, err := h.Store.ListUsersByType(c.Context(), models.UserTypeStudent)
	if err != nil {
		students = []*models.User{}
	}
	subjects, err := h.Store.ListSubjects(c.Context())
	if err != nil {
		subjects = []*models.Subject{}
	}

	return c.Render("results/declare", fiber.Map{
		"Title":       "Declare Result - Result Management",
		"CurrentPage": "declare",
		"user":        c.Locals("user"),
		"students":    students,
		"subjects":    subjects,
	})
}
