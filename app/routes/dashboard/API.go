package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
	"github.com/Chirag-c499/result-menegment-system/app/routes/auth"
)

type Handler struct {
	Guard *auth.Guard
	Store *database.Store
}

func SetupDashboardRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Guard.Middleware(), h.HomePage)
	app.Get("/admin/dashboard",
		h.Guard.Middleware(),
		h.Guard.RequireType(models.UserTypeAdmin),
		h.AdminDashboardPage,
	)
}

// HomePage is the student dashboard: subjects on offer and the
// student's own declared results. Admins land on their own dashboard.
func (h *Handler) HomePage(c *fiber.Ctx) error {
	user := auth.UserFromCtx(c)
	if user.IsAdmin() {
		return c.Redirect("/admin/dashboard")
	}

	subjects, err := h.Store.ListSubjects(c.Context())
	if err != nil {
		subjects = []*models.Subject{}
	}
	results, err := h.Store.ListResultsForStudent(c.Context(), user.ID)
	if err != nil {
		results = []*models.Result{}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Result Management",
		"CurrentPage": "dashboard",
		"user":        user,
		"subjects":    subjects,
		"results":     results,
	})
}

// AdminDashboardPage lists students, subjects, and every declared result.
func (h *Handler) AdminDashboardPage(c *fiber.Ctx) error {
	students, err := h.Store.ListUsersByType(c.Context(), models.UserTypeStudent)
	if err != nil {
		students = []*models.User{}
	}
	subjects, err := h.Store.ListSubjects(c.Context())
	if err != nil {
		subjects = []*models.Subject{}
	}
	results, err := h.Store.ListAllResults(c.Context())
	if err != nil {
		results = []*models.Result{}
	}

	return c.Render("dashboard/admin", fiber.Map{
		"Title":       "Admin Dashboard - Result Management",
		"CurrentPage": "admin",
		"user":        c.Locals("user"),
		"students":    students,
		"subjects":    subjects,
		"results":     results,
	})
}
