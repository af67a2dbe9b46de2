package subjects

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
	"github.com/Chirag-c499/result-menegment-system/app/routes/auth"
)

var validate = validator.New()

type Handler struct {
	Guard *auth.Guard
	Store *database.Store
}

func (h *Handler) GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := h.Store.ListSubjects(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func (h *Handler) GetSubjectAPI(c *fiber.Ctx) error {
	subject, err := h.Store.GetSubjectByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}
	return c.JSON(subject)
}

type CreateSubjectRequest struct {
	SubCode string `json:"sub_code" form:"sub_code" validate:"required"`
	SubName string `json:"sub_name" form:"sub_name" validate:"required"`
}

// CreateSubjectAPI adds a subject. Admin only; the sub_code uniqueness
// check is the database constraint, surfaced as a 409.
func (h *Handler) CreateSubjectAPI(c *fiber.Ctx) error {
	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.SubCode = strings.TrimSpace(req.SubCode)
	req.SubName = strings.TrimSpace(req.SubName)
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	subject := &models.Subject{SubCode: req.SubCode, SubName: req.SubName}
	if err := h.Store.CreateSubject(c.Context(), subject); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Subject code already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subject added successfully.",
		"subject": subject,
	})
}
