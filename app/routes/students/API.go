package students

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
	"github.com/Chirag-c499/result-menegment-system/app/routes/auth"
)

var validate = validator.New()

type Handler struct {
	Guard     *auth.Guard
	Store     *database.Store
	UploadDir string
}

// GetStudentsAPI lists student accounts for the admin views.
func (h *Handler) GetStudentsAPI(c *fiber.Ctx) error {
	students, err := h.Store.ListUsersByType(c.Context(), models.UserTypeStudent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

type UpdateProfileRequest struct {
	Name   string `json:"name" form:"name" validate:"required"`
	RollNo string `json:"roll_no" form:"roll_no" validate:"required"`
}

// UpdateProfileAPI updates the caller's mutable profile fields (name,
// roll number, optional image). Email and user type never change here.
func (h *Handler) UpdateProfileAPI(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filename, err := auth.SaveProfileImage(c, h.UploadDir)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	user := auth.UserFromCtx(c)
	if err := h.Store.UpdateUser(c.Context(), user.ID, req.Name, req.RollNo, filename); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Roll number already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully."})
}

// DeleteProfileAPI removes the caller's account. Owned results and their
// items go with it via the cascade, and the session is invalidated.
func (h *Handler) DeleteProfileAPI(c *fiber.Ctx) error {
	user := auth.UserFromCtx(c)

	if err := h.Store.DeleteUser(c.Context(), user.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete profile"})
	}

	// The users->sessions cascade may already have removed the binding.
	_ = h.Guard.Logout(c.Context(), c.Cookies(auth.SessionCookie))

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Profile deleted."})
}
