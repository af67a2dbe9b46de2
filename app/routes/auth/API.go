package auth

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
)

var validate = validator.New()

// Handler serves the authentication endpoints.
type Handler struct {
	Guard     *Guard
	Store     *database.Store
	UploadDir string
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	RollNo   string `json:"roll_no" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type"`
}

// SignupAPI registers a new account from the multipart register form.
// The optional profile image is stored under UploadDir with a random
// filename; only the filename is persisted.
func (h *Handler) SignupAPI(c *fiber.Ctx) error {
	req := SignupRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		RollNo:   c.FormValue("roll_no"),
		Password: c.FormValue("password"),
		UserType: c.FormValue("user_type"),
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userType, err := models.ParseUserType(req.UserType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user type"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	filename, err := SaveProfileImage(c, h.UploadDir)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		RollNo:   req.RollNo,
		Password: hashedPassword,
		Image:    filename,
		UserType: userType,
	}

	if err := h.Store.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email or roll number already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create account"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful! Please log in.",
		"user":    user,
	})
}

func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, token, err := h.Guard.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	// Bearer token for API clients that do not carry cookies.
	apiToken, err := GenerateJWT(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Logged in successfully!",
		"user":    user,
		"token":   apiToken,
	})
}

func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if err := h.Guard.Logout(c.Context(), c.Cookies(SessionCookie)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Logout failed"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	if isAPIRequest(c) {
		return c.JSON(fiber.Map{"message": "Logged out successfully."})
	}
	return c.Redirect("/auth/login")
}

func (h *Handler) ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user := UserFromCtx(c)
	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := h.Store.UpdateUserPassword(c.Context(), user.ID, hashedPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// SaveProfileImage stores an uploaded "image" form file under dir with a
// random filename and returns the filename. No file in the form is not
// an error; it returns "". File type and size are the transport layer's
// concern and are not validated here.
func SaveProfileImage(c *fiber.Ctx, dir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}
