package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserSource resolves authenticated identities to user rows.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Guard resolves the current user from a session token and enforces
// login and role requirements on routes.
type Guard struct {
	sessions SessionStore
	users    UserSource
}

func NewGuard(sessions SessionStore, users UserSource) *Guard {
	return &Guard{sessions: sessions, users: users}
}

// CurrentUser resolves a session token to a user. It returns
// ErrUnauthenticated when the token has no binding or the bound user no
// longer exists (account deleted with the session still live).
func (g *Guard) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := g.sessions.SessionUserID(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNoSession) || errors.Is(err, database.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	user, err := g.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and opens a session. An unknown email and a
// wrong password both come back as ErrInvalidCredentials, without
// revealing which one failed.
func (g *Guard) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := g.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := g.sessions.CreateSession(ctx, user.ID, SessionTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates the session binding unconditionally.
func (g *Guard) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return g.sessions.DeleteSession(ctx, token)
}

// Middleware authenticates the request and stores the user in Locals.
// It tries the session cookie first, then a Bearer JWT for API clients.
// Unauthenticated API requests get a 401; page requests are redirected
// to the login form.
func (g *Guard) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := g.CurrentUser(c.Context(), c.Cookies(SessionCookie))
		if errors.Is(err, ErrUnauthenticated) {
			user, err = g.userFromBearer(c)
		}
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				if isAPIRequest(c) {
					return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
				}
				return c.Redirect("/auth/login")
			}
			return err
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID)
		return c.Next()
	}
}

// RequireRole checks that user may act as the given account type.
func RequireRole(user *models.User, userType models.UserType) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if user.UserType != userType {
		return ErrForbidden
	}
	return nil
}

// RequireType rejects authenticated users whose account type does not
// match. Must run after Middleware.
func (g *Guard) RequireType(userType models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := RequireRole(UserFromCtx(c), userType); err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				return fiber.ErrUnauthorized
			}
			if isAPIRequest(c) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
			}
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}

func (g *Guard) userFromBearer(c *fiber.Ctx) (*models.User, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, ErrUnauthenticated
	}

	claims, err := ValidateJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := g.users.GetUserByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// UserFromCtx returns the authenticated user set by Middleware.
func UserFromCtx(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
