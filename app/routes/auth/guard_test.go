package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
)

// stubUsers is an in-memory UserSource for guard tests.
type stubUsers struct {
	users map[string]*models.User // keyed by ID
}

func (s *stubUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, database.ErrNotFound
}

func (s *stubUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, database.ErrNotFound
}

func newTestGuard(t *testing.T) (*Guard, *stubUsers) {
	t.Helper()

	// MinCost keeps the suite fast; CheckPasswordHash does not care.
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUsers{users: map[string]*models.User{
		"student-1": {
			ID:       "student-1",
			Name:     "Asha",
			Email:    "asha@example.com",
			RollNo:   "R1",
			Password: string(hash),
			UserType: models.UserTypeStudent,
		},
		"admin-1": {
			ID:       "admin-1",
			Name:     "Head",
			Email:    "head@example.com",
			RollNo:   "ADMIN-1",
			Password: string(hash),
			UserType: models.UserTypeAdmin,
		},
	}}
	return NewGuard(NewMemorySessionStore(), users), users
}

func TestGuardLoginAndCurrentUser(t *testing.T) {
	ctx := context.Background()
	guard, _ := newTestGuard(t)

	user, token, err := guard.Login(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "student-1", user.ID)

	resolved, err := guard.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resolved.Email)
}

func TestGuardLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	guard, _ := newTestGuard(t)

	// Wrong password and unknown email are indistinguishable.
	_, _, err := guard.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = guard.Login(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGuardLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	guard, _ := newTestGuard(t)

	_, token, err := guard.Login(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, guard.Logout(ctx, token))

	_, err = guard.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGuardCurrentUserAfterAccountDeletion(t *testing.T) {
	ctx := context.Background()
	guard, users := newTestGuard(t)

	_, token, err := guard.Login(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)

	delete(users.users, "student-1")

	_, err = guard.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRequireRole(t *testing.T) {
	student := &models.User{UserType: models.UserTypeStudent}
	admin := &models.User{UserType: models.UserTypeAdmin}

	assert.NoError(t, RequireRole(admin, models.UserTypeAdmin))
	assert.ErrorIs(t, RequireRole(student, models.UserTypeAdmin), ErrForbidden)
	assert.ErrorIs(t, RequireRole(nil, models.UserTypeAdmin), ErrUnauthenticated)
}

func TestGuardCurrentUserEmptyToken(t *testing.T) {
	guard, _ := newTestGuard(t)
	_, err := guard.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func newTestApp(guard *Guard) *fiber.App {
	app := fiber.New()
	app.Get("/api/me", guard.Middleware(), func(c *fiber.Ctx) error {
		return c.JSON(UserFromCtx(c))
	})
	app.Get("/api/admin", guard.Middleware(), guard.RequireType(models.UserTypeAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/page", guard.Middleware(), func(c *fiber.Ctx) error {
		return c.SendString("page")
	})
	return app
}

func loginCookie(t *testing.T, guard *Guard, email string) *http.Cookie {
	t.Helper()
	_, token, err := guard.Login(context.Background(), email, "correct-horse")
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookie, Value: token}
}

func TestMiddlewareRejectsAnonymousAPIRequest(t *testing.T) {
	guard, _ := newTestGuard(t)
	app := newTestApp(guard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRedirectsAnonymousPageRequest(t *testing.T) {
	guard, _ := newTestGuard(t)
	app := newTestApp(guard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/page", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}

func TestMiddlewareAcceptsSessionCookie(t *testing.T) {
	guard, _ := newTestGuard(t)
	app := newTestApp(guard)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(loginCookie(t, guard, "asha@example.com"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareAcceptsBearerToken(t *testing.T) {
	guard, users := newTestGuard(t)
	app := newTestApp(guard)

	token, err := GenerateJWT(users.users["student-1"])
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireTypeForbidsStudents(t *testing.T) {
	guard, _ := newTestGuard(t)
	app := newTestApp(guard)

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.AddCookie(loginCookie(t, guard, "asha@example.com"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireTypeAllowsAdmins(t *testing.T) {
	guard, _ := newTestGuard(t)
	app := newTestApp(guard)

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.AddCookie(loginCookie(t, guard, "head@example.com"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
