package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Chirag-c499/result-menegment-system/app/config"
	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/routes/auth"
	"github.com/Chirag-c499/result-menegment-system/app/routes/dashboard"
	"github.com/Chirag-c499/result-menegment-system/app/routes/results"
	"github.com/Chirag-c499/result-menegment-system/app/routes/students"
	"github.com/Chirag-c499/result-menegment-system/app/routes/subjects"
)

// customErrorHandler maps errors onto JSON for /api requests and the
// error template for web pages.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Result Management",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	cfg := config.Load()

	store, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer store.Close()
	log.Println("Database connected successfully")

	if err := database.RunMigrations(store.DB()); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	sessions := newSessionStore(cfg, store)
	guard := auth.NewGuard(sessions, store)

	engine := html.New("./app/templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Static("/static", "./static")

	auth.SetupAuthRoutes(app, &auth.Handler{Guard: guard, Store: store, UploadDir: cfg.UploadDir})
	dashboard.SetupDashboardRoutes(app, &dashboard.Handler{Guard: guard, Store: store})
	students.SetupStudentsRoutes(app, &students.Handler{Guard: guard, Store: store, UploadDir: cfg.UploadDir})
	subjects.SetupSubjectsRoutes(app, &subjects.Handler{Guard: guard, Store: store})
	results.SetupResultsRoutes(app, &results.Handler{Guard: guard, Store: store})

	log.Printf("Starting server on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// newSessionStore picks the session backend. Postgres reuses the main
// store; Redis keeps sessions out of the database entirely.
func newSessionStore(cfg *config.Config, store *database.Store) auth.SessionStore {
	switch cfg.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		log.Printf("Using Redis session store at %s", cfg.RedisAddr)
		return auth.NewRedisSessionStore(client)
	case "memory":
		log.Println("Using in-memory session store")
		return auth.NewMemorySessionStore()
	default:
		return store
	}
}
