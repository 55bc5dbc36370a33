package router

import (
	"strings"
	"time"

	"histbench-api/internal/config"
	"histbench-api/internal/handler"
	"histbench-api/internal/middleware"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Question *handler.QuestionHandler
	Media    *handler.MediaHandler
}

// New builds the Fiber application with middleware and routes registered.
func New(cfg *config.Config, h Handlers) *fiber.App {
	readTimeout := cfg.Server.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 20 * time.Second
	}
	writeTimeout := cfg.Server.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 20 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:      "HistBench API",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  20 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	validator := middleware.NewValidationMiddleware()

	app.Get("/", h.Question.Root)
	app.Get("/stats", h.Question.GetStats)
	app.Get("/questions", validator.ValidateQuestionListParams(), h.Question.ListQuestions)
	// Registered before the :task_id route so "index" is not parsed as an id.
	app.Get("/questions/index", h.Question.GetIndex)
	app.Get("/questions/:task_id", validator.ValidateTaskID(), h.Question.GetQuestion)

	if h.Media != nil {
		app.Get("/media-info/*", h.Media.GetInfo)
		app.Get("/media-convert/*", h.Media.Convert)
	}
	if cfg.Media.Dir != "" {
		app.Static("/media", cfg.Media.Dir, fiber.Static{ByteRange: true})
	}

	return app
}
