package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"cvstudio/cv-ai-backend/internal/config"
	"cvstudio/cv-ai-backend/internal/handlers"
	"cvstudio/cv-ai-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")
	log.Printf("🔑 API Key: %s\n", checkmark(cfg.HasAPIKey(), "Set", "Missing"))
	log.Printf("📊 Mock Mode: %s\n", checkmark(cfg.Pipeline.MockMode, "Enabled", "Disabled"))
	log.Printf("🤖 AI Processing: %s\n", checkmark(cfg.AIEnabled(), "Enabled", "Disabled"))

	// Resolve document capabilities once; the pipeline treats them as
	// read-only for the process lifetime.
	caps := services.ResolveCapabilities(cfg.Pipeline.PDFProcessing)
	log.Printf("📄 PDF Processing: %s\n", checkmark(caps.PDFProcessing(), "Available", "Disabled"))

	if !cfg.HasAPIKey() && !cfg.Pipeline.MockMode {
		log.Println("⚠️ WARNING: No KIMI_API_KEY set and MOCK_MODE is disabled!")
		log.Println("💡 Set KIMI_API_KEY or enable MOCK_MODE=true")
	}

	// Initialize services
	extractor := services.NewPDFExtractorService()
	renderer := services.NewPDFRendererService()
	prompts := services.NewPromptBuilder()
	moonshot := services.NewMoonshotService(cfg.Moonshot.APIKey, cfg.Moonshot.Endpoint, cfg.Moonshot.Model)
	pipeline := services.NewPipelineService(extractor, renderer, prompts, moonshot, caps, cfg)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	processHandler := handlers.NewProcessHandler(pipeline, cfg.Pipeline.MaxFileSize)
	statusHandler := handlers.NewStatusHandler(cfg, caps, moonshot)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV AI Processing Backend",
		ReadTimeout:  90 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Pipeline.MaxFileSize),
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Preflight for every endpoint returns 200 with an empty body.
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Routes
	app.Get("/status", statusHandler.HandleStatus)
	app.Get("/api/verify-key", statusHandler.HandleVerifyKey)
	app.Post("/api/optimize-cv", processHandler.HandleOptimize)
	app.Post("/api/translate-cv", processHandler.HandleTranslate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV AI Processing Backend",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/optimize-cv",
				"POST /api/translate-cv",
				"GET /api/verify-key",
				"GET /status",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Starting CV AI Backend on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func checkmark(ok bool, yes, no string) string {
	if ok {
		return "✅ " + yes
	}
	return "❌ " + no
}
