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

	"careerpilot/internal/config"
	"careerpilot/internal/handlers"
	"careerpilot/internal/repositories"
	"careerpilot/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	runRepo := repositories.NewRunRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage and extraction
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewExtractorService()
	log.Println("✅ Services initialized successfully")

	// Initialize the completion client
	completion, err := services.NewCompletionService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the benchmark cache when Qdrant is configured
	var cache services.BenchmarkCache
	if cfg.Qdrant.URL != "" {
		cache, err = services.NewBenchmarkCache(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			completion,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := cache.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		log.Println("✅ Qdrant benchmark cache initialized successfully")
	} else {
		log.Println("⚠️  QDRANT_URL not set, benchmark cache disabled")
	}

	// Initialize pipeline stages
	prompts := services.NewPromptBuilder()
	profiler := services.NewProfilerService(completion, prompts)
	benchmark := services.NewBenchmarkService(completion, prompts)
	gaps := services.NewGapService(completion, prompts)
	documents := services.NewDocumentService(completion, prompts)
	consultant := services.NewConsultantService(completion, prompts)
	validator := services.NewValidatorService(completion, prompts)

	pipeline := services.NewPipelineService(
		profiler,
		benchmark,
		gaps,
		documents,
		consultant,
		validator,
		cache,
	)
	log.Println("✅ Pipeline service initialized")

	// Start the run persister
	persister := services.NewRunPersister(runRepo, cfg.Pipeline.PersisterConcurrency)
	persister.Start()

	// Initialize handlers
	pipelineHandler := handlers.NewPipelineHandler(
		pipeline,
		resumeRepo,
		persister,
		cfg.Pipeline.Timeout,
	)
	uploadHandler := handlers.NewUploadHandler(
		resumeRepo,
		storageService,
		extractor,
		cfg.Storage.MaxFileSize,
	)
	runHandler := handlers.NewRunHandler(runRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CareerPilot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Pipeline.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/pipeline", pipelineHandler.HandlePipeline)
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Get("/runs/:id", runHandler.HandleGetRun)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CareerPilot API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/pipeline",
				"POST /api/v1/upload",
				"GET /api/v1/runs/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		persister.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
