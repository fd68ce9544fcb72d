package main

import (
	"context"
	"database/sql"
	"errors"
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
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/api/handlers"
	"github.com/maheshrc27/content-pipeline/internal/api/middleware"
	job "github.com/maheshrc27/content-pipeline/internal/jobs"
	"github.com/maheshrc27/content-pipeline/internal/queue"
	"github.com/maheshrc27/content-pipeline/internal/repository"
	"github.com/maheshrc27/content-pipeline/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db := openDB(cfg.PostgresURI)
	defer closeDB(db)

	historyRepo := repository.NewPostingHistoryRepository(db)
	if err := historyRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to prepare posting history table: %v", err)
	}

	var postRepo repository.PostRepository
	if cfg.Airtable.Token == "" || cfg.Airtable.BaseID == "" {
		log.Println("Warning: AIRTABLE_PAT or AIRTABLE_BASE_ID not set, posts are kept in memory")
		postRepo = repository.NewMemoryPostRepository()
	} else {
		postRepo = repository.NewPostRepository(*cfg, nil)
	}

	openAIService := service.NewOpenAIService(*cfg, nil)
	ayrshareService := service.NewAyrshareService(*cfg, nil)
	mediaService := service.NewMediaService(*cfg, nil)

	postService := service.NewPostService(postRepo, historyRepo)
	contentService := service.NewContentService(*cfg, postRepo, openAIService, mediaService)
	publishService := service.NewPublishService(*cfg, postRepo, historyRepo, ayrshareService)

	var enqueuer queue.Enqueuer
	var client *asynq.Client
	if cfg.RedisURI != "" {
		redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
		client = asynq.NewClient(redisConn)
		defer client.Close()
		enqueuer = client

		queueW := queue.NewQueue(contentService, publishService)
		go func() {
			server := asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 2,
			})

			mux := asynq.NewServeMux()
			queueW.Register(mux)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	} else {
		log.Println("Warning: REDIS_URI not set, autopilot runs are disabled")
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return handlers.Fail(c, code, "Request failed", err)
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	app.Get("/api/health", handlers.Health)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	handlers.RegisterRoutes(api,
		handlers.NewPostHandler(postService),
		handlers.NewContentHandler(*cfg, contentService, publishService, enqueuer))

	if cfg.DashboardDir != "" {
		app.Static("/", cfg.DashboardDir)
	}

	// cron jobs
	c := cron.New()
	if cfg.AutopilotInterval != "" {
		if enqueuer == nil {
			log.Println("Warning: AUTOPILOT_INTERVAL ignored without REDIS_URI")
		} else {
			autopilotJob := job.NewAutopilotJob(*cfg, enqueuer)
			if err := c.AddFunc("@every "+cfg.AutopilotInterval, autopilotJob.PublishReady); err != nil {
				log.Fatalf("Invalid AUTOPILOT_INTERVAL: %v", err)
			}
		}
	}
	recurringJob := job.NewRecurringJob(postRepo)
	if err := c.AddFunc(cfg.RecurringSchedule, recurringJob.CreateDrafts); err != nil {
		log.Fatalf("Invalid RECURRING_SCHEDULE: %v", err)
	}
	c.Start()
	defer c.Stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

// openDB returns nil when no Postgres URI is configured.
func openDB(uri string) *sql.DB {
	if uri == "" {
		log.Println("Warning: POSTGRES_URI not set, posting history is disabled")
		return nil
	}

	db, err := sql.Open("postgres", uri)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}
	return db
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
