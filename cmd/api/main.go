// @title Quiz Master API
// @version 1.0
// @description Course, chapter and quiz management with timed multiple-choice quizzes.
// @host localhost:8090
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize, or rely on the session cookie.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quizmaster/cmd/api/docs"
	"quizmaster/internal/adapter"
	"quizmaster/internal/cache"
	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/handler"
	"quizmaster/internal/logger"
	"quizmaster/internal/middleware"
	"quizmaster/internal/repository"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()
		if err != nil {
			// Let the error handler write the response so the status is final.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg.GetDSN(), cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL", zap.String("host", cfg.DB.Host), zap.String("database", cfg.DB.DBName))

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db.DB); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	courseRepository := repository.NewSQLXCourseRepository(db)
	chapterRepository := repository.NewSQLXChapterRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	questionRepository := repository.NewSQLXQuestionRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	authService, err := service.NewAuthService(userRepository, cacheAdapter, cfg.JWT, cfg.Admin)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	if err := authService.EnsureAdmin(ctx); err != nil {
		appLogger.Fatal("Failed to ensure admin user", zap.Error(err))
	}
	catalogService := service.NewCatalogService(userRepository, courseRepository, chapterRepository, quizRepository, questionRepository)
	contentService := service.NewContentService(courseRepository, chapterRepository, quizRepository, questionRepository, attemptRepository, txManager)
	quizService := service.NewQuizService(courseRepository, chapterRepository, quizRepository, questionRepository, attemptRepository, cacheAdapter)
	statsService := service.NewStatsService(userRepository, attemptRepository, cacheAdapter, cfg.Stats.CacheTTL)

	handlers := handler.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.JWT),
		Catalog: handler.NewCatalogHandler(catalogService),
		Content: handler.NewContentHandler(contentService),
		Quiz:    handler.NewQuizHandler(quizService),
		Stats:   handler.NewStatsHandler(statsService),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"database": db.PingContext,
			"cache":    cacheAdapter.Ping,
		}),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	handler.RegisterRoutes(app, handlers, authService, cfg.JWT.CookieName)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
