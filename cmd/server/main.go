package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vehicle-finance.backend/internal/config"
	"vehicle-finance.backend/internal/infrastructure/localstore"
	"vehicle-finance.backend/internal/infrastructure/ocr"
	"vehicle-finance.backend/internal/infrastructure/repositories"
	"vehicle-finance.backend/internal/infrastructure/sheetsync"
	"vehicle-finance.backend/internal/interfaces/http/handlers"
	"vehicle-finance.backend/internal/interfaces/http/middleware"
	"vehicle-finance.backend/internal/usecases"
	"vehicle-finance.backend/pkg/logger"
	redispkg "vehicle-finance.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(driver, dsn string) (*gorm.DB, error) {
		if driver == "postgres" {
			return gorm.Open(postgres.New(postgres.Config{
				DSN:                  dsn,
				PreferSimpleProtocol: true,
			}), &gorm.Config{})
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	newRedisClient = redispkg.New
	runServer      = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB       = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis backs the idempotency middleware; the server runs without it
	redisClient, err := newRedisClient(cfg.Redis.URL, cfg.Redis.Password)
	if err != nil {
		logger.Warn(context.Background(), "Redis unavailable, idempotency disabled", zap.Error(err))
		redisClient = nil
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local store
	db, err := openDB(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	store, err := localstore.New(db)
	if err != nil {
		return fmt.Errorf("failed to initialize local store: %w", err)
	}

	// Initialize repositories
	leadRepo := repositories.NewLeadRepository(context.Background(), store)

	// Initialize the sheet replication pipeline
	tracker := sheetsync.NewTracker(cfg.Sync.IndicatorReset)
	replicator := sheetsync.NewSheetReplicator(cfg.Sync.ScriptURL, cfg.Sync.Timeout, tracker)
	if cfg.Sync.ScriptURL == "" {
		logger.Warn(context.Background(), "SYNC_SCRIPT_URL not set, remote replication disabled")
	}

	// Initialize the document extractor
	extractor := ocr.NewGeminiExtractor(cfg.OCR)
	if cfg.OCR.APIKey == "" {
		logger.Warn(context.Background(), "OCR_API_KEY not set, document extraction will fail")
	}

	// Initialize usecases
	leadUsecase := usecases.NewLeadUsecase(leadRepo, replicator)
	extractionUsecase := usecases.NewExtractionUsecase(extractor)
	viewRouter := usecases.NewViewRouter(leadRepo)

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadUsecase)
	extractionHandler := handlers.NewExtractionHandler(extractionUsecase)
	syncHandler := handlers.NewSyncHandler(tracker)
	viewHandler := handlers.NewViewHandler(viewRouter)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		leadHandler:       leadHandler,
		extractionHandler: extractionHandler,
		syncHandler:       syncHandler,
		viewHandler:       viewHandler,
		idempotency:       middleware.IdempotencyMiddleware(redisClient),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
	}()

	// Start server
	log.Printf("Vehicle Finance backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
