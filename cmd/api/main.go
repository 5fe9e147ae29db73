package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/config"
	"github.com/vitrine-app/storefront/internal/auth"
	"github.com/vitrine-app/storefront/internal/db"
	"github.com/vitrine-app/storefront/internal/httpserver"
	"github.com/vitrine-app/storefront/internal/middleware"

	contentH "github.com/vitrine-app/storefront/internal/content/handler"
	contentRepoPkg "github.com/vitrine-app/storefront/internal/content/repository"
	contentUCPkg "github.com/vitrine-app/storefront/internal/content/usecase"

	favH "github.com/vitrine-app/storefront/internal/favorite/handler"
	favRepoPkg "github.com/vitrine-app/storefront/internal/favorite/repository"
	favUCPkg "github.com/vitrine-app/storefront/internal/favorite/usecase"

	prodH "github.com/vitrine-app/storefront/internal/product/handler"
	prodRepoPkg "github.com/vitrine-app/storefront/internal/product/repository"
	prodUCPkg "github.com/vitrine-app/storefront/internal/product/usecase"

	revH "github.com/vitrine-app/storefront/internal/review/handler"
	revRepoPkg "github.com/vitrine-app/storefront/internal/review/repository"
	revUCPkg "github.com/vitrine-app/storefront/internal/review/usecase"

	userH "github.com/vitrine-app/storefront/internal/user/handler"
	userRepoPkg "github.com/vitrine-app/storefront/internal/user/repository"
	userUCPkg "github.com/vitrine-app/storefront/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	// 3. Connect to Database
	database, err := db.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer database.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelMigrate()
	if err := db.Migrate(migrateCtx, database); err != nil {
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}

	// 4. Initialize Auth
	jwtManager, err := auth.NewJWTManager(&cfg.JWT)
	if err != nil {
		appLogger.Fatal("Could not initialize JWT manager", zap.Error(err))
	}

	// 5. Initialize Repositories
	userRepo := userRepoPkg.NewPGRepository(database)
	prodRepo := prodRepoPkg.NewPGRepository(database)
	revRepo := revRepoPkg.NewPGRepository(database)
	favRepo := favRepoPkg.NewPGRepository(database)
	contentRepo := contentRepoPkg.NewPGRepository(database)

	// 6. Initialize UseCases
	userUC := userUCPkg.NewUserUseCase(userRepo, jwtManager, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	revUC := revUCPkg.NewReviewUseCase(revRepo, appLogger)
	favUC := favUCPkg.NewFavoriteUseCase(favRepo, appLogger)
	contentUC := contentUCPkg.NewContentUseCase(contentRepo, appLogger)

	// 7. Initialize Handlers and Router
	handlers := httpserver.Handlers{
		User:     userH.NewUserHandler(userUC, appLogger),
		Product:  prodH.NewProductHandler(prodUC, appLogger),
		Review:   revH.NewReviewHandler(revUC, appLogger),
		Favorite: favH.NewFavoriteHandler(favUC, appLogger),
		Content:  contentH.NewContentHandler(contentUC, appLogger),
	}
	authn := middleware.NewAuthenticator(jwtManager, userUC, appLogger)
	router := httpserver.NewRouter(handlers, authn, &cfg.CORS, appLogger)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zapCfg zap.Config
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Encoding = cfg.Logger.Encoding
	if level, err := zap.ParseAtomicLevel(cfg.Logger.Level); err == nil {
		zapCfg.Level = level
	}
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
