package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oclettings/oc-lettings-site/config"
	"github.com/oclettings/oc-lettings-site/internal/app/controller"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	"github.com/oclettings/oc-lettings-site/internal/db"
	"github.com/oclettings/oc-lettings-site/internal/router"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Log.Format == "console",
		FilePath:    cfg.Log.FilePath,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	})

	logger.Info("Starting Orange County Lettings", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"db_driver":   cfg.Database.Driver,
		"log_level":   cfg.Log.Level,
	})

	// Initialize error monitoring
	if cfg.Sentry.Enabled() {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Server.Environment,
			EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
			AttachStacktrace: true,
		}); err != nil {
			logger.Fatal("Failed to initialize Sentry", err)
		}
		defer sentry.Flush(2 * time.Second)
		logger.Info("Sentry initialized")
	}

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	addressRepo := repository.NewAddressRepository(db.GetDB())
	lettingRepo := repository.NewLettingRepository(db.GetDB())
	userRepo := repository.NewUserRepository(db.GetDB())
	profileRepo := repository.NewProfileRepository(db.GetDB())

	// Initialize services
	lettingService := service.NewLettingService(lettingRepo)
	profileService := service.NewProfileService(profileRepo, userRepo)
	adminService := service.NewAdminService(addressRepo, lettingRepo, userRepo, profileRepo)

	// Initialize controllers
	homeController := controller.NewHomeController()
	lettingController := controller.NewLettingController(lettingService)
	profileController := controller.NewProfileController(profileService)
	adminController := controller.NewAdminController(adminService)

	// Setup router
	r := router.NewRouter(
		homeController,
		lettingController,
		profileController,
		adminController,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...", map[string]interface{}{
		"timeout": cfg.Server.ShutdownTimeout.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shut down", err)
		return
	}

	logger.Info("Server stopped successfully")
}
