// @title           Renov CRM API
// @version         1.0
// @description     CRM backend for renovation projects - chantiers, devis, factures, prime CEE.

// @contact.name   API Support

// @BasePath  /

// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "backend/docs"
	"backend/handlers"
	"backend/logger"
	"backend/repository"
	"backend/services"
	"backend/storage"
)

var backupCronRunning int32

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:8080",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer", "X-Org-ID",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// runNightlyBackups exports every organization that has a webhook configured.
// A failing org is logged and the others still run.
func runNightlyBackups(store *repository.GormStore, backup *services.BackupService) {
	if !atomic.CompareAndSwapInt32(&backupCronRunning, 0, 1) {
		logger.Warn("previous backup cron still running, skipping this run")
		return
	}
	defer atomic.StoreInt32(&backupCronRunning, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	targets, err := store.ListOrgIDsWithBackupWebhook(ctx)
	if err != nil {
		logger.Error("backup cron: listing organizations failed: %v", err)
		return
	}
	logger.Info("backup cron: %d organization(s) to export", len(targets))

	for orgID, webhookURL := range targets {
		result, err := backup.ExportOrganizationBackup(ctx, orgID, webhookURL, services.BackupOptions{})
		if err != nil {
			logger.Error("backup cron: org %s failed: %v", orgID, err)
			continue
		}
		if result.Success {
			logger.Info("backup cron: org %s exported, %d project(s) in %d chunk(s)", orgID, result.TotalProjects, result.TotalChunks)
		} else {
			logger.Warn("backup cron: org %s partially exported, failed chunks: %v", orgID, result.FailedChunks)
		}
	}
}

func main() {
	logLevel := logger.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		if fileLogger, err := logger.NewWithFileRotation(logLevel, logFile); err == nil {
			logger.SetDefaultLogger(fileLogger)
		}
	} else if consoleLogger, err := logger.New(logLevel); err == nil {
		logger.SetDefaultLogger(consoleLogger)
	}
	defer logger.Sync()

	db, err := storage.InitDB()
	if err != nil {
		logger.Fatal("database init failed: %v", err)
	}

	gormDB, err := storage.InitGormDB()
	if err != nil {
		logger.Fatal("gorm init failed: %v", err)
	}
	if err := storage.AutoMigrate(gormDB); err != nil {
		logger.Fatal("schema migration failed: %v", err)
	}

	store := repository.NewGormStore(gormDB)
	statusSync := &services.StatusSyncService{Store: store}
	invoices := &services.InvoiceService{Store: store}
	backup := &services.BackupService{Store: store}
	emails := services.NewEmailService()
	quotes := &services.QuoteService{Store: store, Mailer: emails}

	// Nightly backup export at 02:30.
	cronRunner := cron.New()
	if _, err := cronRunner.AddFunc("30 2 * * *", func() {
		runNightlyBackups(store, backup)
	}); err != nil {
		logger.Fatal("failed to schedule backup cron: %v", err)
	}
	cronRunner.Start()

	router := gin.Default()
	router.Use(cors.New(CORSConfig()))

	// Authentication and users
	router.POST("/api/login", handlers.LoginHandler(db))
	router.GET("/api/validate_session", handlers.ValidateSessionHandler(db))
	router.POST("/api/logout", handlers.LogoutHandler(db))
	router.POST("/api/refresh_token", handlers.RefreshTokenHandler(db))
	router.POST("/api/users", handlers.CreateUserHandler(db))

	// Projects
	router.POST("/api/projects", handlers.CreateProjectHandler(db, store))
	router.GET("/api/projects", handlers.GetProjectsHandler(db, store))
	router.GET("/api/projects/:id", handlers.GetProjectHandler(db, store))
	router.PUT("/api/projects/:id/status", handlers.UpdateProjectStatusHandler(db, statusSync))
	router.GET("/api/projects/export/xlsx", handlers.ExportProjectsXlsxHandler(db, store))

	// Chantiers
	router.POST("/api/projects/:id/chantiers", handlers.CreateChantierHandler(db, store))
	router.GET("/api/chantiers/:id", handlers.GetChantierHandler(db, store))
	router.PUT("/api/chantiers/:id/status", handlers.UpdateChantierStatusHandler(db, statusSync))
	router.PUT("/api/chantiers/:id/rentability", handlers.UpdateChantierRentabilityHandler(db, store))

	// Quotes and invoices
	router.POST("/api/projects/:id/quotes", handlers.CreateQuoteHandler(db, store))
	router.GET("/api/quotes/:id/pdf", handlers.GenerateQuotePDF(db, store))
	router.POST("/api/quotes/:id/send", handlers.SendQuoteHandler(db, quotes))
	router.POST("/api/projects/:id/invoice", handlers.GenerateInvoiceHandler(db, store, invoices, emails))
	router.GET("/api/projects/:id/invoices", handlers.ListProjectInvoicesHandler(db, store))

	// Prime CEE
	router.POST("/api/prime-cee/estimate", handlers.EstimatePrimeCeeHandler(db, store))

	// Backup
	router.POST("/api/organizations/backup/run", handlers.RunBackupHandler(db, store, backup))
	router.POST("/api/organizations/backup/test", handlers.TestBackupWebhookHandler(db, store, backup))

	// Settings
	router.GET("/api/settings", handlers.GetSettingsHandler(db, store))
	router.PUT("/api/settings", handlers.UpdateSettingsHandler(db, store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		logger.Info("server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	cronCtx := cronRunner.Stop()
	<-cronCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown: %v", err)
	}
}
