package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/api"
	"github.com/ljacquet/patrimoine-backend/internal/coingecko"
	"github.com/ljacquet/patrimoine-backend/internal/config"
	"github.com/ljacquet/patrimoine-backend/internal/database"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/scheduler"
	"github.com/ljacquet/patrimoine-backend/internal/security"
	"github.com/ljacquet/patrimoine-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	vault, err := security.NewVault(cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize credential vault: %v", err)
	}

	gecko := coingecko.NewPriceClient(cfg.CoinGecko.BaseURL)

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	simulationRepo := repository.NewSimulationRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	autoTradeRepo := repository.NewAutoTradeRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	userService := service.NewUserService(userRepo)
	valuationService := service.NewValuationService(gecko)
	snapshotService := service.NewSnapshotService(db, snapshotRepo, nil)
	dashboardService := service.NewDashboardService(assetRepo, valuationService, snapshotService)
	assetService := service.NewAssetService(assetRepo, transactionRepo, gecko)
	transactionService := service.NewTransactionService(transactionRepo)
	goalService := service.NewGoalService(goalRepo)
	alertService := service.NewAlertService(alertRepo, gecko)
	simulationService := service.NewSimulationService(simulationRepo, gecko)
	dividendService := service.NewDividendService(dividendRepo)
	analysisService := service.NewAnalysisService(assetRepo, valuationService)
	impexpService := service.NewImportExportService(assetRepo, transactionRepo)
	autoTradeService := service.NewAutoTradeService(autoTradeRepo, transactionRepo, vault)

	// Provision the default account so the API is usable immediately.
	defaultUser, err := userService.EnsureDefaultUser()
	if err != nil {
		log.Fatalf("Failed to provision default user: %v", err)
	}
	log.Printf("Default user ready: %s", defaultUser.Username)

	// Start the daily snapshot job
	jobs, err := scheduler.New(cfg.Snapshot.CronSchedule, userService, dashboardService)
	if err != nil {
		log.Fatalf("Failed to set up scheduler: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:       systemService,
		User:         userService,
		Dashboard:    dashboardService,
		Asset:        assetService,
		Valuation:    valuationService,
		Transaction:  transactionService,
		Goal:         goalService,
		Alert:        alertService,
		Simulation:   simulationService,
		Dividend:     dividendService,
		Analysis:     analysisService,
		ImportExport: impexpService,
		AutoTrade:    autoTradeService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
