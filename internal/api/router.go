package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ljacquet/patrimoine-backend/internal/api/handlers"
	custommiddleware "github.com/ljacquet/patrimoine-backend/internal/api/middleware"
	"github.com/ljacquet/patrimoine-backend/internal/config"
	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// Services bundles everything the router needs wired in.
type Services struct {
	System       *service.SystemService
	User         *service.UserService
	Dashboard    *service.DashboardService
	Asset        *service.AssetService
	Valuation    *service.ValuationService
	Transaction  *service.TransactionService
	Goal         *service.GoalService
	Alert        *service.AlertService
	Simulation   *service.SimulationService
	Dividend     *service.DividendService
	Analysis     *service.AnalysisService
	ImportExport *service.ImportExportService
	AutoTrade    *service.AutoTradeService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Everything below acts on behalf of a resolved user.
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.UserContext(svc.User))

			r.Route("/user", func(r chi.Router) {
				userHandler := handlers.NewUserHandler(svc.User)
				r.Get("/", userHandler.Profile)
				r.Put("/language", userHandler.UpdateLanguage)
			})

			r.Route("/dashboard", func(r chi.Router) {
				dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
				r.Get("/", dashboardHandler.Dashboard)
			})

			r.Route("/assets", func(r chi.Router) {
				assetHandler := handlers.NewAssetHandler(svc.Asset, svc.Valuation)
				r.Get("/", assetHandler.Assets)
				r.Post("/", assetHandler.CreateAsset)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", assetHandler.UpdateAsset)
					r.Delete("/", assetHandler.DeleteAsset)
				})
			})

			r.Route("/transactions", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
				r.Get("/", transactionHandler.Transactions)
			})

			r.Route("/goals", func(r chi.Router) {
				goalHandler := handlers.NewGoalHandler(svc.Goal)
				r.Get("/", goalHandler.Goals)
				r.Post("/", goalHandler.CreateGoal)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", goalHandler.UpdateGoal)
					r.Delete("/", goalHandler.DeleteGoal)
				})
			})

			r.Route("/alerts", func(r chi.Router) {
				alertHandler := handlers.NewAlertHandler(svc.Alert)
				r.Get("/", alertHandler.Alerts)
				r.Post("/", alertHandler.CreateAlert)
				r.Get("/check", alertHandler.CheckAlerts)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Delete("/", alertHandler.DeleteAlert)
				})
			})

			r.Route("/simulations", func(r chi.Router) {
				simulationHandler := handlers.NewSimulationHandler(svc.Simulation)
				r.Get("/", simulationHandler.Simulations)
				r.Post("/", simulationHandler.CreateSimulation)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Post("/refresh", simulationHandler.RefreshSimulation)
					r.Delete("/", simulationHandler.DeleteSimulation)
				})
			})

			r.Route("/dividends", func(r chi.Router) {
				dividendHandler := handlers.NewDividendHandler(svc.Dividend)
				r.Get("/", dividendHandler.Dividends)
				r.Post("/", dividendHandler.CreateDividend)
			})

			r.Route("/analysis", func(r chi.Router) {
				analysisHandler := handlers.NewAnalysisHandler(svc.Analysis)
				r.Get("/", analysisHandler.Analysis)
			})

			r.Route("/portfolio", func(r chi.Router) {
				impexpHandler := handlers.NewImportExportHandler(svc.ImportExport)
				r.Get("/export", impexpHandler.Export)
				r.Get("/template", impexpHandler.Template)
				r.Post("/import", impexpHandler.Import)
			})

			r.Route("/autotrade", func(r chi.Router) {
				autoTradeHandler := handlers.NewAutoTradeHandler(svc.AutoTrade)
				r.Get("/settings", autoTradeHandler.Settings)
				r.Put("/settings", autoTradeHandler.UpdateSettings)
				r.Get("/stats", autoTradeHandler.Stats)
				r.Get("/credentials", autoTradeHandler.Credentials)
				r.Post("/connect", autoTradeHandler.ConnectExchange)
			})
		})
	})

	return r
}
