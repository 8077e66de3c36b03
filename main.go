package main

import (
	"log"
	"net/http"

	"timesheet/config"
	"timesheet/database"
	"timesheet/handlers"
	"timesheet/middleware"
	"timesheet/models"
	"timesheet/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	reports := store.NewReportStore(database.GetDB())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	reportHandler := handlers.NewReportHandler(reports)
	projectHandler := handlers.NewProjectHandler()
	exportHandler := handlers.NewExportHandler(reports)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/v1", func(api chi.Router) {
		// Public routes
		api.Post("/login", authHandler.Login)
		api.Post("/register", authHandler.Register)

		// Protected routes
		api.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)

			r.Get("/logout", authHandler.Logout)

			r.Get("/projects", projectHandler.ListProjects)
			r.Get("/projects/{project}/tasks", projectHandler.ListTasks)

			r.Post("/reports", reportHandler.CreateReport)
			r.Get("/reports/{id}", reportHandler.GetReport)
			r.Put("/reports/{id}", reportHandler.UpdateReport)
			r.Put("/reports/{id}/submit", reportHandler.SubmitReport)
			r.Get("/reports/user/{userID}", reportHandler.GetUserWeek)
			r.Get("/reports/status/{status}/user/{userID}", reportHandler.ListUserReportsByStatus)

			// Admin only routes
			r.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireRole(models.RoleAdmin))
				admin.Get("/reports/status/{status}", reportHandler.ListReportsByStatus)
				admin.Put("/reports/{id}/validate", reportHandler.ValidateReport)
				admin.Get("/export/csv", exportHandler.ExportCSV)
				admin.Get("/export/xlsx", exportHandler.ExportXLSX)
			})
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Default admin credentials: admin@localhost / admin")
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
