package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-leads/internal/infra/database"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASS", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	categoryRepo := database.NewCategoryRepository(db)

	// 2. Collaborator notifications
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, categoryRepo, producer)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, categoryRepo, producer)
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, producer)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, producer)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	dashboardUC := usecase.NewDashboardUseCase(leadRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, producer)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, statusUC, deleteLeadUC, listLeadsUC)
	categoryHandler := handlers.NewCategoryHandler(categoryUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Post("/bulk-status", leadHandler.BulkUpdateStatus)
		r.Get("/tags", leadHandler.Tags)
		r.Get("/cities", leadHandler.Cities)
		r.Get("/status/{status}", leadHandler.ByStatus)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Patch("/{id}/status", leadHandler.UpdateStatus)
		r.Delete("/{id}", leadHandler.Delete)
		r.Post("/{id}/restore", leadHandler.Restore)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
		r.Get("/{id}", categoryHandler.Get)
		r.Put("/{id}", categoryHandler.Update)
		r.Delete("/{id}", categoryHandler.Delete)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", dashboardHandler.Stats)
		r.Get("/recent-activity", dashboardHandler.RecentActivity)
		r.Get("/high-priority", dashboardHandler.HighPriority)
	})

	port := ":" + getenv("PORT", "8080")
	log.Printf("lead pipeline API listening on %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
