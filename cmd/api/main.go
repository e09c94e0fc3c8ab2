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

	"github.com/udaanx/coldflow/internal/infra/http/handlers"
	"github.com/udaanx/coldflow/internal/infra/http/middleware"
	"github.com/udaanx/coldflow/internal/infra/identity"
	"github.com/udaanx/coldflow/internal/infra/integration/n8n"
	"github.com/udaanx/coldflow/internal/infra/store"
	"github.com/udaanx/coldflow/internal/usecase"
)

func main() {
	godotenv.Load()

	dbPath := os.Getenv("COLDFLOW_DB")
	if dbPath == "" {
		dbPath = "coldflow.db"
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	ids := identity.UUIDGenerator{}
	clock := identity.WallClock{}

	// 1. Repositórios
	accountRepo := store.NewAccountRepository(st, ids)
	batchRepo := store.NewBatchRepository(st)
	activityRepo := store.NewActivityRepository(st)
	settingsRepo := store.NewSettingsRepository(st)

	// 2. Gateway
	dispatcher := n8n.NewClient()

	// 3. UseCases
	importUC := usecase.NewImportBatchUseCase(batchRepo, ids, clock)
	sendUC := usecase.NewSendBatchUseCase(
		batchRepo, accountRepo, settingsRepo, activityRepo,
		dispatcher, ids, clock,
	)

	// 4. Handlers
	fleetHandler := handlers.NewFleetHandler(accountRepo)
	batchHandler := handlers.NewBatchHandler(batchRepo, importUC, sendUC)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	healthHandler := handlers.NewHealthHandler(settingsRepo, batchRepo)
	trackActivityHandler := handlers.NewTrackActivityHandler()
	sendEmailHandler := handlers.NewSendEmailHandler()

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/fleet", fleetHandler.HandleList)
	r.Get("/batches", batchHandler.HandleList)
	r.Post("/batches/preview", batchHandler.HandlePreview)
	r.Post("/batches", batchHandler.HandleImport)
	r.Post("/batches/{batchId}/send", batchHandler.HandleSend)
	r.Get("/activity", activityHandler.HandleList)
	r.Get("/settings/webhook", settingsHandler.HandleGetWebhook)
	r.Put("/settings/webhook", settingsHandler.HandleSaveWebhook)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Stub callback targets for the external workflow engine
	r.Post("/track-activity", trackActivityHandler.Handle)
	r.Post("/api/send-email", sendEmailHandler.Handle)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 ColdFlow API running on :%s (store: %s)", port, dbPath)
	http.ListenAndServe(":"+port, r)
}
