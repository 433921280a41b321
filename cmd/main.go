// nichenest-board-service
//
// Job-board backend:
//   - employers post jobs, seekers apply, both parties manage applications
//   - a cron-driven dispatch cycle matches fresh postings against seeker
//     niches and emails job alerts, exactly one pass per posting
//
// Publishes EVENT_APPLICATION_SUBMITTED and EVENT_JOB_ALERTS_SENT to Redis
// for the Gateway SSE forward.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nichenest/board-service/internal/api"
	"nichenest/board-service/internal/application"
	"nichenest/board-service/internal/config"
	"nichenest/board-service/internal/db"
	"nichenest/board-service/internal/dispatch"
	"nichenest/board-service/internal/events"
	"nichenest/board-service/internal/job"
	"nichenest/board-service/internal/mailer"
	"nichenest/board-service/internal/match"
	"nichenest/board-service/internal/seeker"
	"nichenest/board-service/internal/store"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil {
		log.Println("[board-service] No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[board-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[board-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[board-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[board-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[board-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[board-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[board-service] Redis connected ✓")

	// ── Services ─────────────────────────────────────────────────────────────
	st := store.New(pool)
	publisher := events.NewRedisPublisher(rdb)
	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	appSvc := application.NewService(st, publisher)
	jobSvc := job.NewService(st)
	seekerSvc := seeker.NewService(st)

	// ── Dispatch scheduler ───────────────────────────────────────────────────
	resolver := match.NewResolver(st)
	dispatcher := dispatch.NewDispatcher(st, resolver, sender, publisher, cfg.SendWorkers)
	scheduler := dispatch.NewScheduler(dispatcher, cfg.DispatchIntervalMinutes)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("[board-service] Scheduler: %v", err)
	}
	defer scheduler.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	api.NewJobsHandler(jobSvc, appSvc).RegisterRoutes(mux)
	api.NewApplicationsHandler(appSvc).RegisterRoutes(mux)
	api.NewSeekersHandler(seekerSvc).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[board-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[board-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[board-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[board-service] Shutdown error: %v", err)
	}
	log.Println("[board-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "board-service",
		"version": version,
	})
}
