package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shawgichan/docgen-service/internal/config"
	"github.com/shawgichan/docgen-service/internal/docgen"
	"github.com/shawgichan/docgen-service/internal/logger"
	"github.com/shawgichan/docgen-service/internal/middleware"
	"github.com/shawgichan/docgen-service/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)

	// ── Output directory ─────────────────────────────────────
	files, err := store.NewLocalStore(cfg.OutputDir)
	if err != nil {
		log.Error("output dir setup failed", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}
	log.Info("serving generated documents", "dir", files.Dir())

	// ── Handlers ─────────────────────────────────────────────
	assembler := docgen.NewAssembler(files, log)
	handler := docgen.NewHandler(assembler, files, log)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/generate-document", handler.Generate)
	r.Get("/download/{fileName}", handler.Download)
	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
	}

	go func() {
		log.Info("docgen service listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
