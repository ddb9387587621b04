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

	"github.com/gorilla/mux"

	"github.com/AnechkaShv/vote-record-plot/internal/logger"
	"github.com/AnechkaShv/vote-record-plot/internal/middleware"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log := logger.New(logger.Config{Level: "info", Pretty: true})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty}).
		With().Str("service", "plot-service").Logger()

	client := &http.Client{Timeout: cfg.OutboundTimeout}
	layout := NewVoteLayout()

	service := NewPlotService(
		layout,
		NewHTTPBackground(cfg.BackgroundURL, client),
		NewImgBBClient(cfg.ImgBBUploadURL, cfg.ImgBBAPIKey, assetName, client),
		log,
	)
	handler := NewPlotHandler(service, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           middleware.Wrap(newRouter(handler), log, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("background", cfg.BackgroundURL).Msg("Plot Service is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func newRouter(h *PlotHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/plot", h.GeneratePlot).Methods(http.MethodPost)
	// Function hosts post straight to the root path.
	r.HandleFunc("/", h.GeneratePlot).Methods(http.MethodPost)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return r
}
