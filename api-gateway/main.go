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

	"github.com/AnechkaShv/vote-record-plot/internal/config"
	"github.com/AnechkaShv/vote-record-plot/internal/logger"
	"github.com/AnechkaShv/vote-record-plot/internal/middleware"
)

type Config struct {
	Port           int
	LogLevel       string
	LogPretty      bool
	PlotURL        string
	PlotTimeout    time.Duration
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	config.LoadDotEnv()

	port, err := config.Int("PORT", 8080)
	if err != nil {
		return nil, err
	}
	pretty, err := config.Bool("LOG_PRETTY", false)
	if err != nil {
		return nil, err
	}
	timeout, err := config.Duration("PLOT_SERVICE_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           port,
		LogLevel:       config.String("LOG_LEVEL", "info"),
		LogPretty:      pretty,
		PlotURL:        config.String("PLOT_SERVICE_URL", "http://plot-service:8084"),
		PlotTimeout:    timeout,
		AllowedOrigins: config.List("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log := logger.New(logger.Config{Level: "info", Pretty: true})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty}).
		With().Str("service", "api-gateway").Logger()

	gw := NewGateway(map[string]ServiceConfig{
		"plot": {
			Name:   "Plot Service",
			URL:    cfg.PlotURL,
			Client: &http.Client{Timeout: cfg.PlotTimeout},
		},
	}, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           middleware.Wrap(gw.Router(), log, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("API Gateway is running")
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

func (g *Gateway) Router() *mux.Router {
	r := mux.NewRouter()
	r.PathPrefix("/api/").HandlerFunc(g.apiHandler)
	r.HandleFunc("/health", g.healthCheckHandler).Methods(http.MethodGet)
	return r
}
