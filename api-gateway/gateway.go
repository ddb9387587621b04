package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnechkaShv/vote-record-plot/internal/middleware"
	"github.com/AnechkaShv/vote-record-plot/internal/respond"
)

type ServiceConfig struct {
	Name   string
	URL    string
	Client *http.Client
}

// Gateway forwards /api/{service}/... to the registered backends.
type Gateway struct {
	services map[string]ServiceConfig
	log      zerolog.Logger
}

func NewGateway(services map[string]ServiceConfig, log zerolog.Logger) *Gateway {
	return &Gateway{
		services: services,
		log:      log.With().Str("component", "gateway").Logger(),
	}
}

func (g *Gateway) apiHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimPrefix(r.URL.Path, "/api/")
	parts := strings.Split(path, "/")
	serviceName := parts[0]

	service, exists := g.services[serviceName]
	if !exists {
		respond.Error(w, fmt.Sprintf("Service '%s' not found", serviceName), http.StatusNotFound)
		return
	}

	targetURL := strings.TrimSuffix(service.URL, "/") + "/" + strings.Join(parts, "/")
	if r.URL.RawQuery != "" {
		targetURL += "?" + r.URL.RawQuery
	}
	req, err := http.NewRequestWithContext(r.Context(), r.Method, targetURL, r.Body)
	if err != nil {
		respond.Error(w, "Failed to create request", http.StatusInternalServerError)
		return
	}

	for name, values := range r.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	req.Header.Set("X-Forwarded-For", r.RemoteAddr)
	req.Header.Set("X-Forwarded-Host", r.Host)
	req.Header.Set("X-Forwarded-Proto", "http")
	if id := middleware.RequestID(r.Context()); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	log := g.log.With().
		Str("request_id", middleware.RequestID(r.Context())).
		Str("service", service.Name).
		Logger()
	log.Debug().Str("method", r.Method).Str("target", targetURL).Msg("Forwarding request")

	resp, err := service.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			respond.Error(w, fmt.Sprintf("%s timeout", service.Name), http.StatusGatewayTimeout)
		} else {
			respond.Error(w, fmt.Sprintf("%s unavailable", service.Name), http.StatusBadGateway)
		}
		log.Error().Err(err).Msg("Service error")
		return
	}
	defer resp.Body.Close()

	copyResponseHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Warn().Err(err).Msg("Failed to write response")
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msgf("Completed %s %s", r.Method, r.URL.Path)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
}

// copyResponseHeaders copies backend headers, leaving the gateway's own CORS
// and request id headers in place.
func copyResponseHeaders(dst, src http.Header) {
	for name, values := range src {
		if strings.HasPrefix(name, "Access-Control-") || name == middleware.RequestIDHeader {
			continue
		}
		for _, value := range values {
			dst.Add(name, value)
		}
	}
}

func (g *Gateway) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	status := make(map[string]string)
	allHealthy := true

	for name, service := range g.services {
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, strings.TrimSuffix(service.URL, "/")+"/health", nil)
		if err != nil {
			status[name] = "error"
			allHealthy = false
			continue
		}

		resp, err := service.Client.Do(req)
		if err != nil || resp.StatusCode != http.StatusOK {
			status[name] = "unhealthy"
			allHealthy = false
		} else {
			status[name] = "healthy"
		}
		if resp != nil {
			resp.Body.Close()
		}
	}

	response := map[string]interface{}{
		"status":   status,
		"healthy":  allHealthy,
		"datetime": time.Now().Format(time.RFC3339),
	}

	code := http.StatusOK
	if !allHealthy {
		code = http.StatusServiceUnavailable
		g.log.Warn().Interface("status", status).Msg("Backends unhealthy")
	}
	respond.JSON(w, code, response)
}
