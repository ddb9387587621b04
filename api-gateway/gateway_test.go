package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/AnechkaShv/vote-record-plot/internal/middleware"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newBackend(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func serviceFor(srv *httptest.Server, name string, timeout time.Duration) ServiceConfig {
	return ServiceConfig{
		Name:   name,
		URL:    srv.URL,
		Client: &http.Client{Timeout: timeout},
	}
}

func TestHealthCheckHandler(t *testing.T) {
	ok := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	bad := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	t.Run("Successful health check", func(t *testing.T) {
		gw := NewGateway(map[string]ServiceConfig{
			"plot": serviceFor(ok, "Plot Service", time.Second),
		}, zerolog.Nop())

		rr := httptest.NewRecorder()
		gw.healthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Status   map[string]string `json:"status"`
			Healthy  bool              `json:"healthy"`
			Datetime string            `json:"datetime"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.True(t, body.Healthy)
		assert.Equal(t, "healthy", body.Status["plot"])
		_, err := time.Parse(time.RFC3339, body.Datetime)
		assert.NoError(t, err)
	})

	t.Run("Unhealthy service", func(t *testing.T) {
		gw := NewGateway(map[string]ServiceConfig{
			"plot":   serviceFor(ok, "Plot Service", time.Second),
			"backup": serviceFor(bad, "Backup Plot Service", time.Second),
		}, zerolog.Nop())

		rr := httptest.NewRecorder()
		gw.healthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), `"backup":"unhealthy"`)
		assert.Contains(t, rr.Body.String(), `"plot":"healthy"`)
	})
}

func TestApiHandler(t *testing.T) {
	var got struct {
		method, path, query, body, forwardedFor, requestID string
	}
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.body = string(data)
		got.forwardedFor = r.Header.Get("X-Forwarded-For")
		got.requestID = r.Header.Get(middleware.RequestIDHeader)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"imageUrl":"https://x/y.png"}`))
	})

	gw := NewGateway(map[string]ServiceConfig{
		"plot": serviceFor(backend, "Plot Service", time.Second),
	}, zerolog.Nop())

	tests := []struct {
		name           string
		url            string
		method         string
		expectedStatus int
		expectedPath   string
	}{
		{
			name:           "Existing service",
			url:            "/api/plot",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
			expectedPath:   "/plot",
		},
		{
			name:           "Existing service with sub path",
			url:            "/api/plot/extra?debug=1",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
			expectedPath:   "/plot/extra",
		},
		{
			name:           "Non-existent service",
			url:            "/api/nonexistent",
			method:         http.MethodGet,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got.path = ""
			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader(`{"house_dem_value":1}`))
			rr := httptest.NewRecorder()

			gw.apiHandler(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedPath, got.path)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.method, got.method)
				assert.Equal(t, `{"house_dem_value":1}`, got.body)
				assert.NotEmpty(t, got.forwardedFor)
				assert.JSONEq(t, `{"imageUrl":"https://x/y.png"}`, rr.Body.String())
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	assert.Equal(t, "debug=1", got.query)
}

func TestApiHandler_BackendFailures(t *testing.T) {
	slow := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	gw := NewGateway(map[string]ServiceConfig{
		"slow": serviceFor(slow, "Slow Service", 50*time.Millisecond),
		"down": {Name: "Down Service", URL: downURL, Client: &http.Client{Timeout: time.Second}},
	}, zerolog.Nop())

	t.Run("timeout", func(t *testing.T) {
		rr := httptest.NewRecorder()
		gw.apiHandler(rr, httptest.NewRequest(http.MethodPost, "/api/slow", nil))
		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("unavailable", func(t *testing.T) {
		rr := httptest.NewRecorder()
		gw.apiHandler(rr, httptest.NewRequest(http.MethodPost, "/api/down", nil))
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "Down Service unavailable")
	})
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	var backendID string
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		backendID = r.Header.Get(middleware.RequestIDHeader)
		w.Header().Set(middleware.RequestIDHeader, backendID)
		w.WriteHeader(http.StatusOK)
	})

	gw := NewGateway(map[string]ServiceConfig{
		"plot": serviceFor(backend, "Plot Service", time.Second),
	}, zerolog.Nop())
	h := middleware.Wrap(gw.Router(), zerolog.Nop(), []string{"*"})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/plot", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, backendID)
	assert.Equal(t, []string{backendID}, rr.Header().Values(middleware.RequestIDHeader))
}
