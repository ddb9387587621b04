package main

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/AnechkaShv/vote-record-plot/internal/middleware"
	"github.com/AnechkaShv/vote-record-plot/internal/respond"
)

const maxRequestBody = 1 << 20

type PlotHandler struct {
	service *PlotService
	log     zerolog.Logger
}

func NewPlotHandler(service *PlotService, log zerolog.Logger) *PlotHandler {
	return &PlotHandler{
		service: service,
		log:     log.With().Str("component", "plot_handler").Logger(),
	}
}

type plotResponse struct {
	ImageURL string `json:"imageUrl"`
}

func (h *PlotHandler) GeneratePlot(w http.ResponseWriter, r *http.Request) {
	in, err := DecodeInput(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	url, err := h.service.Generate(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, plotResponse{ImageURL: url})
}

func (h *PlotHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *PlotHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	event := h.log.Error()
	if code < http.StatusInternalServerError {
		event = h.log.Warn()
	}
	event.Err(err).Str("request_id", middleware.RequestID(r.Context())).Int("status", code).Msg("plot request failed")

	respond.Error(w, err.Error(), code)
}

func statusFor(err error) int {
	var (
		inputErr  *InputError
		assetErr  *AssetFetchError
		uploadErr *UploadError
	)
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &assetErr), errors.As(err, &uploadErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
