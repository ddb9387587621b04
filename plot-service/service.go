package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnechkaShv/vote-record-plot/internal/middleware"
)

// PlotService runs one render-and-publish pass per call. It holds no state
// between calls.
type PlotService struct {
	layout     Layout
	background BackgroundSource
	generator  *PlotGenerator
	publisher  Publisher
	log        zerolog.Logger
}

func NewPlotService(layout Layout, background BackgroundSource, publisher Publisher, log zerolog.Logger) *PlotService {
	return &PlotService{
		layout:     layout,
		background: background,
		generator:  NewPlotGenerator(layout),
		publisher:  publisher,
		log:        log.With().Str("component", "plot_service").Logger(),
	}
}

// Generate renders the plot for in and returns the hosted image URL.
func (s *PlotService) Generate(ctx context.Context, in Input) (string, error) {
	log := s.log.With().Str("request_id", middleware.RequestID(ctx)).Logger()
	start := time.Now()

	angles := s.layout.ComputeAngles(in)
	for _, a := range angles {
		log.Debug().
			Str("category", string(a.Category)).
			Float64("theta1", a.Theta1).
			Float64("theta2", a.Theta2).
			Msg("wedge angles")
	}

	step := time.Now()
	bg, err := s.background.Fetch(ctx)
	if err != nil {
		return "", err
	}
	log.Debug().
		Int("width", bg.Bounds().Dx()).
		Int("height", bg.Bounds().Dy()).
		Dur("elapsed", time.Since(step)).
		Msg("background fetched")

	step = time.Now()
	png, err := s.generator.Generate(bg, angles)
	if err != nil {
		return "", fmt.Errorf("render plot: %w", err)
	}
	log.Debug().Int("bytes", len(png)).Dur("elapsed", time.Since(step)).Msg("plot rendered")

	step = time.Now()
	url, err := s.publisher.Publish(ctx, png)
	if err != nil {
		return "", err
	}
	log.Debug().Dur("elapsed", time.Since(step)).Msg("plot uploaded")

	log.Info().Str("url", url).Dur("elapsed", time.Since(start)).Msg("plot published")
	return url, nil
}
