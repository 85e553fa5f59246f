package outfitcast

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yanqian/outfitcast/internal/domain/outfit"
	"github.com/yanqian/outfitcast/internal/domain/weather"
	apperrors "github.com/yanqian/outfitcast/pkg/errors"
)

const locationSeparator = "—"

// Service exposes the outfit forecast capability.
type Service interface {
	Forecast(ctx context.Context, req Request) (Result, error)
	Locations() []string
}

// Recorder receives forecast outcomes, typically for metrics.
type Recorder interface {
	ObserveForecast(condition, band string, confidencePct int)
	ObserveFailure(code string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveForecast(string, string, int) {}
func (nopRecorder) ObserveFailure(string)               {}

type service struct {
	locations []string
	clock     clockwork.Clock
	recorder  Recorder
	logger    *slog.Logger
}

// NewService wires up the forecast domain. A nil recorder discards outcomes.
func NewService(cfg Config, clock clockwork.Clock, recorder Recorder, logger *slog.Logger) Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	locations := DefaultLocations()
	if len(cfg.Locations) > 0 {
		locations = append([]string(nil), cfg.Locations...)
	}
	return &service{
		locations: locations,
		clock:     clock,
		recorder:  recorder,
		logger:    logger.With("component", "outfitcast.service"),
	}
}

func (s *service) Forecast(ctx context.Context, req Request) (res Result, err error) {
	if strings.TrimSpace(req.Location) == "" {
		s.recorder.ObserveFailure(apperrors.CodeInvalidInput)
		s.logger.WarnContext(ctx, "forecast rejected", "reason", "blank location")
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "location cannot be empty", nil)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "forecast pipeline aborted", "location", req.Location, "panic", r)
			s.recorder.ObserveFailure(apperrors.CodeInternal)
			res, err = Result{}, apperrors.Wrap(apperrors.CodeInternal, "forecast generation failed", fmt.Errorf("%v", r))
		}
	}()

	now := s.clock.Now()
	if req.At != nil {
		now = *req.At
	}

	res = Compose(req.Location, now)
	s.recorder.ObserveForecast(string(res.Weather.Condition), string(res.Recommendation.Band), res.Recommendation.ConfidencePct)
	s.logger.InfoContext(ctx, "forecast generated",
		"location", res.Location,
		"condition", res.Weather.Condition,
		"band", res.Recommendation.Band,
		"confidence", res.Recommendation.ConfidencePct,
	)
	return res, nil
}

func (s *service) Locations() []string {
	return append([]string(nil), s.locations...)
}

// Compose runs the full pipeline for one location at one instant. It is pure: equal
// inputs always produce equal results.
func Compose(location string, now time.Time) Result {
	reading := weather.Synthesize(weather.DeriveSeed(location))
	return Result{
		Location:       location,
		City:           cityName(location),
		Weather:        reading,
		Recommendation: outfit.Recommend(reading),
		Hourly:         weather.ExpandHourly(reading.TemperatureC, reading.Condition, now),
		GeneratedAt:    now,
	}
}

// cityName returns the capital part of a "State — Capital" key.
func cityName(location string) string {
	idx := strings.LastIndex(location, locationSeparator)
	if idx < 0 {
		return strings.TrimSpace(location)
	}
	return strings.TrimSpace(location[idx+len(locationSeparator):])
}
