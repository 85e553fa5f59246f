package main

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/yanqian/outfitcast/internal/domain/outfitcast"
	"github.com/yanqian/outfitcast/internal/infra/config"
)

func provideForecastConfig(cfg *config.Config, logger *slog.Logger) outfitcast.Config {
	if len(cfg.Forecast.Locations) > 0 {
		logger.Info("using configured location catalog", "count", len(cfg.Forecast.Locations))
	}
	return outfitcast.Config{
		Locations: cfg.Forecast.Locations,
	}
}

func provideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}
