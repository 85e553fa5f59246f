//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/outfitcast/internal/bootstrap"
	"github.com/yanqian/outfitcast/internal/domain/outfitcast"
	"github.com/yanqian/outfitcast/internal/infra/config"
	httpiface "github.com/yanqian/outfitcast/internal/interface/http"
	"github.com/yanqian/outfitcast/pkg/logger"
	"github.com/yanqian/outfitcast/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.New,
		provideClock,
		provideForecastConfig,
		outfitcast.NewService,
		wire.Bind(new(outfitcast.Recorder), new(*metrics.Metrics)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
