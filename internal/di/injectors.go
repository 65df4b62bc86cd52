//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"timelinecsv/internal"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/services"
	"timelinecsv/internal/structures"
	"timelinecsv/internal/timeline"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewFsProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewTimestampFormatter,
		timeline.NewFileManager,
		timeline.NewZstdCompressor,
		timeline.NewEmitter,
		services.NewSourceLocator,
		services.NewTimelineNormalizer,
		internal.NewApp,
	)

	return nil, nil
}
