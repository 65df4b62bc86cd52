package internal

import (
	"context"
	"time"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/services"
	"timelinecsv/internal/structures"
	"timelinecsv/internal/timeline/interfaces"
)

type App struct {
	conf       *structures.Config
	locator    services.SourceLocatorInterface
	normalizer services.TimelineNormalizerInterface
	emitter    interfaces.EmitterInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewApp(conf *structures.Config, locator services.SourceLocatorInterface, normalizer services.TimelineNormalizerInterface, emitter interfaces.EmitterInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *App {
	return &App{
		conf:       conf,
		locator:    locator,
		normalizer: normalizer,
		emitter:    emitter,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run executes one locate, normalize, emit pass over the configured root.
// Nothing is written unless every entry was classified.
func (a *App) Run(ctx context.Context) error {
	root := a.conf.Source.Root
	a.logger.Infof(providers.TypeApp, "Starting %s on %s", a.conf.AppName, root)

	start := time.Now()
	paths, err := a.locator.Locate(root)
	if err != nil {
		return err
	}
	a.metrics.ObserveStageDuration("locate", time.Since(start))

	start = time.Now()
	report, err := a.normalizer.Normalize(ctx, paths)
	if err != nil {
		return err
	}
	a.metrics.ObserveStageDuration("normalize", time.Since(start))

	start = time.Now()
	err = a.emitter.Emit(root, report)
	a.metrics.ObserveStageDuration("emit", time.Since(start))

	if flushErr := a.metrics.Flush(); flushErr != nil {
		a.logger.Warnf(providers.TypeApp, "Unable to write metrics: %s", flushErr)
	}
	if err != nil {
		return err
	}

	a.logger.Infof(providers.TypeApp, "Done: files=%d places=%d activities=%d dropped=%d",
		report.Files, len(report.Places), len(report.Activities), report.Dropped)
	return nil
}

func (a *App) Close() {
	a.emitter.Close()
	a.logger.Close()
}
