package services

import (
	"context"
	"fmt"
	"timelinecsv/internal/models"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/structures"
	"timelinecsv/internal/timeline/interfaces"

	"golang.org/x/sync/errgroup"
)

type TimelineNormalizerInterface interface {
	Normalize(ctx context.Context, paths []string) (*models.Report, error)
}

type TimelineNormalizer struct {
	loader                  interfaces.LoaderInterface
	formatter               *TimestampFormatter
	logger                  providers.Logger
	metrics                 providers.MetricsProviderInterface
	workers                 int
	coordinateDigits        int
	requireStartCoordinates bool
}

func NewTimelineNormalizer(conf *structures.Config, loader interfaces.LoaderInterface, formatter *TimestampFormatter, logger providers.Logger, metrics providers.MetricsProviderInterface) TimelineNormalizerInterface {
	return &TimelineNormalizer{
		loader:                  loader,
		formatter:               formatter,
		logger:                  logger,
		metrics:                 metrics,
		workers:                 max(conf.Source.Workers, 1),
		coordinateDigits:        conf.Report.CoordinateDigits,
		requireStartCoordinates: conf.Report.RequireStartCoordinates,
	}
}

type loadResult struct {
	objects []models.TimelineObject
	loaded  bool
}

// Normalize loads every file, then classifies all entries in file order.
// An unrecognized entry aborts the whole run with no report.
func (tn *TimelineNormalizer) Normalize(ctx context.Context, paths []string) (*models.Report, error) {
	results, err := tn.loadAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	report := models.NewReport()
	for i, result := range results {
		if result.loaded {
			report.Files++
		}
		for j, obj := range result.objects {
			entry, err := models.Classify(obj)
			if err != nil {
				return nil, fmt.Errorf("%s: entry %d: %w", paths[i], j, err)
			}
			tn.appendEntry(report, entry, paths[i])
		}
	}

	return report, nil
}

// loadAll reads files with up to tn.workers goroutines. Each result lands in
// the slot of its path, so ordering does not depend on scheduling.
func (tn *TimelineNormalizer) loadAll(ctx context.Context, paths []string) ([]loadResult, error) {
	results := make([]loadResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(tn.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			objects, err := tn.loader.Load(path)
			if err != nil {
				tn.logger.Errorf(providers.TypeNormalizer, "Error reading or parsing JSON file %s: %s", path, err)
				tn.metrics.IncFiles(providers.FileInvalid)
				return nil
			}
			tn.metrics.IncFiles(providers.FileLoaded)
			results[i] = loadResult{objects: objects, loaded: true}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (tn *TimelineNormalizer) appendEntry(report *models.Report, entry models.Entry, source string) {
	switch entry.Kind {
	case models.KindPlaceVisit:
		report.Places = append(report.Places, tn.placeRow(entry.PlaceVisit, source))
		tn.metrics.IncEntries(providers.EntryPlace)
	case models.KindActivitySegment:
		segment := entry.ActivitySegment
		if tn.requireStartCoordinates && !segment.StartLocation.HasLatitude() {
			report.Dropped++
			tn.metrics.IncEntries(providers.EntryDropped)
			tn.logger.Debugf(providers.TypeNormalizer, "Dropping %s segment without start coordinates in %s", segment.ActivityType, source)
			return
		}
		report.Activities = append(report.Activities, tn.activityRow(segment, source))
		tn.metrics.IncEntries(providers.EntryActivity)
	}
}

func (tn *TimelineNormalizer) placeRow(visit *models.PlaceVisit, source string) models.PlaceRow {
	return models.PlaceRow{
		Coordinates: visit.Location.Coordinates(tn.coordinateDigits),
		PlaceName:   visit.Location.Name,
		PlaceID:     visit.Location.PlaceID,
		Address:     visit.Location.Address,
		Start:       tn.timestamp(visit.Duration.StartTimestamp, visit.Duration.StartTimestampMs, source),
		End:         tn.timestamp(visit.Duration.EndTimestamp, visit.Duration.EndTimestampMs, source),
		Confidence:  visit.PlaceConfidence,
	}
}

func (tn *TimelineNormalizer) activityRow(segment *models.ActivitySegment, source string) models.ActivityRow {
	start, end := segment.StartLocation, segment.EndLocation
	return models.ActivityRow{
		StartCoordinates: start.Coordinates(tn.coordinateDigits),
		StartPlaceName:   start.Name,
		StartPlaceID:     start.PlaceID,
		StartAddress:     start.Address,
		EndCoordinates:   end.Coordinates(tn.coordinateDigits),
		EndPlaceName:     end.Name,
		EndPlaceID:       end.PlaceID,
		EndAddress:       end.Address,
		Activity:         segment.ActivityType,
		StartTimestamp:   tn.timestamp(segment.Duration.StartTimestamp, segment.Duration.StartTimestampMs, source),
		EndTimestamp:     tn.timestamp(segment.Duration.EndTimestamp, segment.Duration.EndTimestampMs, source),
		Confidence:       segment.Confidence,
	}
}

func (tn *TimelineNormalizer) timestamp(value, valueMs, source string) string {
	formatted, err := tn.formatter.Format(value, valueMs)
	if err != nil {
		tn.logger.Warnf(providers.TypeNormalizer, "%s: %s", source, err)
	}
	return formatted
}
