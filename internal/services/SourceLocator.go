package services

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/structures"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

var ErrHistoryNotFound = errors.New("location history directory not found")

var Months = [12]string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

type SourceLocatorInterface interface {
	Locate(root string) ([]string, error)
}

type SourceLocator struct {
	fs         afero.Fs
	historyDir string
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewSourceLocator(conf *structures.Config, fs afero.Fs, logger providers.Logger, metrics providers.MetricsProviderInterface) SourceLocatorInterface {
	return &SourceLocator{
		fs:         fs,
		historyDir: conf.Source.HistoryDir,
		logger:     logger,
		metrics:    metrics,
	}
}

// Locate lists the monthly files under root's history directory: years in
// ascending numeric order, months in calendar order, missing months skipped.
func (sl *SourceLocator) Locate(root string) ([]string, error) {
	history := filepath.Join(root, filepath.FromSlash(sl.historyDir))

	ok, err := afero.DirExists(sl.fs, history)
	if err != nil {
		return nil, fmt.Errorf("unable to stat %s: %w", history, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHistoryNotFound, history)
	}

	listing, err := afero.ReadDir(sl.fs, history)
	if err != nil {
		return nil, fmt.Errorf("unable to list %s: %w", history, err)
	}

	names := make([]string, 0, len(listing))
	for _, info := range listing {
		names = append(names, info.Name())
	}
	years := sl.sortedYears(names)

	paths := make([]string, 0, len(years)*len(Months))
	for _, year := range years {
		for _, month := range Months {
			path := filepath.Join(history, year, year+"_"+month+".json")
			exists, err := afero.Exists(sl.fs, path)
			if err != nil {
				sl.logger.Warnf(providers.TypeSource, "Unable to stat %s: %s", path, err)
			}
			if !exists {
				sl.logger.Infof(providers.TypeSource, "Did not find a json file for %s in %s", month, year)
				sl.metrics.IncFiles(providers.FileMissing)
				continue
			}
			paths = append(paths, path)
		}
	}

	sl.logger.Debugf(providers.TypeSource, "Located %d monthly files in %d years", len(paths), len(years))
	return paths, nil
}

type yearName struct {
	name  string
	value float64
}

// sortedYears keeps names that parse as finite numbers, ordered by value.
// Ties keep listing order.
func (sl *SourceLocator) sortedYears(names []string) []string {
	years := make([]yearName, 0, len(names))
	for _, name := range names {
		value, ok := parseYear(name)
		if !ok {
			sl.logger.Debugf(providers.TypeSource, "Ignoring non-year entry %q", name)
			continue
		}
		years = append(years, yearName{name: name, value: value})
	}

	sort.SliceStable(years, func(i, j int) bool {
		return years[i].value < years[j].value
	})

	out := make([]string, len(years))
	for i, y := range years {
		out[i] = y.name
	}
	return out
}

func parseYear(name string) (float64, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false
	}
	value, err := cast.ToFloat64E(trimmed)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}
