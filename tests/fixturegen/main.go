package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"
	"timelinecsv/internal/models"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/services"

	json "github.com/goccy/go-json"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	firstYear       = 2015
	numYears        = 8
	entriesPerMonth = 400
	missingRatio    = 0.1
	bareRatio       = 0.05
	numWorkers      = 8
)

var (
	activityTypes = []string{"WALKING", "IN_PASSENGER_VEHICLE", "IN_BUS", "CYCLING", "IN_SUBWAY", "FLYING"}
	confidences   = []string{"HIGH", "MEDIUM", "LOW"}
	placeNames    = []string{"Home", "Work", "Gym", "Cafe", "Station", "Airport", "Park"}
)

type point struct {
	lat, lon int64
}

func main() {
	root := "fixture"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	fmt.Println("=== Timeline Fixture Generator ===")
	fmt.Printf("Root: %s | Years: %d-%d | Entries/month: %d\n\n", root, firstYear, firstYear+numYears-1, entriesPerMonth)

	fs := providers.NewFsProvider()
	history := filepath.Join(root, providers.DefaultHistoryDir)

	var files, entries atomic.Int64
	start := time.Now()

	g := new(errgroup.Group)
	g.SetLimit(numWorkers)
	for y := 0; y < numYears; y++ {
		year := strconv.Itoa(firstYear + y)
		for m, month := range services.Months {
			month := month
			seed := int64(y*12 + m)
			g.Go(func() error {
				rng := rand.New(rand.NewSource(seed))
				if rng.Float64() < missingRatio {
					return nil
				}
				n, err := writeMonth(fs, history, year, month, rng)
				if err != nil {
					return err
				}
				files.Add(1)
				entries.Add(int64(n))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}

	fmt.Printf("  Files: %d | Entries: %d | Took: %s\n", files.Load(), entries.Load(), time.Since(start).Round(time.Millisecond))
}

func writeMonth(fs afero.Fs, history, year, month string, rng *rand.Rand) (int, error) {
	dir := filepath.Join(history, year)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	yearNum, _ := strconv.Atoi(year)
	monthNum := time.Month(indexOf(month) + 1)
	cursor := time.Date(yearNum, monthNum, 1, 6, 0, 0, 0, time.UTC)
	here := point{lat: 407128000, lon: -740060000}

	file := models.TimelineFile{TimelineObjects: make([]models.TimelineObject, 0, entriesPerMonth)}
	for i := 0; i < entriesPerMonth; i++ {
		span := time.Duration(10+rng.Intn(170)) * time.Minute
		duration := models.Duration{
			StartTimestamp: cursor.Format(time.RFC3339Nano),
			EndTimestamp:   cursor.Add(span).Format(time.RFC3339Nano),
		}
		cursor = cursor.Add(span)

		if i%2 == 0 {
			file.TimelineObjects = append(file.TimelineObjects, models.TimelineObject{
				PlaceVisit: &models.PlaceVisit{
					Location:        location(here, placeNames[rng.Intn(len(placeNames))], rng),
					Duration:        duration,
					PlaceConfidence: confidences[rng.Intn(len(confidences))],
				},
			})
			continue
		}

		next := point{lat: here.lat + rng.Int63n(200000) - 100000, lon: here.lon + rng.Int63n(200000) - 100000}
		segment := &models.ActivitySegment{
			StartLocation: location(here, "", rng),
			EndLocation:   location(next, "", rng),
			Duration:      duration,
			ActivityType:  activityTypes[rng.Intn(len(activityTypes))],
			Confidence:    confidences[rng.Intn(len(confidences))],
		}
		if rng.Float64() < bareRatio {
			segment.StartLocation = models.Location{}
		}
		file.TimelineObjects = append(file.TimelineObjects, models.TimelineObject{ActivitySegment: segment})
		here = next
	}

	data, err := json.Marshal(file)
	if err != nil {
		return 0, err
	}
	path := filepath.Join(dir, year+"_"+month+".json")
	return len(file.TimelineObjects), afero.WriteFile(fs, path, data, 0644)
}

func location(p point, name string, rng *rand.Rand) models.Location {
	lat, lon := p.lat, p.lon
	loc := models.Location{LatitudeE7: &lat, LongitudeE7: &lon, Name: name}
	if name != "" {
		loc.PlaceID = fmt.Sprintf("ChIJ%08x", rng.Uint32())
	}
	return loc
}

func indexOf(month string) int {
	for i, m := range services.Months {
		if m == month {
			return i
		}
	}
	return 0
}
