package models

type PlaceRow struct {
	Coordinates string `csv:"Coordinates"`
	PlaceName   string `csv:"PlaceName"`
	PlaceID     string `csv:"PlaceID"`
	Address     string `csv:"Address"`
	Start       string `csv:"Start"`
	End         string `csv:"End"`
	Confidence  string `csv:"Confidence"`
}

type ActivityRow struct {
	StartCoordinates string `csv:"StartCoordinates"`
	StartPlaceName   string `csv:"StartPlaceName"`
	StartPlaceID     string `csv:"StartPlaceID"`
	StartAddress     string `csv:"StartAddress"`
	EndCoordinates   string `csv:"EndCoordinates"`
	EndPlaceName     string `csv:"EndPlaceName"`
	EndPlaceID       string `csv:"EndPlaceID"`
	EndAddress       string `csv:"EndAddress"`
	Activity         string `csv:"Activity"`
	StartTimestamp   string `csv:"StartTimestamp"`
	EndTimestamp     string `csv:"EndTimestamp"`
	Confidence       string `csv:"Confidence"`
}

// Report holds the two row collections produced by one normalizer run.
type Report struct {
	Places     []PlaceRow
	Activities []ActivityRow
	Files      int
	Dropped    int
}

func NewReport() *Report {
	return &Report{
		Places:     make([]PlaceRow, 0),
		Activities: make([]ActivityRow, 0),
	}
}
