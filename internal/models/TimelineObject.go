package models

import "strconv"

// TimelineFile is the root of one monthly Semantic Location History file.
type TimelineFile struct {
	TimelineObjects []TimelineObject `json:"timelineObjects"`
}

// TimelineObject carries at most one of the two recognized payloads.
type TimelineObject struct {
	PlaceVisit      *PlaceVisit      `json:"placeVisit,omitempty"`
	ActivitySegment *ActivitySegment `json:"activitySegment,omitempty"`
}

// Location is sparse: activity endpoints frequently lack everything but
// the coordinates, and some lack those too.
type Location struct {
	LatitudeE7  *int64 `json:"latitudeE7,omitempty"`
	LongitudeE7 *int64 `json:"longitudeE7,omitempty"`
	Name        string `json:"name,omitempty"`
	PlaceID     string `json:"placeId,omitempty"`
	Address     string `json:"address,omitempty"`
}

type Duration struct {
	StartTimestamp   string `json:"startTimestamp,omitempty"`
	EndTimestamp     string `json:"endTimestamp,omitempty"`
	StartTimestampMs string `json:"startTimestampMs,omitempty"`
	EndTimestampMs   string `json:"endTimestampMs,omitempty"`
}

type PlaceVisit struct {
	Location        Location `json:"location"`
	Duration        Duration `json:"duration"`
	PlaceConfidence string   `json:"placeConfidence,omitempty"`
}

type ActivitySegment struct {
	StartLocation Location `json:"startLocation"`
	EndLocation   Location `json:"endLocation"`
	Duration      Duration `json:"duration"`
	ActivityType  string   `json:"activityType,omitempty"`
	Confidence    string   `json:"confidence,omitempty"`
}

func (l Location) HasLatitude() bool {
	return l.LatitudeE7 != nil
}

// Coordinates renders "lat,lon" in decimal degrees. digits <= 0 selects the
// shortest representation that round-trips, which for E7 input is the exact
// decimal value. A location missing either axis renders as "".
func (l Location) Coordinates(digits int) string {
	if l.LatitudeE7 == nil || l.LongitudeE7 == nil {
		return ""
	}
	return FormatE7(*l.LatitudeE7, digits) + "," + FormatE7(*l.LongitudeE7, digits)
}

func FormatE7(value int64, digits int) string {
	if digits <= 0 {
		digits = -1
	}
	return strconv.FormatFloat(float64(value)/1e7, 'f', digits, 64)
}
