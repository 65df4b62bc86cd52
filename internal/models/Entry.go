package models

import "errors"

var ErrUnrecognizedEntry = errors.New("unrecognized timeline entry")

type Kind int

const (
	KindPlaceVisit Kind = iota + 1
	KindActivitySegment
)

func (k Kind) String() string {
	switch k {
	case KindPlaceVisit:
		return "placeVisit"
	case KindActivitySegment:
		return "activitySegment"
	default:
		return "unknown"
	}
}

// Entry is a classified TimelineObject. Exactly one payload is set, matching Kind.
type Entry struct {
	Kind            Kind
	PlaceVisit      *PlaceVisit
	ActivitySegment *ActivitySegment
}

// Classify routes a raw object to its variant. placeVisit wins when both
// payloads are present; an object with neither is rejected.
func Classify(obj TimelineObject) (Entry, error) {
	switch {
	case obj.PlaceVisit != nil:
		return Entry{Kind: KindPlaceVisit, PlaceVisit: obj.PlaceVisit}, nil
	case obj.ActivitySegment != nil:
		return Entry{Kind: KindActivitySegment, ActivitySegment: obj.ActivitySegment}, nil
	default:
		return Entry{}, ErrUnrecognizedEntry
	}
}
