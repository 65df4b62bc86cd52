package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"timelinecsv/internal/providers"
)

// TimestampLayout is the fixed report format: UTC, no zone suffix.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

type TimestampFormatter struct {
	cache providers.CacheProviderInterface
}

func NewTimestampFormatter(cache providers.CacheProviderInterface) *TimestampFormatter {
	return &TimestampFormatter{cache: cache}
}

// Format renders an RFC 3339 timestamp, or the legacy epoch-millisecond
// string when the former is absent. Both empty yields "".
func (tf *TimestampFormatter) Format(timestamp, timestampMs string) (string, error) {
	switch {
	case timestamp != "":
		return tf.cached("ts:"+timestamp, func() (string, error) {
			parsed, err := time.Parse(time.RFC3339Nano, timestamp)
			if err != nil {
				return "", fmt.Errorf("%w %q: %s", ErrInvalidTimestamp, timestamp, err)
			}
			return parsed.UTC().Format(TimestampLayout), nil
		})
	case timestampMs != "":
		return tf.cached("ms:"+timestampMs, func() (string, error) {
			millis, err := strconv.ParseInt(timestampMs, 10, 64)
			if err != nil {
				return "", fmt.Errorf("%w %q: %s", ErrInvalidTimestamp, timestampMs, err)
			}
			return time.UnixMilli(millis).UTC().Format(TimestampLayout), nil
		})
	default:
		return "", nil
	}
}

func (tf *TimestampFormatter) cached(key string, compute func() (string, error)) (string, error) {
	if val, ok := tf.cache.Get(key); ok {
		return string(val), nil
	}
	formatted, err := compute()
	if err != nil {
		return "", err
	}
	tf.cache.Set(key, []byte(formatted))
	return formatted, nil
}
