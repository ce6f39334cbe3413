package model

import (
	"fmt"
	"time"
)

// The catalog's OData endpoints return datetime data in a handful of
// near-ISO-8601 shapes, with and without fractional seconds or a Z
// suffix. We need lenient "multi-format" parsing, implemented here.

// StandardTimeLayout is the preferred format when emitting timestamps
// into catalog filter expressions: millisecond precision, literal Z
const StandardTimeLayout = "2006-01-02T15:04:05.000Z"

var odataTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
}

// ParseODataTime is a drop-in replacement for time.Parse, but matching
// against the catalog's possible datetime formats
func ParseODataTime(odataTime string) (time.Time, error) {
	for _, layout := range odataTimeLayouts {
		if output, err := time.Parse(layout, odataTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", odataTime)
}
