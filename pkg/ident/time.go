package ident

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the ISO-8601 form used on the wire: UTC, microseconds, no offset marker.
const Layout = "2006-01-02T15:04:05.000000"

// Time is a UTC timestamp serialized without an offset marker.
type Time struct {
	time.Time
}

// At wraps t as a Time normalized to UTC and microsecond precision.
func At(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Microsecond)}
}

// String formats the time using Layout.
func (t Time) String() string {
	return t.UTC().Format(Layout)
}

// MarshalJSON encodes the time as a quoted Layout string.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts Layout strings (read as UTC) and RFC 3339 strings.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse reads s as a Layout timestamp or an RFC 3339 timestamp.
func Parse(s string) (Time, error) {
	if v, err := time.ParseInLocation("2006-01-02T15:04:05.999999", s, time.UTC); err == nil {
		return At(v), nil
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return At(v), nil
	}
	return Time{}, fmt.Errorf("invalid timestamp %q", s)
}
