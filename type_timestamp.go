package stockstat

import (
	"fmt"
	"strings"
	"time"
)

// TimestampFormat is the canonical representation used when writing reports.
const TimestampFormat = "2006-01-02 15:04:05"

// timestampLayouts lists the accepted input representations, tried in order.
// Broker exports are inconsistent about separators, so several are allowed.
var timestampLayouts = []string{
	TimestampFormat,
	"2006-01-02 15:04",
	"2006-01-02 150405",
	"20060102 150405",
}

// Timestamp is the moment a trade executed, with second granularity.
//
// The zero value means the source record carried no date at all. Unknown
// timestamps are valid: they sort after every known timestamp, keeping their
// relative input order.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns the Timestamp for a given moment.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t: t} }

// ParseTimestamp parses s under the accepted layouts. An empty or blank
// string yields the zero (unknown) Timestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// IsZero reports whether the timestamp is unknown.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is strictly before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is strictly after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// Equal reports whether ts and x denote the same instant.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

// Compare orders timestamps chronologically, with unknown timestamps after
// every known one. It returns -1, 0 or +1 in the manner of time.Time.Compare.
func (ts Timestamp) Compare(x Timestamp) int {
	switch {
	case ts.IsZero() && x.IsZero():
		return 0
	case ts.IsZero():
		return 1
	case x.IsZero():
		return -1
	default:
		return ts.t.Compare(x.t)
	}
}

// String formats the timestamp in the canonical layout, or "" when unknown.
func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.t.Format(TimestampFormat)
}
