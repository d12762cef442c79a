package timezone

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid reports a rejected time zone definition.
var ErrInvalid = errors.New("invalid time zone")

const (
	minOffset = -12 * time.Hour
	maxOffset = 14 * time.Hour
)

// TimeZone is an immutable fixed-offset descriptor used to render
// confirmation timestamps in a caller's preferred zone. Values are
// comparable; two zones are equal when name and both offset components
// match.
type TimeZone struct {
	name    string
	hours   int
	minutes int
}

// New validates and builds a fixed-offset time zone. The minute offset
// must lie in [-59, 59] and the combined offset in [-12:00, +14:00].
func New(name string, offsetHours, offsetMinutes int) (TimeZone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TimeZone{}, fmt.Errorf("%w: name cannot be empty", ErrInvalid)
	}
	if offsetMinutes < -59 || offsetMinutes > 59 {
		return TimeZone{}, fmt.Errorf("%w: minute offset must be between -59 and 59", ErrInvalid)
	}
	offset := combine(offsetHours, offsetMinutes)
	if offset < minOffset || offset > maxOffset {
		return TimeZone{}, fmt.Errorf("%w: offset must be between -12:00 and +14:00", ErrInvalid)
	}
	return TimeZone{name: name, hours: offsetHours, minutes: offsetMinutes}, nil
}

// UTC returns the canonical UTC+0 zone, the default wherever no zone is
// supplied.
func UTC() TimeZone {
	return TimeZone{name: "UTC"}
}

// Name returns the display name.
func (t TimeZone) Name() string { return t.name }

// Offset returns the combined signed offset from UTC.
func (t TimeZone) Offset() time.Duration { return combine(t.hours, t.minutes) }

// IsZero reports whether t is the zero value, i.e. no zone was supplied.
func (t TimeZone) IsZero() bool { return t == TimeZone{} }

func (t TimeZone) String() string {
	d := t.Offset()
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%s%02d:%02d", t.name, sign, int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func combine(hours, minutes int) time.Duration {
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}
