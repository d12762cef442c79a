package timezone

import (
	"errors"
	"testing"
	"time"
)

func TestNewValid(t *testing.T) {
	tz, err := New("IR", 3, 30)
	if err != nil {
		t.Fatalf("new timezone: %v", err)
	}
	if tz.Name() != "IR" {
		t.Fatalf("expected name IR, got %q", tz.Name())
	}
	want := 3*time.Hour + 30*time.Minute
	if tz.Offset() != want {
		t.Fatalf("expected offset %v, got %v", want, tz.Offset())
	}
}

func TestNewNegativeOffset(t *testing.T) {
	tz, err := New("ABC", -1, -31)
	if err != nil {
		t.Fatalf("new timezone: %v", err)
	}
	want := -(1*time.Hour + 31*time.Minute)
	if tz.Offset() != want {
		t.Fatalf("expected offset %v, got %v", want, tz.Offset())
	}
}

func TestNewBoundaries(t *testing.T) {
	if _, err := New("west", -12, 0); err != nil {
		t.Fatalf("-12:00 should be accepted: %v", err)
	}
	if _, err := New("east", 14, 0); err != nil {
		t.Fatalf("+14:00 should be accepted: %v", err)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		tzName  string
		hours   int
		minutes int
	}{
		{"empty name", "", 0, 0},
		{"blank name", "   ", 0, 0},
		{"minutes too low", "X", 0, -60},
		{"minutes too high", "X", 0, 60},
		{"offset below range", "X", -12, -1},
		{"offset above range", "X", 14, 1},
		{"hours far out", "X", 26, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.tzName, tc.hours, tc.minutes); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	a, _ := New("IR", 3, 30)
	b, _ := New("IR", 3, 30)
	if a != b {
		t.Fatalf("expected %v == %v", a, b)
	}

	others := []TimeZone{}
	for _, c := range []struct {
		name    string
		hours   int
		minutes int
	}{
		{"IR", -1, -30},
		{"ABC", 3, 30},
		{"IR", 3, 31},
	} {
		tz, err := New(c.name, c.hours, c.minutes)
		if err != nil {
			t.Fatalf("new timezone: %v", err)
		}
		others = append(others, tz)
	}
	for _, other := range others {
		if a == other {
			t.Fatalf("expected %v != %v", a, other)
		}
	}
}

func TestUTCDefault(t *testing.T) {
	utc := UTC()
	if utc.Name() != "UTC" || utc.Offset() != 0 {
		t.Fatalf("unexpected UTC zone: %v", utc)
	}
	if utc.IsZero() {
		t.Fatal("UTC must not be the zero value")
	}
	if !(TimeZone{}).IsZero() {
		t.Fatal("zero value must report IsZero")
	}
}

func TestString(t *testing.T) {
	tz, _ := New("IR", 3, 30)
	if got := tz.String(); got != "IR+03:30" {
		t.Fatalf("unexpected string: %q", got)
	}
	neg, _ := New("ABC", -1, -31)
	if got := neg.String(); got != "ABC-01:31" {
		t.Fatalf("unexpected string: %q", got)
	}
}
