package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day without a date.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%d:%02d", c.Hour, c.Minute)
}

// Afternoon reads hours before 8 as PM. Timetables write "1:00" for 13:00.
func (c Clock) Afternoon() Clock {
	if c.Hour < 8 {
		c.Hour += 12
	}
	return c
}

// ParseClock parses "9:00", "09:30" or "9.30".
func ParseClock(s string) (Clock, error) {
	raw := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool { return r == ':' || r == '.' })
	if len(raw) != 2 {
		return Clock{}, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(raw[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(raw[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("time %q out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// ParseSlot splits a slot name like "9:00-9:30" into its start and end.
func ParseSlot(slot string) (start, end Clock, err error) {
	parts := strings.Split(slot, "-")
	if len(parts) != 2 {
		return Clock{}, Clock{}, fmt.Errorf("invalid slot %q", slot)
	}
	if start, err = ParseClock(parts[0]); err != nil {
		return Clock{}, Clock{}, err
	}
	if end, err = ParseClock(GetOrString(parts, 1, "")); err != nil {
		return Clock{}, Clock{}, err
	}
	return start, end, nil
}

// FormatSlot shortens a slot to its start, dropping ":00" for whole hours.
// "9:00-9:30" becomes "9", "9:30-10:00" stays "9:30".
func FormatSlot(slot string) string {
	start := strings.TrimSpace(GetOrString(strings.Split(slot, "-"), 0, slot))
	if strings.HasSuffix(start, ":00") {
		return strings.TrimSuffix(start, ":00")
	}
	return start
}

// AddTimeToDate places the clock on the given date in the date's location.
func AddTimeToDate(date time.Time, c Clock) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

// NextMonday returns midnight of the coming Monday, or of today when now is a Monday.
func NextMonday(now time.Time) time.Time {
	offset := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, offset)
}

// ParseWeekday matches English day names and their three-letter prefixes, ignoring case.
func ParseWeekday(day string) (time.Weekday, bool) {
	d := strings.ToLower(strings.TrimSpace(day))
	if len(d) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if d == name || d == name[:3] {
			return wd, true
		}
	}
	return 0, false
}
