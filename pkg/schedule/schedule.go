// Package schedule models a single day's stream schedule: who streams,
// where, and when.
package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/streamcrew/schedgen/pkg/errors"
)

// Time is a wall-clock time of day.
type Time struct {
	Hour   int
	Minute int
}

// Label renders the time the way it is drawn on the image: the hour is
// left unpadded, the minute is zero-padded to two digits.
func (t Time) Label() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than other.
func (t Time) Before(other Time) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// Entry is one streamer's appearance on the schedule.
type Entry struct {
	Service  string // streaming service domain, e.g. "twitch.tv"
	Username string // handle drawn on the image and used for avatar lookup
	Time     Time
}

// Label returns the two-line uppercased identity label drawn in the entry
// box: the service domain with a trailing slash, then the username.
func (e Entry) Label() string {
	return strings.ToUpper(fmt.Sprintf("%s/\n%s", e.Service, e.Username))
}

// Schedule is an ordered list of entries. The order determines the vertical
// order on the image, top to bottom; the renderer never reorders it.
type Schedule []Entry

// SortByTime orders the schedule chronologically. The sort is stable, so
// entries sharing a start time keep their given order.
func (s Schedule) SortByTime() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Time.Before(s[j].Time) })
}

// Day pairs a weekday name with the schedule for that day.
type Day struct {
	Weekday  string
	Schedule Schedule
}

// Avatars maps a username to the path of that streamer's avatar image.
// Every username on a schedule must resolve before rendering starts.
type Avatars map[string]string

// StreamSpec is one parsed "streamer;H:MM" command-line argument.
type StreamSpec struct {
	Streamer string
	Time     Time
}

// ParseStreamSpec parses a "streamer;H:MM" argument into its parts.
func ParseStreamSpec(s string) (StreamSpec, error) {
	name, rest, ok := strings.Cut(s, ";")
	if !ok || name == "" {
		return StreamSpec{}, errors.New(errors.ErrCodeInvalidStream, "invalid stream %q, want \"streamer;H:MM\"", s)
	}
	t, err := ParseTime(rest)
	if err != nil {
		return StreamSpec{}, errors.Wrap(errors.ErrCodeInvalidStream, err, "invalid stream %q", s)
	}
	return StreamSpec{Streamer: name, Time: t}, nil
}

// ParseTime parses an "H:MM" wall-clock time. The hour may be one or two
// digits; both fields must be in range for a time of day.
func ParseTime(s string) (Time, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return Time{}, errors.New(errors.ErrCodeInvalidStream, "invalid time %q, want \"H:MM\"", s)
	}
	hour, err := parseClockField(h, 23)
	if err != nil {
		return Time{}, errors.Wrap(errors.ErrCodeInvalidStream, err, "invalid hour in %q", s)
	}
	minute, err := parseClockField(m, 59)
	if err != nil {
		return Time{}, errors.Wrap(errors.ErrCodeInvalidStream, err, "invalid minute in %q", s)
	}
	return Time{Hour: hour, Minute: minute}, nil
}

func parseClockField(s string, max int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		n = n*10 + int(r-'0')
		if n > max {
			return 0, fmt.Errorf("%d out of range [0, %d]", n, max)
		}
	}
	return n, nil
}
