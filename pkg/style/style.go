// Package style holds the visual configuration of the announcement image:
// fonts, colors, offsets, and spacing constants. Values are assembled once
// from a TOML file at startup and are read-only afterwards.
package style

import (
	"golang.org/x/image/font"

	"github.com/streamcrew/schedgen/pkg/geometry"
)

// Default insets, used when the configuration leaves them unset.
const (
	// DefaultWeekdayY is the top inset of the weekday title in pixels.
	DefaultWeekdayY = 10

	// DefaultAvatarMargin is the gap between an entry's border stroke and
	// its avatar, applied above and below.
	DefaultAvatarMargin = 2
)

// Entry describes how a single schedule entry box is drawn. Positions are
// offsets relative to the box center.
type Entry struct {
	StrokeWidth  int
	MaxHeight    int
	MinSpacing   int
	Width        int
	StrokeColor  geometry.RGB
	URLFont      font.Face
	TimeFont     font.Face
	URLPosition  geometry.Point
	TimePosition geometry.Point
	AvatarX      int // horizontal offset of the avatar center
	AvatarMargin int
}

// Announcement describes the whole announcement image: the weekday title
// and the vertical block the schedule entries are allocated into.
type Announcement struct {
	WeekdayFont         font.Face
	WeekdayY            int
	ScheduleY           int
	ScheduleTotalHeight int
	Entry               Entry
}
