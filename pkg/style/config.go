package style

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/streamcrew/schedgen/pkg/errors"
	"github.com/streamcrew/schedgen/pkg/geometry"
)

// Config is the decoded schedgen.toml file. Everything lives under the
// [schedgen] table:
//
//	[schedgen.style]
//	schedule_y = 200
//	schedule_height = 800
//	weekday_y = 10        # optional
//	[schedgen.style.weekday_font]
//	file = "anton.ttf"
//	size = 72
//
//	[schedgen.entry_style]
//	stroke_width = 4
//	max_height = 160
//	min_spacing = 20
//	width = 600
//	avatar_x = -220
//	avatar_margin = 2     # optional
//	[schedgen.entry_style.stroke_color]
//	r = 255
//	g = 255
//	b = 255
//	...
//
//	[schedgen.streamers.vinnydays]
//	service = "twitch.tv"
//	avatar = "avatars/vinnydays.png"
type Config struct {
	Schedgen ConfigRoot `toml:"schedgen"`
}

// ConfigRoot is the [schedgen] table.
type ConfigRoot struct {
	Style      StyleConfig         `toml:"style"`
	EntryStyle EntryConfig         `toml:"entry_style"`
	Streamers  map[string]Streamer `toml:"streamers"`
}

// Streamer is one [schedgen.streamers.<name>] entry.
type Streamer struct {
	Service  string `toml:"service"`
	Avatar   string `toml:"avatar"`
	Username string `toml:"username"` // optional display override for the drawn handle
}

// StyleConfig is the [schedgen.style] table.
type StyleConfig struct {
	WeekdayFont    FontConfig `toml:"weekday_font"`
	WeekdayY       *int       `toml:"weekday_y"`
	ScheduleY      int        `toml:"schedule_y"`
	ScheduleHeight int        `toml:"schedule_height"`
}

// EntryConfig is the [schedgen.entry_style] table.
type EntryConfig struct {
	StrokeWidth  int            `toml:"stroke_width"`
	MaxHeight    int            `toml:"max_height"`
	MinSpacing   int            `toml:"min_spacing"`
	Width        int            `toml:"width"`
	StrokeColor  ColorConfig    `toml:"stroke_color"`
	URLFont      FontConfig     `toml:"url_font"`
	TimeFont     FontConfig     `toml:"time_font"`
	URLPosition  PositionConfig `toml:"url_position"`
	TimePosition PositionConfig `toml:"time_position"`
	AvatarX      int            `toml:"avatar_x"`
	AvatarMargin *int           `toml:"avatar_margin"`
}

// FontConfig names a font file and its point size.
type FontConfig struct {
	File string  `toml:"file"`
	Size float64 `toml:"size"`
}

// PositionConfig is an x/y offset pair.
type PositionConfig struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// ColorConfig is an r/g/b triple in [0, 255].
type ColorConfig struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
}

// LoadConfig reads and decodes the TOML configuration at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return &cfg, nil
}

// Announcement resolves the configuration into a drawable style, loading
// every referenced font. Font files that do not exist are looked up by name
// in the system font directories.
func (c *Config) Announcement() (*Announcement, error) {
	weekdayFace, err := LoadFace(c.Schedgen.Style.WeekdayFont)
	if err != nil {
		return nil, err
	}
	urlFace, err := LoadFace(c.Schedgen.EntryStyle.URLFont)
	if err != nil {
		return nil, err
	}
	timeFace, err := LoadFace(c.Schedgen.EntryStyle.TimeFont)
	if err != nil {
		return nil, err
	}

	weekdayY := DefaultWeekdayY
	if c.Schedgen.Style.WeekdayY != nil {
		weekdayY = *c.Schedgen.Style.WeekdayY
	}
	avatarMargin := DefaultAvatarMargin
	if c.Schedgen.EntryStyle.AvatarMargin != nil {
		avatarMargin = *c.Schedgen.EntryStyle.AvatarMargin
	}

	raw := c.Schedgen.EntryStyle
	return &Announcement{
		WeekdayFont:         weekdayFace,
		WeekdayY:            weekdayY,
		ScheduleY:           c.Schedgen.Style.ScheduleY,
		ScheduleTotalHeight: c.Schedgen.Style.ScheduleHeight,
		Entry: Entry{
			StrokeWidth:  raw.StrokeWidth,
			MaxHeight:    raw.MaxHeight,
			MinSpacing:   raw.MinSpacing,
			Width:        raw.Width,
			StrokeColor:  geometry.RGB{R: raw.StrokeColor.R, G: raw.StrokeColor.G, B: raw.StrokeColor.B},
			URLFont:      urlFace,
			TimeFont:     timeFace,
			URLPosition:  geometry.Point{X: raw.URLPosition.X, Y: raw.URLPosition.Y},
			TimePosition: geometry.Point{X: raw.TimePosition.X, Y: raw.TimePosition.Y},
			AvatarX:      raw.AvatarX,
			AvatarMargin: avatarMargin,
		},
	}, nil
}
