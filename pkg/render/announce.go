package render

import (
	"strings"

	"github.com/streamcrew/schedgen/pkg/errors"
	"github.com/streamcrew/schedgen/pkg/geometry"
	"github.com/streamcrew/schedgen/pkg/render/layout"
	"github.com/streamcrew/schedgen/pkg/schedule"
	"github.com/streamcrew/schedgen/pkg/style"
)

// ComposeAnnouncement draws the full announcement onto canvas: the
// uppercased weekday title centered at the top, then every schedule entry
// in its allocated slot. Entries render in schedule order, top to bottom;
// the first error aborts the remaining entries.
func ComposeAnnouncement(canvas *Canvas, day schedule.Day, avatars schedule.Avatars, st *style.Announcement) error {
	width := canvas.Size().Width

	title := strings.ToUpper(day.Weekday)
	canvas.DrawTextCentered(title, geometry.Point{X: width / 2, Y: st.WeekdayY}, st.WeekdayFont, textColor)

	anchor := geometry.Point{X: width/2 - st.Entry.Width/2, Y: st.ScheduleY}
	slots := layout.Allocate(st.ScheduleTotalHeight, st.Entry.MaxHeight, len(day.Schedule), st.Entry.MinSpacing)

	for i, entry := range day.Schedule {
		avatarPath, ok := avatars[entry.Username]
		if !ok {
			return errors.New(errors.ErrCodeAvatarNotFound, "no avatar for %q", entry.Username)
		}
		slot := slots[i]
		at := anchor.Translate(0, slot.Offset)
		if err := RenderEntry(canvas, entry, avatarPath, at, slot.Height, st.Entry); err != nil {
			return err
		}
	}
	return nil
}
