package render

import (
	"image"
	"image/color"

	"github.com/streamcrew/schedgen/pkg/geometry"
	"github.com/streamcrew/schedgen/pkg/schedule"
	"github.com/streamcrew/schedgen/pkg/style"
)

// textColor is the fill for the time and identity labels.
var textColor color.Color = color.White

// RenderEntry draws one schedule entry into its allocated slot: the
// bordered box, the time label, the two-line identity label, and the
// avatar, all anchored to the slot's center. A failure part-way leaves the
// surface partially drawn; there is no rollback.
func RenderEntry(canvas *Canvas, entry schedule.Entry, avatarPath string, topLeft geometry.Point, slotHeight int, st style.Entry) error {
	size := geometry.Size{Width: st.Width, Height: slotHeight}
	canvas.StrokeRect(topLeft, size, st.StrokeColor, st.StrokeWidth)

	center := topLeft.Translate(size.Width/2, size.Height/2)

	timeAt := center.Translate(st.TimePosition.X, st.TimePosition.Y)
	canvas.DrawTextCentered(entry.Time.Label(), timeAt, st.TimeFont, textColor)

	urlAt := center.Translate(st.URLPosition.X, st.URLPosition.Y)
	canvas.DrawTextCentered(entry.Label(), urlAt, st.URLFont, textColor)

	avatar, err := LoadImage(avatarPath)
	if err != nil {
		return err
	}

	w, h := avatarTarget(slotHeight, st, avatar.Bounds())
	resized := resizeAvatar(avatar, w, h)

	bounds := resized.Bounds()
	at := center.
		Translate(-(bounds.Dx()+1)/2, -(bounds.Dy()+1)/2).
		Translate(st.AvatarX, 0)
	canvas.PasteImage(resized, at)
	return nil
}

// avatarTarget returns the width and height arguments for the avatar resize
// call. The slot-derived extent (slot height minus the stroke and margins)
// goes into the width argument and the aspect-scaled extent into the height
// argument. Swapping them changes the output geometry; keep this orientation.
func avatarTarget(slotHeight int, st style.Entry, original image.Rectangle) (int, int) {
	desired := slotHeight - 2*st.StrokeWidth - 2*st.AvatarMargin
	proportion := float64(desired) / float64(original.Dy())
	scaled := int(float64(original.Dx()) * proportion)
	return desired, scaled
}
