// Package render composes the announcement image: a weekday title and a
// vertical list of bordered entry boxes drawn over a background picture.
//
// The drawing surface is a Canvas backed by a gg context over an RGBA copy
// of the background. All geometry fed into it is integer page-space; the
// gg/freetype layer only ever sees absolute coordinates that were derived
// from a slot anchor via translation.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/streamcrew/schedgen/pkg/errors"
	"github.com/streamcrew/schedgen/pkg/geometry"
)

// lineSpacing is the extra pixel gap between the lines of a multi-line label.
const lineSpacing = 4

// Canvas is the drawing surface the announcement is composed onto. It is
// exclusively owned by one compose call and not reused across runs.
type Canvas struct {
	ctx *gg.Context
	dst draw.Image
}

// NewCanvas wraps img in a drawing context. The image is copied into an
// RGBA surface so avatar alpha compositing works regardless of the source
// pixel format.
func NewCanvas(img image.Image) *Canvas {
	ctx := gg.NewContextForImage(img)
	// gg surfaces are always *image.RGBA underneath.
	dst := ctx.Image().(draw.Image)
	return &Canvas{ctx: ctx, dst: dst}
}

// Size returns the pixel dimensions of the surface.
func (c *Canvas) Size() geometry.Size {
	return geometry.Size{Width: c.ctx.Width(), Height: c.ctx.Height()}
}

// Image returns the composited surface.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG encodes the surface to a PNG file at path. This is the final step
// of a run: nothing is written unless every draw before it succeeded.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
	}
	return nil
}

// StrokeRect outlines the rectangle spanning topLeft to topLeft+size. The
// stroke grows inward from the given bounds.
func (c *Canvas) StrokeRect(topLeft geometry.Point, size geometry.Size, col geometry.RGB, width int) {
	half := float64(width) / 2
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(float64(width))
	c.ctx.DrawRectangle(
		float64(topLeft.X)+half,
		float64(topLeft.Y)+half,
		float64(size.Width-width),
		float64(size.Height-width),
	)
	c.ctx.Stroke()
}

// DrawTextCentered draws text horizontally centered on anchor.X with the
// top of the first line at anchor.Y. The measured width of the widest line
// positions the block, and shorter lines are centered within it. The shift
// rounds half-widths up, so odd widths land one extra pixel to the left.
func (c *Canvas) DrawTextCentered(text string, anchor geometry.Point, face font.Face, src color.Color) {
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(src),
		Face: face,
	}

	lines := strings.Split(text, "\n")
	widths := make([]int, len(lines))
	blockWidth := 0
	for i, line := range lines {
		widths[i] = d.MeasureString(line).Ceil()
		if widths[i] > blockWidth {
			blockWidth = widths[i]
		}
	}
	left := anchor.X - (blockWidth+1)/2

	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil() + lineSpacing
	baseline := anchor.Y + metrics.Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(left+(blockWidth-widths[i])/2, baseline)
		d.DrawString(line)
		baseline += lineHeight
	}
}

// MeasureText returns the pixel width of the widest line of text in face.
func (c *Canvas) MeasureText(text string, face font.Face) int {
	d := &font.Drawer{Face: face}
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if w := d.MeasureString(line).Ceil(); w > width {
			width = w
		}
	}
	return width
}

// PasteImage alpha-composites src onto the surface with its top-left corner
// at topLeft. The source's own alpha channel is the clip mask.
func (c *Canvas) PasteImage(src image.Image, topLeft geometry.Point) {
	c.ctx.DrawImage(src, topLeft.X, topLeft.Y)
}

// resizeAvatar scales src to exactly width x height pixels.
func resizeAvatar(src image.Image, width, height int) image.Image {
	return imaging.Resize(src, width, height, imaging.Lanczos)
}
