package render

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/streamcrew/schedgen/pkg/errors"
)

// LoadImage opens and decodes the image at path. The file handle is closed
// before returning, so callers hold only the decoded pixels.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "decode image %s", path)
	}
	return img, nil
}
