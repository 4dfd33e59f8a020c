package style

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/streamcrew/schedgen/pkg/errors"
)

// LoadFace loads a TrueType font face at the configured point size. When
// cfg.File does not exist as a path, it is treated as a font name and
// resolved against the system font directories.
func LoadFace(cfg FontConfig) (font.Face, error) {
	path := cfg.File
	if _, err := os.Stat(path); err != nil {
		found, ferr := findfont.Find(path)
		if ferr != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, ferr, "font %q", cfg.File)
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "read font %s", path)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "parse font %s", path)
	}

	return truetype.NewFace(ttf, &truetype.Options{
		Size:    cfg.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
