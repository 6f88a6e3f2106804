package gfxbuf

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontWeight string

const (
	FontWeightNormal = FontWeight("normal")
	FontWeightBold   = FontWeight("bold")
)

// Font selects one of the built-in Go fonts
type Font struct {
	Weight FontWeight `toml:"weight" yaml:"weight"`
	// Size in points, at 96 DPI
	Size float64 `toml:"size" yaml:"size"`
}

type faceKey struct {
	weight FontWeight
	size   float64
}

var (
	faceLock  sync.Mutex
	faceCache = map[faceKey]font.Face{}
	parsed    = map[FontWeight]*opentype.Font{}
)

func (f Font) face() (font.Face, error) {
	if f.Size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", f.Size)
	}
	weight := f.Weight
	if weight == "" {
		weight = FontWeightNormal
	}

	faceLock.Lock()
	defer faceLock.Unlock()
	key := faceKey{weight: weight, size: f.Size}
	if face, ok := faceCache[key]; ok {
		return face, nil
	}
	otf, ok := parsed[weight]
	if !ok {
		var data []byte
		switch weight {
		case FontWeightNormal:
			data = goregular.TTF
		case FontWeightBold:
			data = gobold.TTF
		default:
			return nil, fmt.Errorf("unknown font weight %q", weight)
		}
		var err error
		if otf, err = opentype.Parse(data); err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		parsed[weight] = otf
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	faceCache[key] = face
	return face, nil
}

// TextExtents returns the advance width and the ascent of text in font f
func TextExtents(f Font, text string) (width, ascent int, err error) {
	face, err := f.face()
	if err != nil {
		return 0, 0, err
	}
	adv := font.MeasureString(face, text)
	return adv.Ceil(), face.Metrics().Ascent.Ceil(), nil
}

// DrawText draws text with its top left corner at (x, y), clipped to the
// buffer
func DrawText(b *Buffer, x, y int, text string, f Font, c Color) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("text: %w", ErrInvalidSize)
	}
	face, err := f.face()
	if err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return nil
}

// DrawTextCentered draws text vertically centered in the buffer, starting at
// x
func DrawTextCentered(b *Buffer, x int, text string, f Font, c Color) error {
	face, err := f.face()
	if err != nil {
		return err
	}
	m := face.Metrics()
	textHeight := (m.Ascent + m.Descent).Ceil()
	return DrawText(b, x, (b.Height()-textHeight)/2, text, f, c)
}
