package gfxbuf

import (
	"fmt"
	"image"
	"image/draw"
)

type FillType string

const (
	FillSolid      = FillType("solid")
	FillHGradient  = FillType("hgradient")
	FillVGradient  = FillType("vgradient")
	FillDGradient  = FillType("dgradient")
	FillADGradient = FillType("adgradient")
)

// Fill describes how a background is painted.
// Solid fills only use From.
type Fill struct {
	Type FillType `toml:"type" yaml:"type"`
	From Color    `toml:"from" yaml:"from"`
	To   Color    `toml:"to,omitempty" yaml:"to,omitempty"`
}

func SolidFill(c Color) Fill {
	return Fill{Type: FillSolid, From: c}
}

// FillBuffer paints the whole buffer with the given fill
func FillBuffer(b *Buffer, f Fill) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("fill: %w", ErrInvalidSize)
	}
	return FillRect(b, b.img.Rect, f)
}

// FillRect paints rect of the buffer. Gradients span rect, not the buffer.
func FillRect(b *Buffer, rect image.Rectangle, f Fill) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("fill: %w", ErrInvalidSize)
	}
	rect = rect.Intersect(b.img.Rect)
	if rect.Empty() {
		return nil
	}
	from, to := f.From.NRGBA(), f.To.NRGBA()
	w, h := rect.Dx(), rect.Dy()

	switch f.Type {
	case FillSolid, "":
		draw.Draw(b.img, rect, image.NewUniform(from), image.Point{}, draw.Src)
	case FillHGradient:
		for x := 0; x < w; x++ {
			c := interpolate(from, to, x, w-1)
			for y := 0; y < h; y++ {
				b.img.SetNRGBA(rect.Min.X+x, rect.Min.Y+y, c)
			}
		}
	case FillVGradient:
		for y := 0; y < h; y++ {
			c := interpolate(from, to, y, h-1)
			for x := 0; x < w; x++ {
				b.img.SetNRGBA(rect.Min.X+x, rect.Min.Y+y, c)
			}
		}
	case FillDGradient:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.img.SetNRGBA(rect.Min.X+x, rect.Min.Y+y, interpolate(from, to, x+y, w+h-2))
			}
		}
	case FillADGradient:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.img.SetNRGBA(rect.Min.X+x, rect.Min.Y+y, interpolate(from, to, (w-1-x)+y, w+h-2))
			}
		}
	default:
		return fmt.Errorf("unknown fill type %q", f.Type)
	}
	return nil
}
