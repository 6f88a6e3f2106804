package gfxbuf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

var (
	bezelLight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}
	bezelDark  = color.NRGBA{A: 0x99}
)

// DrawBezel draws a bezel of the given width along the buffer's edges.
// A raised bezel is lit from the top left, a sunken one from the bottom right.
func DrawBezel(b *Buffer, width int, raised bool) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("bezel: %w", ErrInvalidSize)
	}
	return DrawBezelAt(b, b.img.Rect, width, raised)
}

// DrawBezelAt draws a bezel around rect
func DrawBezelAt(b *Buffer, rect image.Rectangle, width int, raised bool) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("bezel: %w", ErrInvalidSize)
	}
	rect = rect.Intersect(b.img.Rect)
	if width <= 0 || rect.Empty() {
		return nil
	}
	w, h := rect.Dx(), rect.Dy()
	topLeft := image.NewAlpha(image.Rect(0, 0, w, h))
	bottomRight := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dTop, dLeft := y, x
			dBottom, dRight := h-1-y, w-1-x
			switch {
			case dTop < width && dTop <= dRight:
				topLeft.SetAlpha(x, y, color.Alpha{A: 0xff})
			case dLeft < width && dLeft <= dBottom:
				topLeft.SetAlpha(x, y, color.Alpha{A: 0xff})
			case dBottom < width || dRight < width:
				bottomRight.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	light, dark := bezelLight, bezelDark
	if !raised {
		light, dark = dark, light
	}
	draw.DrawMask(b.img, rect, image.NewUniform(light), image.Point{}, topLeft, image.Point{}, draw.Over)
	draw.DrawMask(b.img, rect, image.NewUniform(dark), image.Point{}, bottomRight, image.Point{}, draw.Over)
	return nil
}

// DrawCloseIcon draws an "X" into the size x size square at (x, y)
func DrawCloseIcon(b *Buffer, x, y, size int, c Color) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("close icon: %w", ErrInvalidSize)
	}
	inset := size / 4
	thickness := max(1, size/10)
	span := size - 2*inset
	col := c.NRGBA()
	for i := 0; i < span; i++ {
		for t := 0; t < thickness; t++ {
			px := x + inset + i + t - thickness/2
			b.img.SetNRGBA(px, y+inset+i, col)
			b.img.SetNRGBA(x+size-1-inset-i+t-thickness/2, y+inset+i, col)
		}
	}
	return nil
}

// DrawMinimizeIcon draws a small window outline into the size x size square
// at (x, y)
func DrawMinimizeIcon(b *Buffer, x, y, size int, c Color) error {
	if b == nil || b.img == nil {
		return fmt.Errorf("minimize icon: %w", ErrInvalidSize)
	}
	inset := size / 4
	thickness := max(1, size/10)
	outer := image.Rect(x+inset, y+inset, x+size-inset, y+size-inset)
	inner := outer.Inset(thickness)
	col := c.NRGBA()
	for py := outer.Min.Y; py < outer.Max.Y; py++ {
		for px := outer.Min.X; px < outer.Max.X; px++ {
			if !image.Pt(px, py).In(inner) {
				b.img.SetNRGBA(px, py, col)
			}
		}
	}
	return nil
}

// CopyArea creates a new buffer holding a copy of the given area of src
func CopyArea(src *Buffer, x, y, width, height int) (*Buffer, error) {
	if src == nil || src.img == nil {
		return nil, fmt.Errorf("copy area: %w", ErrInvalidSize)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("copy area: %w: %dx%d", ErrInvalidSize, width, height)
	}
	area := image.Rect(x, y, x+width, y+height)
	if !area.In(src.img.Rect) {
		return nil, fmt.Errorf("copy area %v outside of %v: %w", area, src.img.Rect, ErrInvalidSize)
	}
	return FromImage(imaging.Crop(src.img, area))
}

// LoadImage reads an image file and scales it to width x height
func LoadImage(path string, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("load image: %w: %dx%d", ErrInvalidSize, width, height)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return FromImage(imaging.Resize(img, width, height, imaging.Lanczos))
}

// Blit draws src over dst with its top left corner at (x, y)
func Blit(dst, src *Buffer, x, y int) error {
	if dst == nil || dst.img == nil || src == nil || src.img == nil {
		return fmt.Errorf("blit: %w", ErrInvalidSize)
	}
	r := src.img.Rect.Add(image.Pt(x, y))
	draw.Draw(dst.img, r, src.img, image.Point{}, draw.Over)
	return nil
}
