package gfxbuf

import "image/color"

// Color is a non-premultiplied 0xAARRGGBB value, the format used in style
// files.
type Color uint32

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		A: uint8(c >> 24),
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// FromNRGBA is the inverse of Color.NRGBA
func FromNRGBA(c color.NRGBA) Color {
	return Color(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

func lerp(from, to uint8, num, den int) uint8 {
	if den <= 0 {
		return from
	}
	return uint8(int(from) + (int(to)-int(from))*num/den)
}

func interpolate(from, to color.NRGBA, num, den int) color.NRGBA {
	return color.NRGBA{
		R: lerp(from.R, to.R, num, den),
		G: lerp(from.G, to.G, num, den),
		B: lerp(from.B, to.B, num, den),
		A: lerp(from.A, to.A, num, den),
	}
}
