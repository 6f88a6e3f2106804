// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package gfxbuf provides reference counted pixel buffers and the drawing
// primitives used to render toolkit widgets into them.
package gfxbuf

import (
	"errors"
	"fmt"
	"image"
)

var ErrInvalidSize = errors.New("invalid buffer size")

// Buffer is a reference counted ARGB pixel surface.
// A new Buffer starts with one reference, held by its creator.
// Every Lock must be matched by an Unlock, the pixels are released once the
// last reference is dropped.
type Buffer struct {
	img  *image.NRGBA
	refs int
	// Called once, when the last reference is dropped
	onDrop []func(*Buffer)
}

// New creates a buffer of the given size, holding one reference
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		img:  image.NewNRGBA(image.Rect(0, 0, width, height)),
		refs: 1,
	}, nil
}

// FromImage wraps an existing image. The buffer takes ownership of img.
func FromImage(img *image.NRGBA) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidSize)
	}
	if img.Bounds().Min != (image.Point{}) {
		img = &image.NRGBA{
			Pix:    img.Pix,
			Stride: img.Stride,
			Rect:   image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()),
		}
	}
	if img.Rect.Dx() <= 0 || img.Rect.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, img.Rect.Dx(), img.Rect.Dy())
	}
	return &Buffer{img: img, refs: 1}, nil
}

// Lock adds a reference and returns the buffer, for chaining.
// Locking a nil buffer is a no-op.
func (b *Buffer) Lock() *Buffer {
	if b == nil {
		return nil
	}
	if b.refs <= 0 {
		panic("gfxbuf: Lock on a released buffer")
	}
	b.refs++
	return b
}

// Unlock drops a reference. Once no reference is left the pixels are freed
// and the drop listeners run.
func (b *Buffer) Unlock() {
	if b == nil {
		return
	}
	if b.refs <= 0 {
		panic("gfxbuf: Unlock on a released buffer")
	}
	b.refs--
	if b.refs > 0 {
		return
	}
	b.img = nil
	listeners := b.onDrop
	b.onDrop = nil
	for _, l := range listeners {
		l(b)
	}
}

// OnDrop registers a listener called when the last reference is dropped
func (b *Buffer) OnDrop(l func(*Buffer)) {
	b.onDrop = append(b.onDrop, l)
}

// Refs returns the number of references currently held
func (b *Buffer) Refs() int {
	if b == nil {
		return 0
	}
	return b.refs
}

// Released reports whether the last reference was dropped
func (b *Buffer) Released() bool {
	return b.refs <= 0
}

func (b *Buffer) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Rect.Dx()
}

func (b *Buffer) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Rect.Dy()
}

// Image returns the backing pixels. Only valid while a reference is held.
func (b *Buffer) Image() *image.NRGBA {
	return b.img
}

// Clone creates a new buffer holding a copy of all pixels
func (b *Buffer) Clone() (*Buffer, error) {
	return CopyArea(b, 0, 0, b.Width(), b.Height())
}
