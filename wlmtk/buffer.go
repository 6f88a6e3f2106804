// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"image"

	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/mstarongithub/wlmaker/scene"
)

// Buffer is an Element displaying a single pixel buffer
type Buffer struct {
	Element
	orig ElementVmt

	// Holds a reference while set
	buffer      *gfxbuf.Buffer
	sceneBuffer scene.BufferNode
}

// NewBuffer creates a Buffer element showing buf, which may be nil
func NewBuffer(buf *gfxbuf.Buffer) *Buffer {
	b := &Buffer{}
	b.init("buffer")
	b.SetBuffer(buf)
	return b
}

func (b *Buffer) init(name string) {
	b.Element.init(name)
	b.orig = b.Element.Extend(ElementVmt{
		Destroy:         b.destroy,
		CreateSceneNode: b.createSceneNode,
		Dimensions:      b.dimensions,
	})
}

// SetBuffer displays buf. The new buffer is locked before the previous one
// is unlocked, so setting the same buffer twice is harmless. nil clears the
// content.
func (b *Buffer) SetBuffer(buf *gfxbuf.Buffer) {
	if buf == b.buffer {
		return
	}
	old := b.buffer
	b.buffer = buf.Lock()
	if b.sceneBuffer != nil {
		b.sceneBuffer.SetBuffer(buf)
	}
	old.Unlock()
}

// CurrentBuffer returns the buffer being displayed
func (b *Buffer) CurrentBuffer() *gfxbuf.Buffer {
	return b.buffer
}

func (b *Buffer) destroy() {
	b.detachFromSceneGraph()
	b.SetBuffer(nil)
	b.orig.Destroy()
}

func (b *Buffer) createSceneNode(parent scene.Tree) scene.Node {
	if b.sceneBuffer != nil {
		if b.sceneBuffer.Parent() != parent {
			b.sceneBuffer.Reparent(parent)
		}
		return b.sceneBuffer
	}
	node := parent.NewBuffer(b.buffer)
	b.sceneBuffer = node
	node.OnDestroy(func() {
		if b.sceneBuffer == node {
			b.sceneBuffer = nil
		}
	})
	return node
}

// Without content the buffer has no extent
func (b *Buffer) dimensions() (image.Rectangle, bool) {
	if b.buffer == nil {
		return image.Rectangle{}, false
	}
	return image.Rect(0, 0, b.buffer.Width(), b.buffer.Height()), true
}
