// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

type ButtonVmt struct {
	// Clicked runs when the left button is released over a pressed button
	Clicked func()
}

// Button is a Buffer switching between a released and a pressed texture
type Button struct {
	Buffer
	orig ElementVmt
	bvmt ButtonVmt

	released *gfxbuf.Buffer
	pressed  *gfxbuf.Buffer
	isPressed bool
}

func NewButton() *Button {
	b := &Button{}
	b.init("button")
	return b
}

func (b *Button) init(name string) {
	b.Buffer.init(name)
	b.orig = b.Element.Extend(ElementVmt{
		Destroy:       b.destroy,
		PointerButton: b.pointerButton,
		PointerLeave:  b.pointerLeave,
	})
	b.bvmt = ButtonVmt{Clicked: func() {}}
}

// ExtendButton overlays the non-nil fields of ext and returns the table that
// was in place before
func (b *Button) ExtendButton(ext ButtonVmt) ButtonVmt {
	orig := b.bvmt
	if ext.Clicked != nil {
		b.bvmt.Clicked = ext.Clicked
	}
	return orig
}

// SetTextures sets the released and pressed textures, locking both, and
// shows the one matching the current state
func (b *Button) SetTextures(released, pressed *gfxbuf.Buffer) {
	oldReleased, oldPressed := b.released, b.pressed
	b.released = released.Lock()
	b.pressed = pressed.Lock()
	b.applyState()
	oldReleased.Unlock()
	oldPressed.Unlock()
}

func (b *Button) Pressed() bool {
	return b.isPressed
}

func (b *Button) applyState() {
	if b.isPressed {
		b.SetBuffer(b.pressed)
	} else {
		b.SetBuffer(b.released)
	}
}

func (b *Button) destroy() {
	b.orig.Destroy()
	b.released.Unlock()
	b.pressed.Unlock()
	b.released, b.pressed = nil, nil
}

func (b *Button) pointerButton(ev *ButtonEvent) bool {
	if ev.Button != BtnLeft {
		return false
	}
	switch ev.Type {
	case ButtonDown:
		if b.PointerInside() {
			b.isPressed = true
			b.applyState()
		}
	case ButtonUp:
		if !b.isPressed {
			break
		}
		b.isPressed = false
		b.applyState()
		// Last, Clicked may destroy the button
		if b.PointerInside() {
			b.bvmt.Clicked()
		}
	}
	return true
}

func (b *Button) pointerLeave() {
	if b.isPressed {
		b.isPressed = false
		b.applyState()
	}
	b.orig.PointerLeave()
}
