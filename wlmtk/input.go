// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import "image"

// Linux input event codes for pointer buttons
const (
	BtnLeft   = uint32(0x110)
	BtnRight  = uint32(0x111)
	BtnMiddle = uint32(0x112)
)

type ButtonEventType int

const (
	ButtonDown = ButtonEventType(iota)
	ButtonUp
)

type ButtonEvent struct {
	Button   uint32
	Type     ButtonEventType
	TimeMsec uint32
}

type AxisOrientation int

const (
	AxisVertical = AxisOrientation(iota)
	AxisHorizontal
)

type AxisSource int

const (
	AxisSourceWheel = AxisSource(iota)
	AxisSourceFinger
	AxisSourceContinuous
	AxisSourceWheelTilt
)

type AxisEvent struct {
	Source        AxisSource
	Orientation   AxisOrientation
	Delta         float64
	DeltaDiscrete int32
	TimeMsec      uint32
}

// KeyEvent is a key press or release. Keysyms are the xkb keysyms the key
// translates to under the current keymap.
type KeyEvent struct {
	Keycode   uint32
	Keysyms   []uint32
	Pressed   bool
	Modifiers uint32
	TimeMsec  uint32
}

// Edges is a bitmask of window edges, used for resizing
type Edges uint32

const (
	EdgeNone = Edges(0)
	EdgeTop  = Edges(1 << (iota - 1))
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func inRect(r image.Rectangle, x, y float64) bool {
	return x >= float64(r.Min.X) && x < float64(r.Max.X) &&
		y >= float64(r.Min.Y) && y < float64(r.Max.Y)
}
