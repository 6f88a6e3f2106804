// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

type Orientation int

const (
	Horizontal = Orientation(iota)
	Vertical
)

// Box is a Container stacking its visible children along one axis, in list
// order, with fixed spacing between them
type Box struct {
	Container
	corig       ContainerVmt
	orientation Orientation
	spacing     int
}

func NewBox(orientation Orientation, spacing int) *Box {
	b := &Box{}
	b.init("box", orientation, spacing)
	return b
}

func (b *Box) init(name string, orientation Orientation, spacing int) {
	b.Container.init(name)
	b.orientation = orientation
	b.spacing = spacing
	b.corig = b.ExtendContainer(ContainerVmt{
		UpdateLayout: b.updateLayout,
	})
}

func (b *Box) Orientation() Orientation {
	return b.orientation
}

func (b *Box) updateLayout() {
	pos := 0
	for _, e := range b.elements {
		if !e.visible {
			continue
		}
		dims, ok := e.Dimensions()
		if !ok {
			continue
		}
		switch b.orientation {
		case Horizontal:
			e.SetPosition(pos-dims.Min.X, -dims.Min.Y)
			pos += dims.Dx() + b.spacing
		case Vertical:
			e.SetPosition(-dims.Min.X, pos-dims.Min.Y)
			pos += dims.Dy() + b.spacing
		}
	}
	b.corig.UpdateLayout()
}
