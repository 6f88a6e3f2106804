// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"image"

	"github.com/sirupsen/logrus"
)

// SurfaceClient is the client drawing a Surface's content
type SurfaceClient interface {
	// RequestSize asks the client to draw at a new size. The new size takes
	// effect once the client commits it.
	RequestSize(width, height int) error
}

// Surface is window content drawn by a client outside of the toolkit.
// The toolkit only tracks its extents. Pointer and keyboard events on a
// surface are not consumed, so the compositor can pass them to the client.
type Surface struct {
	Element
	client SurfaceClient

	width, height int
}

func NewSurface(client SurfaceClient) *Surface {
	s := &Surface{client: client}
	s.Element.init("surface")
	s.Element.Extend(ElementVmt{
		Dimensions:    s.dimensions,
		PointerMotion: func(float64, float64, uint32) bool { return false },
	})
	return s
}

// Commit records the size the client drew at and lays out the parent
func (s *Surface) Commit(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	logrus.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
	}).Debugln("Surface committed new size")
	s.width, s.height = width, height
	if s.parent != nil {
		s.parent.UpdateLayout()
	}
}

func (s *Surface) RequestSize(width, height int) error {
	if s.client == nil {
		s.Commit(width, height)
		return nil
	}
	return s.client.RequestSize(width, height)
}

func (s *Surface) dimensions() (image.Rectangle, bool) {
	return image.Rect(0, 0, s.width, s.height), true
}
