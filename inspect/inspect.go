// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package inspect renders toolkit state for the repl
package inspect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/mstarongithub/wlmaker/common/ipc"
	"github.com/mstarongithub/wlmaker/wlmtk"
)

// ElementTree draws e and all elements below it, top-most child first
func ElementTree(e *wlmtk.Element) string {
	return elementNode(e).String()
}

func elementNode(e *wlmtk.Element) *tree.Tree {
	t := tree.Root(label(e))
	if c := e.AsContainer(); c != nil {
		for _, child := range c.Elements() {
			if child.AsContainer() != nil {
				t.Child(elementNode(child))
			} else {
				t.Child(label(child))
			}
		}
	}
	return t
}

func label(e *wlmtk.Element) string {
	x, y := e.Position()
	w, h := e.Size()
	s := fmt.Sprintf("%s @%d,%d %dx%d", e.Name(), x, y, w, h)
	if !e.Visible() {
		s += " hidden"
	}
	if e.PointerInside() {
		s += " pointer"
	}
	return s
}

// Windows lists the windows mapped to root
func Windows(root *wlmtk.Root) ipc.WindowsResponse {
	res := ipc.WindowsResponse{Windows: []ipc.WindowInfo{}}
	for _, w := range root.Windows() {
		x, y := w.Position()
		width, height := w.Size()
		res.Windows = append(res.Windows, ipc.WindowInfo{
			Title:     w.Title(),
			X:         x,
			Y:         y,
			Width:     width,
			Height:    height,
			Activated: w.Activated(),
			Visible:   w.Visible(),
		})
	}
	return res
}
