// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package wlmtk is the toolkit the compositor draws its decorations, menus
// and docks with.
//
// Every widget embeds an Element. An Element dispatches through an
// ElementVmt, a table of functions that widgets override with Extend. Extend
// returns the table that was in place before, so an override can call
// through to the implementation it replaced:
//
//	b.orig = b.Element.Extend(ElementVmt{PointerLeave: b.pointerLeave})
//	...
//	func (b *Button) pointerLeave() {
//		b.release()
//		b.orig.PointerLeave()
//	}
//
// All toolkit calls must happen on the compositor's event loop.
package wlmtk

import (
	"image"

	"github.com/mstarongithub/wlmaker/scene"
	"github.com/sirupsen/logrus"
)

// ElementVmt holds the overridable operations of an Element.
// A nil field in an extension leaves the current implementation in place.
type ElementVmt struct {
	// Destroy releases everything the element owns. Overrides must chain to
	// the implementation they replaced.
	Destroy func()
	// CreateSceneNode creates the element's node below parent
	CreateSceneNode func(parent scene.Tree) scene.Node
	// Dimensions returns the element's extents relative to its position.
	// ok is false if the element currently has no extents.
	Dimensions func() (dims image.Rectangle, ok bool)
	// PointerMotion receives the pointer position in element coordinates and
	// reports whether the motion was consumed
	PointerMotion func(x, y float64, timeMsec uint32) bool
	PointerButton func(ev *ButtonEvent) bool
	PointerAxis   func(ev *AxisEvent) bool
	PointerEnter  func()
	PointerLeave  func()
	Keyboard      func(ev *KeyEvent) bool
}

// Element is the base of every node in the toolkit's tree
type Element struct {
	vmt  ElementVmt
	name string

	x, y          int
	visible       bool
	pointerInside bool
	destroyed     bool

	// Container holding this element. Not an owning reference.
	parent *Container
	// Set if this element is the base of a Container
	container *Container
	sceneNode scene.Node
}

// init sets up the base implementation. Every widget constructor calls it
// before extending the table.
func (e *Element) init(name string) {
	e.name = name
	e.vmt = ElementVmt{
		Destroy:         e.destroy,
		CreateSceneNode: func(scene.Tree) scene.Node { return nil },
		Dimensions:      func() (image.Rectangle, bool) { return image.Rectangle{}, false },
		PointerMotion:   func(float64, float64, uint32) bool { return true },
		PointerButton:   func(*ButtonEvent) bool { return false },
		PointerAxis:     func(*AxisEvent) bool { return false },
		PointerEnter:    func() {},
		PointerLeave:    func() {},
		Keyboard:        func(*KeyEvent) bool { return false },
	}
}

// Extend overlays the non-nil fields of ext onto the element's table and
// returns the table that was in place before.
func (e *Element) Extend(ext ElementVmt) ElementVmt {
	orig := e.vmt
	if ext.Destroy != nil {
		e.vmt.Destroy = ext.Destroy
	}
	if ext.CreateSceneNode != nil {
		e.vmt.CreateSceneNode = ext.CreateSceneNode
	}
	if ext.Dimensions != nil {
		e.vmt.Dimensions = ext.Dimensions
	}
	if ext.PointerMotion != nil {
		e.vmt.PointerMotion = ext.PointerMotion
	}
	if ext.PointerButton != nil {
		e.vmt.PointerButton = ext.PointerButton
	}
	if ext.PointerAxis != nil {
		e.vmt.PointerAxis = ext.PointerAxis
	}
	if ext.PointerEnter != nil {
		e.vmt.PointerEnter = ext.PointerEnter
	}
	if ext.PointerLeave != nil {
		e.vmt.PointerLeave = ext.PointerLeave
	}
	if ext.Keyboard != nil {
		e.vmt.Keyboard = ext.Keyboard
	}
	return orig
}

// AsElement returns the element itself. Promoted to every widget, so that
// any widget can be passed where an element is expected.
func (e *Element) AsElement() *Element {
	return e
}

func (e *Element) Name() string {
	return e.name
}

// Destroy destroys the element and everything it owns. An element still held
// by a container is removed from it first.
func (e *Element) Destroy() {
	if e.destroyed {
		logrus.WithField("element", e.name).Errorln("Element destroyed twice")
		return
	}
	if e.parent != nil {
		logrus.WithField("element", e.name).Debugln("Destroying element still held by a container")
		e.parent.RemoveElement(e)
	}
	e.vmt.Destroy()
	e.destroyed = true
}

// base implementation of Destroy
func (e *Element) destroy() {
	e.detachFromSceneGraph()
}

// Parent returns the container holding this element, or nil
func (e *Element) Parent() *Container {
	return e.parent
}

// AsContainer returns the container this element is the base of, or nil
func (e *Element) AsContainer() *Container {
	return e.container
}

// SetPosition sets the position relative to the parent container
func (e *Element) SetPosition(x, y int) {
	e.x, e.y = x, y
	if e.sceneNode != nil {
		e.sceneNode.SetPosition(x, y)
	}
}

// Position returns the position relative to the parent container
func (e *Element) Position() (x, y int) {
	return e.x, e.y
}

// AbsolutePosition sums up the positions along the parent chain
func (e *Element) AbsolutePosition() (x, y int) {
	for el := e; el != nil; el = el.parentElement() {
		x += el.x
		y += el.y
	}
	return x, y
}

func (e *Element) parentElement() *Element {
	if e.parent == nil {
		return nil
	}
	return &e.parent.Element
}

// SetVisible shows or hides the element. A hidden element keeps its scene
// node, disabled, and gives up pointer focus.
func (e *Element) SetVisible(visible bool) {
	if e.visible == visible {
		return
	}
	e.visible = visible
	if e.sceneNode != nil {
		e.sceneNode.SetEnabled(visible)
	}
	if !visible && e.parent != nil && e.parent.pointerFocus == e {
		e.parent.setPointerFocus(nil)
	}
}

func (e *Element) Visible() bool {
	return e.visible
}

// PointerInside reports whether the pointer is currently over this element
func (e *Element) PointerInside() bool {
	return e.pointerInside
}

// SceneNode returns the element's node, nil while not attached to a scene
func (e *Element) SceneNode() scene.Node {
	return e.sceneNode
}

func (e *Element) Dimensions() (image.Rectangle, bool) {
	return e.vmt.Dimensions()
}

// Size returns width and height, zero if the element has no extents
func (e *Element) Size() (width, height int) {
	dims, ok := e.vmt.Dimensions()
	if !ok {
		return 0, 0
	}
	return dims.Dx(), dims.Dy()
}

func (e *Element) PointerMotion(x, y float64, timeMsec uint32) bool {
	return e.vmt.PointerMotion(x, y, timeMsec)
}

func (e *Element) PointerButton(ev *ButtonEvent) bool {
	return e.vmt.PointerButton(ev)
}

func (e *Element) PointerAxis(ev *AxisEvent) bool {
	return e.vmt.PointerAxis(ev)
}

// PointerEnter marks the pointer as inside. Repeated calls are no-ops.
func (e *Element) PointerEnter() {
	if e.pointerInside {
		return
	}
	e.pointerInside = true
	e.vmt.PointerEnter()
}

// PointerLeave marks the pointer as outside. Repeated calls are no-ops.
func (e *Element) PointerLeave() {
	if !e.pointerInside {
		return
	}
	e.pointerInside = false
	e.vmt.PointerLeave()
}

func (e *Element) Keyboard(ev *KeyEvent) bool {
	return e.vmt.Keyboard(ev)
}

// hitTest reports whether the element would accept the pointer at (x, y),
// in element coordinates
func (e *Element) hitTest(x, y float64) bool {
	if !e.visible {
		return false
	}
	if e.container != nil {
		return e.container.elementAt(x, y) != nil
	}
	dims, ok := e.vmt.Dimensions()
	return ok && inRect(dims, x, y)
}

func (e *Element) setParent(c *Container) {
	e.parent = c
	e.attachToSceneGraph()
}

// attachToSceneGraph makes sure the element has a node below its parent's
// tree, or none if the parent has no tree
func (e *Element) attachToSceneGraph() {
	var tree scene.Tree
	if e.parent != nil {
		tree = e.parent.sceneTree
	}
	if tree == nil {
		e.detachFromSceneGraph()
		return
	}
	if e.sceneNode != nil {
		if e.sceneNode.Parent() != tree {
			e.sceneNode.Reparent(tree)
		}
		return
	}

	node := e.vmt.CreateSceneNode(tree)
	if node == nil {
		return
	}
	e.sceneNode = node
	node.SetPosition(e.x, e.y)
	node.SetEnabled(e.visible)
	node.OnDestroy(func() {
		if e.sceneNode == node {
			e.sceneNode = nil
		}
	})
}

func (e *Element) detachFromSceneGraph() {
	if node := e.sceneNode; node != nil {
		e.sceneNode = nil
		node.Destroy()
	}
}
