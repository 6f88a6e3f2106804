// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"errors"
	"image"
	"slices"

	"github.com/mstarongithub/wlmaker/scene"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyParented = errors.New("element already has a parent container")
	ErrNotAChild       = errors.New("element is not held by this container")
)

// ContainerVmt holds the overridable operations of a Container
type ContainerVmt struct {
	// UpdateLayout positions the children. Overrides must chain to the
	// implementation they replaced, which hands the update on to the parent.
	UpdateLayout func()
}

// Container is an Element holding an ordered list of child elements.
// The first element is the top-most: it is painted last and hit first.
type Container struct {
	Element
	cvmt ContainerVmt
	orig ElementVmt

	elements      []*Element
	pointerFocus  *Element
	keyboardFocus *Element
	sceneTree     scene.Tree

	// Last pointer position seen, used to re-evaluate pointer focus after a
	// layout change
	pointerX, pointerY float64
	pointerTime        uint32
	pointerValid       bool
}

func NewContainer(name string) *Container {
	c := &Container{}
	c.init(name)
	return c
}

func (c *Container) init(name string) {
	c.Element.init(name)
	c.Element.container = c
	c.orig = c.Element.Extend(ElementVmt{
		Destroy:         c.destroy,
		CreateSceneNode: c.createSceneNode,
		Dimensions:      c.dimensions,
		PointerMotion:   c.pointerMotion,
		PointerButton:   c.pointerButton,
		PointerAxis:     c.pointerAxis,
		PointerLeave:    c.pointerLeave,
		Keyboard:        c.keyboard,
	})
	c.cvmt = ContainerVmt{
		UpdateLayout: c.updateLayout,
	}
}

// ExtendContainer overlays the non-nil fields of ext and returns the table
// that was in place before
func (c *Container) ExtendContainer(ext ContainerVmt) ContainerVmt {
	orig := c.cvmt
	if ext.UpdateLayout != nil {
		c.cvmt.UpdateLayout = ext.UpdateLayout
	}
	return orig
}

// Elements returns the children, top-most first
func (c *Container) Elements() []*Element {
	return slices.Clone(c.elements)
}

// PointerFocus returns the child the pointer is over, or nil
func (c *Container) PointerFocus() *Element {
	return c.pointerFocus
}

func (c *Container) KeyboardFocus() *Element {
	return c.keyboardFocus
}

// SceneTree returns the tree the children attach to, nil while the
// container is not part of a scene
func (c *Container) SceneTree() scene.Tree {
	return c.sceneTree
}

// AddElement adds e as the top-most child
func (c *Container) AddElement(e *Element) error {
	if err := c.checkAdd(e); err != nil {
		return err
	}
	c.elements = slices.Insert(c.elements, 0, e)
	e.setParent(c)
	if e.sceneNode != nil {
		e.sceneNode.RaiseToTop()
	}
	return nil
}

// AddElementBefore adds e directly above sibling. A nil sibling adds e as
// the bottom-most child.
func (c *Container) AddElementBefore(sibling, e *Element) error {
	if sibling != nil && sibling.parent != c {
		logrus.WithFields(logrus.Fields{
			"container": c.name,
			"sibling":   sibling.name,
		}).Errorln("Sibling not held by container")
		return ErrNotAChild
	}
	if err := c.checkAdd(e); err != nil {
		return err
	}
	if sibling == nil {
		c.elements = append(c.elements, e)
	} else {
		c.elements = slices.Insert(c.elements, slices.Index(c.elements, sibling), e)
	}
	e.setParent(c)
	if e.sceneNode != nil {
		if sibling != nil && sibling.sceneNode != nil {
			e.sceneNode.PlaceAbove(sibling.sceneNode)
		} else if sibling == nil {
			e.sceneNode.LowerToBottom()
		}
	}
	return nil
}

func (c *Container) checkAdd(e *Element) error {
	if e.parent != nil {
		logrus.WithFields(logrus.Fields{
			"container": c.name,
			"element":   e.name,
			"parent":    e.parent.name,
		}).Errorln("Refusing to add an element that already has a parent")
		return ErrAlreadyParented
	}
	if e == &c.Element {
		logrus.WithField("container", c.name).Errorln("Refusing to add a container to itself")
		return ErrAlreadyParented
	}
	return nil
}

// RemoveElement detaches e from the container. It panics if e is not a
// child of c.
func (c *Container) RemoveElement(e *Element) {
	idx := slices.Index(c.elements, e)
	if idx < 0 || e.parent != c {
		panic("wlmtk: RemoveElement of an element not held by " + c.name)
	}
	c.elements = slices.Delete(c.elements, idx, idx+1)
	if c.pointerFocus == e {
		c.setPointerFocus(nil)
	}
	if c.keyboardFocus == e {
		c.keyboardFocus = nil
	}
	e.parent = nil
	e.detachFromSceneGraph()
}

// RaiseElement moves e to the top of the container
func (c *Container) RaiseElement(e *Element) {
	idx := slices.Index(c.elements, e)
	if idx < 0 {
		panic("wlmtk: RaiseElement of an element not held by " + c.name)
	}
	c.elements = slices.Insert(slices.Delete(c.elements, idx, idx+1), 0, e)
	if e.sceneNode != nil {
		e.sceneNode.RaiseToTop()
	}
}

// SetKeyboardFocus directs keyboard events to e, which must be a child.
// nil clears the focus.
func (c *Container) SetKeyboardFocus(e *Element) error {
	if e != nil && e.parent != c {
		logrus.WithFields(logrus.Fields{
			"container": c.name,
			"element":   e.name,
		}).Errorln("Keyboard focus on an element not held by container")
		return ErrNotAChild
	}
	c.keyboardFocus = e
	return nil
}

// UpdateLayout recomputes the children's positions. It must be called after
// any change to a child's size, it is not done implicitly.
func (c *Container) UpdateLayout() {
	c.cvmt.UpdateLayout()
}

// base implementation of UpdateLayout
func (c *Container) updateLayout() {
	if c.parent != nil {
		c.parent.UpdateLayout()
		return
	}
	// Top of the tree: children may have moved below the pointer
	if c.pointerValid {
		c.pointerMotion(c.pointerX, c.pointerY, c.pointerTime)
	}
}

func (c *Container) destroy() {
	for len(c.elements) > 0 {
		e := c.elements[0]
		c.RemoveElement(e)
		e.Destroy()
	}
	c.orig.Destroy()
}

func (c *Container) createSceneNode(parent scene.Tree) scene.Node {
	tree := parent.NewTree()
	c.sceneTree = tree
	tree.OnDestroy(func() {
		if c.sceneTree == tree {
			c.sceneTree = nil
		}
	})
	// Bottom-most first, each new node lands on top
	for i := len(c.elements) - 1; i >= 0; i-- {
		c.elements[i].attachToSceneGraph()
	}
	return tree
}

// setSceneTree attaches the container's children directly to tree, for
// containers that are the root of the toolkit's part of a scene
func (c *Container) setSceneTree(tree scene.Tree) {
	c.sceneTree = tree
	for i := len(c.elements) - 1; i >= 0; i-- {
		c.elements[i].attachToSceneGraph()
	}
}

func (c *Container) dimensions() (image.Rectangle, bool) {
	var dims image.Rectangle
	found := false
	for _, e := range c.elements {
		if !e.visible {
			continue
		}
		d, ok := e.Dimensions()
		if !ok {
			continue
		}
		d = d.Add(image.Pt(e.x, e.y))
		if !found {
			dims, found = d, true
		} else {
			dims = dims.Union(d)
		}
	}
	return dims, found
}

// elementAt returns the top-most child accepting the pointer at (x, y)
func (c *Container) elementAt(x, y float64) *Element {
	for _, e := range c.elements {
		if e.hitTest(x-float64(e.x), y-float64(e.y)) {
			return e
		}
	}
	return nil
}

func (c *Container) setPointerFocus(e *Element) {
	if c.pointerFocus == e {
		return
	}
	if old := c.pointerFocus; old != nil {
		c.pointerFocus = nil
		old.PointerLeave()
	}
	c.pointerFocus = e
	if e != nil {
		e.PointerEnter()
	}
}

func (c *Container) pointerMotion(x, y float64, timeMsec uint32) bool {
	c.pointerX, c.pointerY, c.pointerTime, c.pointerValid = x, y, timeMsec, true

	target := c.elementAt(x, y)
	c.setPointerFocus(target)
	if target == nil {
		return false
	}
	return target.PointerMotion(x-float64(target.x), y-float64(target.y), timeMsec)
}

func (c *Container) pointerButton(ev *ButtonEvent) bool {
	if c.pointerFocus == nil {
		return false
	}
	return c.pointerFocus.PointerButton(ev)
}

func (c *Container) pointerAxis(ev *AxisEvent) bool {
	if c.pointerFocus == nil {
		return false
	}
	return c.pointerFocus.PointerAxis(ev)
}

func (c *Container) pointerLeave() {
	c.setPointerFocus(nil)
	c.pointerValid = false
	c.orig.PointerLeave()
}

func (c *Container) keyboard(ev *KeyEvent) bool {
	if c.keyboardFocus == nil {
		return false
	}
	return c.keyboardFocus.Keyboard(ev)
}
