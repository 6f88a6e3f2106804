// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package scene is the compositing tree the toolkit attaches its nodes to.
//
// The interfaces mirror the subset of the wlroots scene graph the toolkit
// needs. Scene is an in-memory implementation of them, used for headless
// operation and tests.
package scene

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

type Node interface {
	// Parent returns the tree holding this node, nil for a scene root
	Parent() Tree
	// SetPosition places the node relative to its parent tree
	SetPosition(x, y int)
	Position() (x, y int)
	// SetEnabled toggles whether the node (and its subtree) is displayed
	SetEnabled(enabled bool)
	Enabled() bool
	// Reparent moves the node into another tree, on top of its siblings there
	Reparent(parent Tree)
	// RaiseToTop moves the node above all of its siblings
	RaiseToTop()
	// LowerToBottom moves the node below all of its siblings
	LowerToBottom()
	// PlaceAbove moves the node directly above sibling
	PlaceAbove(sibling Node)
	// Destroy removes the node and its subtree. Destroy listeners run
	// children first.
	Destroy()
	// OnDestroy registers a listener for the node's destruction
	OnDestroy(func())
}

type Tree interface {
	Node
	NewTree() Tree
	// NewBuffer creates a buffer node displaying b. The node does not hold a
	// reference on b, the caller keeps it locked while it is displayed.
	NewBuffer(b *gfxbuf.Buffer) BufferNode
	// Children returns the child nodes, bottom-most first
	Children() []Node
}

type BufferNode interface {
	Node
	SetBuffer(b *gfxbuf.Buffer)
	Buffer() *gfxbuf.Buffer
}

// Scene is an in-memory scene graph
type Scene struct {
	root *tree
}

func New() *Scene {
	s := &Scene{}
	s.root = &tree{node: node{enabled: true}}
	s.root.self = s.root
	return s
}

func (s *Scene) Root() Tree {
	return s.root
}

// NodeAt returns the top-most enabled buffer node covering the given
// position, in root coordinates, and the position relative to that node
func (s *Scene) NodeAt(x, y int) (BufferNode, int, int) {
	return s.root.nodeAt(x, y)
}

type node struct {
	self      Node
	parent    *tree
	x, y      int
	enabled   bool
	destroyed bool
	listeners []func()
}

func (n *node) Parent() Tree {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) SetPosition(x, y int) {
	n.x, n.y = x, y
}

func (n *node) Position() (int, int) {
	return n.x, n.y
}

func (n *node) SetEnabled(enabled bool) {
	n.enabled = enabled
}

func (n *node) Enabled() bool {
	return n.enabled
}

func (n *node) OnDestroy(l func()) {
	n.listeners = append(n.listeners, l)
}

func (n *node) Reparent(parent Tree) {
	p, ok := parent.(*tree)
	if !ok {
		panic("scene: Reparent into a foreign tree")
	}
	if n.parent != nil {
		n.parent.remove(n.self)
	}
	n.parent = p
	p.children = append(p.children, n.self)
}

func (n *node) RaiseToTop() {
	if n.parent == nil {
		return
	}
	n.parent.remove(n.self)
	n.parent.children = append(n.parent.children, n.self)
}

func (n *node) LowerToBottom() {
	if n.parent == nil {
		return
	}
	n.parent.remove(n.self)
	n.parent.children = append([]Node{n.self}, n.parent.children...)
}

func (n *node) PlaceAbove(sibling Node) {
	if n.parent == nil || sibling == nil || sibling.Parent() != Tree(n.parent) {
		return
	}
	n.parent.remove(n.self)
	for i, c := range n.parent.children {
		if c == sibling {
			n.parent.children = append(n.parent.children[:i+1],
				append([]Node{n.self}, n.parent.children[i+1:]...)...)
			return
		}
	}
}

func (n *node) destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	if n.parent != nil {
		n.parent.remove(n.self)
		n.parent = nil
	}
	listeners := n.listeners
	n.listeners = nil
	for _, l := range listeners {
		l()
	}
}

type tree struct {
	node
	children []Node
}

func (t *tree) NewTree() Tree {
	c := &tree{node: node{parent: t, enabled: true}}
	c.self = c
	t.children = append(t.children, c)
	return c
}

func (t *tree) NewBuffer(b *gfxbuf.Buffer) BufferNode {
	c := &bufferNode{node: node{parent: t, enabled: true}, buffer: b}
	c.self = c
	t.children = append(t.children, c)
	return c
}

func (t *tree) Children() []Node {
	return append([]Node(nil), t.children...)
}

func (t *tree) Destroy() {
	for len(t.children) > 0 {
		t.children[len(t.children)-1].Destroy()
	}
	t.destroy()
}

func (t *tree) remove(child Node) {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

func (t *tree) nodeAt(x, y int) (BufferNode, int, int) {
	if !t.enabled {
		return nil, 0, 0
	}
	for i := len(t.children) - 1; i >= 0; i-- {
		switch c := t.children[i].(type) {
		case *tree:
			if n, nx, ny := c.nodeAt(x-c.x, y-c.y); n != nil {
				return n, nx, ny
			}
		case *bufferNode:
			lx, ly := x-c.x, y-c.y
			if c.enabled && c.buffer != nil && !c.buffer.Released() &&
				lx >= 0 && ly >= 0 && lx < c.buffer.Width() && ly < c.buffer.Height() {
				return c, lx, ly
			}
		}
	}
	return nil, 0, 0
}

type bufferNode struct {
	node
	buffer *gfxbuf.Buffer
}

func (b *bufferNode) SetBuffer(buf *gfxbuf.Buffer) {
	b.buffer = buf
}

func (b *bufferNode) Buffer() *gfxbuf.Buffer {
	return b.buffer
}

func (b *bufferNode) Destroy() {
	b.buffer = nil
	b.destroy()
}
