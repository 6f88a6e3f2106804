// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"fmt"

	"github.com/mstarongithub/wlmaker/gfxbuf"
)

type MenuItemState int

const (
	MenuItemEnabled = MenuItemState(iota)
	MenuItemHighlighted
	MenuItemDisabled
)

func (s MenuItemState) String() string {
	switch s {
	case MenuItemEnabled:
		return "enabled"
	case MenuItemHighlighted:
		return "highlighted"
	case MenuItemDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("MenuItemState(%d)", int(s))
	}
}

type MenuItemVmt struct {
	// Clicked runs when the left button is released over a highlighted item
	Clicked func()
}

// MenuItem is a line of text in a menu
type MenuItem struct {
	Buffer
	orig  ElementVmt
	mvmt  MenuItemVmt
	style MenuItemStyle

	text    string
	width   int
	enabled bool
	state   MenuItemState
	// One texture per state, indexed by MenuItemState
	textures [3]*gfxbuf.Buffer
}

func NewMenuItem(text string, style MenuItemStyle, width int) (*MenuItem, error) {
	m := &MenuItem{
		style:   style,
		text:    text,
		enabled: true,
		state:   MenuItemEnabled,
	}
	m.Buffer.init("menu-item")
	m.orig = m.Element.Extend(ElementVmt{
		Destroy:       m.destroy,
		PointerEnter:  m.pointerEnter,
		PointerLeave:  m.pointerLeave,
		PointerButton: m.pointerButton,
	})
	m.mvmt = MenuItemVmt{Clicked: func() {}}
	if err := m.SetWidth(width); err != nil {
		m.Destroy()
		return nil, err
	}
	return m, nil
}

// ExtendMenuItem overlays the non-nil fields of ext and returns the table
// that was in place before
func (m *MenuItem) ExtendMenuItem(ext MenuItemVmt) MenuItemVmt {
	orig := m.mvmt
	if ext.Clicked != nil {
		m.mvmt.Clicked = ext.Clicked
	}
	return orig
}

func (m *MenuItem) Text() string {
	return m.text
}

func (m *MenuItem) State() MenuItemState {
	return m.state
}

func (m *MenuItem) Enabled() bool {
	return m.enabled
}

// Texture returns the texture drawn for state
func (m *MenuItem) Texture(state MenuItemState) *gfxbuf.Buffer {
	return m.textures[state]
}

// SetWidth redraws the textures of all states, then shows the one for the
// current state. On error the previous textures stay in place.
func (m *MenuItem) SetWidth(width int) error {
	if err := m.redraw(width, m.text); err != nil {
		return err
	}
	m.width = width
	return nil
}

// SetText redraws the textures with a new text
func (m *MenuItem) SetText(text string) error {
	if err := m.redraw(m.width, text); err != nil {
		return err
	}
	m.text = text
	return nil
}

// SetEnabled enables or disables the item. An item enabled while the
// pointer is over it goes straight to highlighted.
func (m *MenuItem) SetEnabled(enabled bool) {
	m.enabled = enabled
	switch {
	case !enabled:
		m.setState(MenuItemDisabled)
	case m.PointerInside():
		m.setState(MenuItemHighlighted)
	default:
		m.setState(MenuItemEnabled)
	}
}

func (m *MenuItem) setState(state MenuItemState) {
	m.state = state
	m.SetBuffer(m.textures[state])
}

func (m *MenuItem) redraw(width int, text string) error {
	var textures [3]*gfxbuf.Buffer
	for state, spec := range []struct {
		fill  gfxbuf.Fill
		color gfxbuf.Color
	}{
		MenuItemEnabled:     {m.style.Fill, m.style.EnabledTextColor},
		MenuItemHighlighted: {m.style.HighlightedFill, m.style.HighlightedTextColor},
		MenuItemDisabled:    {m.style.Fill, m.style.DisabledTextColor},
	} {
		buf, err := m.renderTexture(width, text, spec.fill, spec.color)
		if err != nil {
			unlockAll(textures[:]...)
			return err
		}
		textures[state] = buf
	}

	old := m.textures
	m.textures = textures
	m.setState(m.state)
	unlockAll(old[:]...)
	return nil
}

func (m *MenuItem) renderTexture(width int, text string, fill gfxbuf.Fill, color gfxbuf.Color) (*gfxbuf.Buffer, error) {
	buf, err := renderBackground(width, m.style.Height, fill)
	if err != nil {
		return nil, err
	}
	if err = gfxbuf.DrawBezel(buf, m.style.BezelWidth, true); err == nil {
		err = gfxbuf.DrawTextCentered(buf, m.style.BezelWidth+6, text, m.style.Font, color)
	}
	if err != nil {
		buf.Unlock()
		return nil, err
	}
	return buf, nil
}

func (m *MenuItem) destroy() {
	m.orig.Destroy()
	unlockAll(m.textures[:]...)
	m.textures = [3]*gfxbuf.Buffer{}
}

func (m *MenuItem) pointerEnter() {
	if m.state == MenuItemEnabled {
		m.setState(MenuItemHighlighted)
	}
	m.orig.PointerEnter()
}

func (m *MenuItem) pointerLeave() {
	if m.state == MenuItemHighlighted {
		m.setState(MenuItemEnabled)
	}
	m.orig.PointerLeave()
}

func (m *MenuItem) pointerButton(ev *ButtonEvent) bool {
	if ev.Button != BtnLeft {
		return false
	}
	if ev.Type == ButtonUp && m.state == MenuItemHighlighted {
		m.mvmt.Clicked()
	}
	return true
}
