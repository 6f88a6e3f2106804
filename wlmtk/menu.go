package wlmtk

import (
	"slices"
)

// Menu is a vertical box of menu items
type Menu struct {
	Box
	style MenuStyle
	items []*MenuItem
}

func NewMenu(style MenuStyle) *Menu {
	m := &Menu{style: style}
	m.Box.init("menu", Vertical, 0)
	return m
}

// AddItem creates an item at the bottom of the menu. action runs when the
// item is clicked.
func (m *Menu) AddItem(text string, action func()) (*MenuItem, error) {
	item, err := NewMenuItem(text, m.style.Item, m.style.Width)
	if err != nil {
		return nil, err
	}
	if action != nil {
		item.ExtendMenuItem(MenuItemVmt{Clicked: action})
	}
	if err = m.AddElementBefore(nil, &item.Element); err != nil {
		item.Destroy()
		return nil, err
	}
	item.SetVisible(true)
	m.items = append(m.items, item)
	m.UpdateLayout()
	return item, nil
}

// RemoveItem removes and destroys item
func (m *Menu) RemoveItem(item *MenuItem) {
	idx := slices.Index(m.items, item)
	if idx < 0 {
		panic("wlmtk: RemoveItem of an item not in the menu")
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	m.RemoveElement(&item.Element)
	item.Destroy()
	m.UpdateLayout()
}

func (m *Menu) Items() []*MenuItem {
	return slices.Clone(m.items)
}
