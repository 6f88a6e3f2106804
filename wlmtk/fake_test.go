package wlmtk

import (
	"fmt"
	"image"
)

// eventLog collects the calls fake elements receive, in order
type eventLog []string

func (l *eventLog) add(format string, args ...any) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

func (l *eventLog) reset() {
	*l = nil
}

// fakeElement is a visible element of fixed size that records every call
type fakeElement struct {
	Element
	log           *eventLog
	width, height int
	destroyCount  int
	motionX       float64
	motionY       float64
}

func newFakeElement(name string, width, height int, log *eventLog) *fakeElement {
	f := &fakeElement{log: log, width: width, height: height}
	f.Element.init(name)
	var orig ElementVmt
	orig = f.Element.Extend(ElementVmt{
		Destroy: func() {
			f.destroyCount++
			f.log.add("%s:destroy", f.name)
			orig.Destroy()
		},
		Dimensions: func() (image.Rectangle, bool) {
			return image.Rect(0, 0, f.width, f.height), true
		},
		PointerMotion: func(x, y float64, _ uint32) bool {
			f.motionX, f.motionY = x, y
			f.log.add("%s:motion", f.name)
			return true
		},
		PointerButton: func(ev *ButtonEvent) bool {
			f.log.add("%s:button", f.name)
			return true
		},
		PointerAxis: func(ev *AxisEvent) bool {
			f.log.add("%s:axis", f.name)
			return true
		},
		PointerEnter: func() { f.log.add("%s:enter", f.name) },
		PointerLeave: func() { f.log.add("%s:leave", f.name) },
		Keyboard: func(ev *KeyEvent) bool {
			f.log.add("%s:key", f.name)
			return true
		},
	})
	f.SetVisible(true)
	return f
}

// RequestSize lets a fakeElement serve as window content
func (f *fakeElement) RequestSize(width, height int) error {
	f.width, f.height = width, height
	return nil
}

// recordingRequester counts the requests decorations make
type recordingRequester struct {
	moves     int
	resizes   []Edges
	closes    int
	minimizes int
}

func (r *recordingRequester) RequestMove()              { r.moves++ }
func (r *recordingRequester) RequestResize(edges Edges) { r.resizes = append(r.resizes, edges) }
func (r *recordingRequester) RequestClose()             { r.closes++ }
func (r *recordingRequester) RequestMinimize()          { r.minimizes++ }

// recordingCursor remembers the last cursor set
type recordingCursor struct {
	last CursorType
	sets int
}

func (c *recordingCursor) SetCursor(t CursorType) {
	c.last = t
	c.sets++
}

func leftDown() *ButtonEvent {
	return &ButtonEvent{Button: BtnLeft, Type: ButtonDown}
}

func leftUp() *ButtonEvent {
	return &ButtonEvent{Button: BtnLeft, Type: ButtonUp}
}
