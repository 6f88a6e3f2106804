package main

import (
	"fmt"

	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/sirupsen/logrus"
	"github.com/swaywm/go-wlroots/wlroots"
)

// Where minimized clients get parked. Outside of any sane output layout.
const parkedPosition = -1 << 20

// toplevelWindow ties an xdg toplevel to the toolkit window decorating it.
// All methods expect the server's tkLock to be held. Only Minimize and
// Restore are safe off the event loop.
type toplevelWindow struct {
	server   *Server
	toplevel wlroots.XDGTopLevel
	surface  *wlmtk.Surface
	window   *wlmtk.Window
}

func (server *Server) newToplevelWindow(toplevel wlroots.XDGTopLevel) (*toplevelWindow, error) {
	tw := &toplevelWindow{server: server, toplevel: toplevel}
	tw.surface = wlmtk.NewSurface(tw)
	geo := toplevel.Base().Geometry()
	tw.surface.Commit(geo.Width, geo.Height)

	window, err := wlmtk.NewWindow(server.root.Env(), tw.surface, server.style.Window)
	if err != nil {
		tw.surface.Destroy()
		return nil, fmt.Errorf("decorating toplevel: %w", err)
	}
	tw.window = window
	window.SetHandler(tw)
	if title := toplevel.Title(); title != "" {
		if err = window.SetTitle(title); err != nil {
			logrus.WithError(err).Warningln("Failed to set window title")
		}
	}

	// Cascade new windows a bit so they don't stack exactly
	n := len(server.root.Windows())
	window.SetPosition(32+n*24, 32+n*24)
	if err = server.root.MapWindow(window); err != nil {
		window.Destroy()
		tw.surface.Destroy()
		return nil, fmt.Errorf("mapping window: %w", err)
	}
	return tw, nil
}

// RequestSize asks the client for a new size. The surface only changes once
// the client commits.
func (tw *toplevelWindow) RequestSize(width, height int) error {
	tw.toplevel.Base().TopLevelSetSize(uint32(width), uint32(height))
	return nil
}

func (tw *toplevelWindow) Close() {
	logrus.WithField("title", tw.window.Title()).Debugln("Closing toplevel")
	tw.toplevel.Base().SendClose()
}

// Minimize hides the window. The next flush moves the keyboard on and parks
// the client surface off screen.
func (tw *toplevelWindow) Minimize() {
	tw.window.SetVisible(false)
	if tw.server.root.ActiveWindow() == tw.window {
		tw.server.root.ActivateTopmost()
	}
}

func (tw *toplevelWindow) Minimized() bool {
	return !tw.window.Visible()
}

// Restore brings a minimized window back and activates it. Only touches the
// toolkit, the repl calls it off the event loop.
func (tw *toplevelWindow) Restore() {
	tw.window.SetVisible(true)
	tw.server.root.ActivateWindow(tw.window)
}

// sync picks up the size last committed by the client and moves the client
// surface to where the toolkit placed it
func (tw *toplevelWindow) sync() {
	geo := tw.toplevel.Base().Geometry()
	tw.surface.Commit(geo.Width, geo.Height)
	node := tw.toplevel.Base().SceneTree().Node()
	if !tw.window.Visible() {
		node.SetPosition(parkedPosition, parkedPosition)
		return
	}
	x, y := tw.surface.AbsolutePosition()
	// The geometry may exclude client side shadows
	node.SetPosition(float64(x-geo.X), float64(y-geo.Y))
}

// destroy unmaps and tears down the decorations. The client surface is gone
// or going already.
func (tw *toplevelWindow) destroy() {
	tw.window.Destroy()
	tw.surface.Destroy()
}
