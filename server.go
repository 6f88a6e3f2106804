// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mstarongithub/wlmaker/config"
	"github.com/mstarongithub/wlmaker/scene"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/sirupsen/logrus"
	"github.com/swaywm/go-wlroots/wlroots"
	"github.com/swaywm/go-wlroots/xkb"
)

type Server struct {
	display     wlroots.Display // TODO: Refactor into slice of displays
	backend     wlroots.Backend
	renderer    wlroots.Renderer
	allocator   wlroots.Allocator
	scene       wlroots.Scene
	sceneLayout wlroots.SceneOutputLayout

	xdgShell wlroots.XDGShell

	cursor    wlroots.Cursor
	cursorMgr wlroots.XCursorManager

	seat      wlroots.Seat
	keyboards []*Keyboard

	outputLayout wlroots.OutputLayout

	outputs []*wlroots.Output

	conf  *config.Config
	style wlmtk.Style

	// Guards everything below. Taken by the event loop handlers and by the
	// repl goroutine.
	tkLock sync.Mutex
	// Scene the toolkit draws into
	// TODO: Mirror tkScene buffer nodes into the wlroots scene once go-wlroots can create scene buffers from client memory
	tkScene   *scene.Scene
	root      *wlmtk.Root
	toplevels map[wlroots.XDGTopLevel]*toplevelWindow
	// Toplevel holding the keyboard
	focused *toplevelWindow
	// XCursor name the toolkit asked for, applied by flushToolkit
	pendingCursor string
	// Copies of backend state for the repl goroutine
	pointerX, pointerY float64
	outputNames        []string
}

type Keyboard struct {
	dev wlroots.InputDevice
}

// SetCursor implements wlmtk.CursorSetter. The toolkit may run on the repl
// goroutine, so the cursor only changes in the next flushToolkit.
func (server *Server) SetCursor(t wlmtk.CursorType) {
	server.pendingCursor = t.XCursorName()
}

// flushToolkit applies what the toolkit changed to the backend: keyboard
// focus, client surface positions and the cursor image. Only called from
// the event loop, with tkLock held.
func (server *Server) flushToolkit() {
	server.syncFocus()
	server.syncToplevels()
	if server.pendingCursor != "" {
		server.cursor.SetXCursor(server.cursorMgr, server.pendingCursor)
		server.pendingCursor = ""
	}
}

// syncToplevels moves the client surfaces to where the toolkit laid out
// their windows. Called with tkLock held.
func (server *Server) syncToplevels() {
	for _, tw := range server.toplevels {
		tw.sync()
	}
}

// syncFocus gives the keyboard to the client of the toolkit's active
// window. Called with tkLock held.
func (server *Server) syncFocus() {
	active := server.root.ActiveWindow()
	for _, tw := range server.toplevels {
		if tw.window == active {
			server.focusTopLevel(tw)
			return
		}
	}
	// Nothing active, e.g. the last visible window got minimized
	if server.focused != nil {
		server.focused.toplevel.SetActivated(false)
		server.focused = nil
	}
}

func (server *Server) focusTopLevel(tw *toplevelWindow) {
	/* Note: this function only deals with keyboard focus. */
	if tw == nil || tw == server.focused {
		return
	}
	surface := tw.toplevel.Base().Surface()
	prevSurface := server.seat.KeyboardState().FocusedSurface()
	logrus.WithFields(logrus.Fields{
		"previous surface": prevSurface,
		"current surface":  surface,
	}).Debugln("focusTopLevel")

	if !prevSurface.Nil() && prevSurface != surface {
		/*
		 * Deactivate the previously focused surface. This lets the client know
		 * it no longer has focus and the client will repaint accordingly, e.g.
		 * stop displaying a caret.
		 */
		prevTopLevel, err := prevSurface.XDGTopLevel()
		if err == nil {
			prevTopLevel.SetActivated(false)
		}
	}
	server.focused = tw

	/* Move the toplevel to the front */
	tw.toplevel.Base().SceneTree().Node().RaiseToTop()
	tw.toplevel.SetActivated(true)
	/*
	 * Tell the seat to have the keyboard enter this surface. wlroots will keep
	 * track of this and automatically send key events to the appropriate
	 * clients without additional work on your part.
	 */
	server.seat.NotifyKeyboardEnter(surface, server.seat.Keyboard())
}

func (server *Server) handleNewPointer(dev wlroots.InputDevice) {
	/* We don't do anything special with pointers. All of our pointer handling
	 * is proxied through wlr_cursor. */
	server.cursor.AttachInputDevice(dev)
}

func (server *Server) handleKey(keyboard wlroots.Keyboard, time uint32, keyCode uint32, updateState bool, state wlroots.KeyState) {
	// translate libinput keycode to xkbcommon and obtain keysyms
	syms := keyboard.XKBState().Syms(xkb.KeyCode(keyCode + 8))

	handled := false
	modifiers := keyboard.Modifiers()
	if (modifiers&wlroots.KeyboardModifierAlt != 0) && state == wlroots.KeyStatePressed {
		/* If alt is held down and this button was _pressed_, we attempt to
		 * process it as a compositor keybinding. */
		for _, sym := range syms {
			handled = server.handleKeyBinding(sym) || handled
		}
	}
	if handled {
		return
	}

	ev := &wlmtk.KeyEvent{
		Keycode:   keyCode,
		Keysyms:   make([]uint32, 0, len(syms)),
		Pressed:   state == wlroots.KeyStatePressed,
		Modifiers: uint32(modifiers),
		TimeMsec:  time,
	}
	for _, sym := range syms {
		ev.Keysyms = append(ev.Keysyms, uint32(sym))
	}
	server.tkLock.Lock()
	handled = server.root.Keyboard(ev)
	server.flushToolkit()
	server.tkLock.Unlock()

	if !handled {
		/* Otherwise, we pass it along to the client. */
		server.seat.SetKeyboard(keyboard.Base())
		server.seat.NotifyKeyboardKey(time, keyCode, state)
	}
}

func (server *Server) handleNewKeyboard(dev wlroots.InputDevice) {
	keyboard := dev.Keyboard()

	/* We need to prepare an XKB keymap and assign it to the keyboard. This
	 * assumes the defaults (e.g. layout = "us"). */
	context := xkb.NewContext(xkb.KeySymFlagNoFlags)
	keymap := context.KeyMap()
	keyboard.SetKeymap(keymap)
	keymap.Destroy()
	context.Destroy()
	keyboard.SetRepeatInfo(25, 600)

	keyboard.OnModifiers(func(keyboard wlroots.Keyboard) {
		/* This event is raised when a modifier key, such as shift or alt, is
		* pressed. We simply communicate this to the client. */
		server.seat.SetKeyboard(dev)
		server.seat.NotifyKeyboardModifiers(keyboard)
	})
	keyboard.OnKey(server.handleKey)

	server.seat.SetKeyboard(dev)
	server.keyboards = append(server.keyboards, &Keyboard{dev: dev})
}

func (server *Server) handleNewInput(dev wlroots.InputDevice) {
	switch dev.Type() {
	case wlroots.InputDeviceTypePointer:
		server.handleNewPointer(dev)
	case wlroots.InputDeviceTypeKeyboard:
		server.handleNewKeyboard(dev)
	}

	/* We always have a cursor, even if there are no pointer devices, so we
	 * always include that capability. */
	caps := wlroots.SeatCapabilityPointer
	if len(server.keyboards) > 0 {
		caps |= wlroots.SeatCapabilityKeyboard
	}
	server.seat.SetCapabilities(caps)
}

func (server *Server) topLevelAt(lx float64, ly float64) (*toplevelWindow, *wlroots.Surface, float64, float64) {
	/* This returns the topmost node in the scene at the given layout coords.
	 * We only care about surface nodes as we are specifically looking for a
	 * surface in the surface tree of a toplevel. */
	node, sx, sy := server.scene.Tree().Node().At(lx, ly)

	if node.Nil() || node.Type() != wlroots.SceneNodeBuffer {
		return nil, nil, 0, 0
	}
	sceneSurface := node.SceneBuffer().SceneSurface()
	if sceneSurface.Nil() {
		return nil, nil, 0, 0
	}
	surface := sceneSurface.Surface()
	topLevel := surface.XDGSurface().TopLevel()

	// Called with tkLock held
	if tw, ok := server.toplevels[topLevel]; ok {
		return tw, &surface, sx, sy
	}
	return nil, &surface, sx, sy
}

func (server *Server) handleNewFrame(output wlroots.Output) {
	sOut, err := server.scene.SceneOutput(output)
	if err != nil {
		return
	}

	// Pick up sizes clients committed since the last frame, and whatever
	// the repl changed in the toolkit
	server.tkLock.Lock()
	server.flushToolkit()
	server.tkLock.Unlock()

	/* Render the scene if needed and commit the output */
	sOut.Commit()
	sOut.SendFrameDone(time.Now())
}

func (server *Server) handleOutputRequestState(output wlroots.Output, state wlroots.OutputState) {
	/* This function is called when the backend requests a new state for
	 * the output. For example, Wayland and X11 backends request a new mode
	 * when the output window is resized. */
	logrus.WithField("output", output.Name()).Debugln("New state request for output")
	output.CommitState(state)
}

func (server *Server) handleOutputDestroy(output wlroots.Output) {
	logrus.WithField("name", output.Name()).Debugln("Output getting destroyed")
	for i, o := range server.outputs {
		if o.Name() == output.Name() {
			server.outputs = append(server.outputs[:i], server.outputs[i+1:]...)
			break
		}
	}
	server.updateOutputNames()
}

func (server *Server) updateOutputNames() {
	names := make([]string, 0, len(server.outputs))
	for _, o := range server.outputs {
		names = append(names, o.Name())
	}
	server.tkLock.Lock()
	server.outputNames = names
	server.tkLock.Unlock()
}

func (server *Server) handleNewOutput(output wlroots.Output) {
	logrus.WithField("name", output.Name()).Debugln("New output added")
	server.outputs = append(server.outputs, &output)
	server.updateOutputNames()

	/* Configures the output created by the backend to use our allocator
	 * and our renderer. Must be done once, before commiting the output */
	output.InitRender(server.allocator, server.renderer)

	/* The output may be disabled, switch it on. */
	oState := wlroots.NewOutputState()
	oState.StateInit()
	oState.StateSetEnabled(true)

	/* Some backends don't have modes. DRM+KMS does, and we need to set a mode
	 * before we can use the output. We just pick the monitor's preferred mode. */
	mode, err := output.PrefferedMode()
	if err == nil {
		oState.SetMode(mode)
	}

	/* Atomically applies the new output state. */
	output.CommitState(oState)
	oState.Finish()

	output.OnFrame(server.handleNewFrame)
	output.OnRequestState(server.handleOutputRequestState)
	output.OnDestroy(server.handleOutputDestroy)

	/* Adds this to the output layout. The add_auto function arranges outputs
	 * from left-to-right in the order they appear. */
	lOutput := server.outputLayout.AddOutputAuto(output)
	sceneOutput := server.scene.NewOutput(output)
	server.sceneLayout.AddOutput(lOutput, sceneOutput)

	if err = output.SetTitle(fmt.Sprintf("wlmaker - %s", output.Name())); err != nil {
		logrus.WithError(err).WithField("name", output.Name()).Debugln("Output has no title")
	}
}

func (server *Server) handleCursorMotion(dev wlroots.InputDevice, time uint32, dx float64, dy float64) {
	/* The cursor doesn't move unless we tell it to. The cursor automatically
	 * handles constraining the motion to the output layout. */
	server.cursor.Move(dev, dx, dy)
	server.processCursorMotion(time)
}

func (server *Server) handleCursorMotionAbsolute(dev wlroots.InputDevice, time uint32, x float64, y float64) {
	/* Absolute motion happens e.g. when wlroots is running under a Wayland
	 * window rather than KMS+DRM. We have to warp the mouse there. */
	server.cursor.WarpAbsolute(dev, x, y)
	server.processCursorMotion(time)
}

func (server *Server) processCursorMotion(time uint32) {
	server.tkLock.Lock()
	defer server.tkLock.Unlock()
	defer server.flushToolkit()

	x, y := server.cursor.X(), server.cursor.Y()
	server.pointerX, server.pointerY = x, y
	// The toolkit sees the pointer first. Decorations, menus and grabs
	// keep it from the clients.
	consumed := server.root.PointerMotion(x, y, time)
	if consumed || server.root.Grabbing() {
		server.seat.ClearPointerFocus()
		return
	}

	tw, surface, sx, sy := server.topLevelAt(x, y)
	if tw == nil {
		/* If there's no toplevel under the cursor, set the cursor image to a
		 * default. This is what makes the cursor image appear when you move it
		 * around the screen, not over any toplevels. */
		server.SetCursor(wlmtk.CursorDefault)
	}
	if surface != nil {
		/*
		 * The enter event gives the surface "pointer focus", which is distinct
		 * from keyboard focus. wlroots will avoid sending duplicate enter/motion
		 * events.
		 */
		server.seat.NotifyPointerEnter(*surface, sx, sy)
		server.seat.NotifyPointerMotion(time, sx, sy)
	} else {
		/* Clear pointer focus so future button events and such are not sent to
		 * the last client to have the cursor over it. */
		server.seat.ClearPointerFocus()
	}
}

func (server *Server) handleSetCursorRequest(client wlroots.SeatClient, surface wlroots.Surface, _ uint32, hotspotX int32, hotspotY int32) {
	/* This can be sent by any client, so we check to make sure this one
	 * actually has pointer focus first. */
	focusedClient := server.seat.PointerState().FocusedClient()
	if focusedClient == client {
		server.cursor.SetSurface(surface, hotspotX, hotspotY)
	}
}

func (server *Server) handleCursorButton(_ wlroots.InputDevice, time uint32, button uint32, state wlroots.ButtonState) {
	ev := &wlmtk.ButtonEvent{
		Button:   button,
		Type:     wlmtk.ButtonDown,
		TimeMsec: time,
	}
	if state == wlroots.ButtonStateReleased {
		ev.Type = wlmtk.ButtonUp
	}

	server.tkLock.Lock()
	consumed := server.root.PointerButton(ev)
	// A press activates the window below, client or decoration alike
	server.flushToolkit()
	server.tkLock.Unlock()

	if !consumed {
		/* Notify the client with pointer focus that a button press has occurred */
		server.seat.NotifyPointerButton(time, button, state)
	}
}

func (server *Server) handleCursorAxis(_ wlroots.InputDevice, time uint32, source wlroots.AxisSource, orientation wlroots.AxisOrientation, delta float64, deltaDiscrete int32) {
	server.tkLock.Lock()
	consumed := server.root.PointerAxis(&wlmtk.AxisEvent{
		Source:        wlmtk.AxisSource(source),
		Orientation:   wlmtk.AxisOrientation(orientation),
		Delta:         delta,
		DeltaDiscrete: deltaDiscrete,
		TimeMsec:      time,
	})
	server.flushToolkit()
	server.tkLock.Unlock()

	if !consumed {
		server.seat.NotifyPointerAxis(time, orientation, delta, deltaDiscrete, source)
	}
}

func (server *Server) handleCursorFrame() {
	/* Frame events group multiple pointer events together. Notify the client
	 * with pointer focus of the frame event. */
	server.seat.NotifyPointerFrame()
}

func (server *Server) handleKeyBinding(sym xkb.KeySym) bool {
	/*
	 * Here we handle compositor keybindings. This is when the compositor is
	 * processing keys, rather than passing them on to the client for its own
	 * processing.
	 *
	 * This function assumes Alt is held down.
	 */
	switch sym {
	case xkb.KeySymEscape:
		server.display.Terminate()
	case xkb.KeySymF1:
		/* Cycle to the next window */
		server.tkLock.Lock()
		server.cycleWindows()
		server.flushToolkit()
		server.tkLock.Unlock()
	default:
		return false
	}
	return true
}

// cycleWindows activates the window mapped after the active one
func (server *Server) cycleWindows() {
	windows := server.root.VisibleWindows()
	if len(windows) < 2 {
		return
	}
	next := windows[0]
	for i, w := range windows {
		if w == server.root.ActiveWindow() {
			next = windows[(i+1)%len(windows)]
			break
		}
	}
	server.root.ActivateWindow(next)
}

func (server *Server) handleMapXDGToplevel(xdgSurface wlroots.XDGSurface) {
	/* Called when the surface is mapped, or ready to display on-screen. */
	topLevel := xdgSurface.TopLevel()

	server.tkLock.Lock()
	defer server.tkLock.Unlock()
	if _, ok := server.toplevels[topLevel]; ok {
		return
	}
	tw, err := server.newToplevelWindow(topLevel)
	if err != nil {
		logrus.WithError(err).Errorln("Failed to decorate toplevel")
		return
	}
	server.toplevels[topLevel] = tw
	logrus.WithFields(logrus.Fields{
		"title":     tw.window.Title(),
		"toplevels": len(server.toplevels),
	}).Debugln("Mapped toplevel")
	server.flushToolkit()
}

func (server *Server) handleUnMapXDGToplevel(xdgSurface wlroots.XDGSurface) {
	/* Called when the surface is unmapped, and should no longer be shown. */
	topLevel := xdgSurface.TopLevel()

	server.tkLock.Lock()
	defer server.tkLock.Unlock()
	tw, ok := server.toplevels[topLevel]
	if !ok {
		return
	}
	delete(server.toplevels, topLevel)
	if server.focused == tw {
		server.focused = nil
	}
	tw.destroy()
	server.flushToolkit()
}

func (server *Server) handleNewXDGSurface(xdgSurface wlroots.XDGSurface) {
	/* This event is raised when wlr_xdg_shell receives a new xdg surface from a
	 * client, either a toplevel (application window) or popup. */
	logrus.WithField("surface", xdgSurface).Debugln("New surface inbound")

	if xdgSurface.Role() == wlroots.XDGSurfaceRolePopup {
		parent := xdgSurface.Popup().Parent()
		if parent.Nil() {
			logrus.WithField("surface", xdgSurface).Errorln("xdgSurface popup parent is nil")
			return
		}
		xdgSurface.SetData(parent.XDGSurface().SceneTree().NewXDGSurface(xdgSurface))
		return
	}
	if xdgSurface.Role() != wlroots.XDGSurfaceRoleTopLevel {
		logrus.WithFields(logrus.Fields{
			"surface": xdgSurface,
			"role":    xdgSurface.Role(),
		}).Errorln("xdgSurface role is not XDGSurfaceRoleTopLevel")
		return
	}

	xdgSurface.SetData(server.scene.Tree().NewXDGSurface(xdgSurface.TopLevel().Base()))
	xdgSurface.OnMap(server.handleMapXDGToplevel)
	xdgSurface.OnUnmap(server.handleUnMapXDGToplevel)
	xdgSurface.OnDestroy(func(surface wlroots.XDGSurface) {})

	// Client side moves and resizes run through the toolkit's grabs
	toplevel := xdgSurface.TopLevel()
	toplevel.OnRequestMove(func(client wlroots.SeatClient, serial uint32) {
		server.tkLock.Lock()
		defer server.tkLock.Unlock()
		if tw, ok := server.toplevels[toplevel]; ok && tw == server.focused {
			tw.window.RequestMove()
			server.flushToolkit()
		}
	})
	toplevel.OnRequestResize(func(client wlroots.SeatClient, serial uint32, edges wlroots.Edges) {
		server.tkLock.Lock()
		defer server.tkLock.Unlock()
		if tw, ok := server.toplevels[toplevel]; ok && tw == server.focused {
			tw.window.RequestResize(wlmtk.Edges(edges))
			server.flushToolkit()
		}
	})
}

func (server *Server) GetOutputs() []*wlroots.Output {
	return server.outputs
}

func NewServer(conf *config.Config, style wlmtk.Style) (server *Server, err error) {
	server = &Server{
		conf:      conf,
		style:     style,
		tkScene:   scene.New(),
		toplevels: map[wlroots.XDGTopLevel]*toplevelWindow{},
	}

	/* The Wayland display is managed by libwayland. It handles accepting
	 * clients from the Unix socket, manging Wayland globals, and so on. */
	server.display = wlroots.NewDisplay()

	/* The autocreate option will choose the most suitable backend based on the
	 * current environment, such as opening an X11 window if an X11 server is
	 * running. */
	server.backend, err = server.display.BackendAutocreate()
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	/* Autocreates a renderer, either Pixman, GLES2 or Vulkan for us. The user
	 * can also specify a renderer using the WLR_RENDERER env var. */
	server.renderer, err = server.backend.RendererAutoCreate()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	server.renderer.InitDisplay(server.display)

	/* The allocator is the bridge between the renderer and the backend. */
	server.allocator, err = server.backend.AllocatorAutocreate(server.renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to create allocator: %w", err)
	}

	server.display.CompositorCreate(5, server.renderer)
	server.display.SubCompositorCreate()
	server.display.DataDeviceManagerCreate()

	server.outputLayout = wlroots.NewOutputLayout()
	server.backend.OnNewOutput(server.handleNewOutput)

	server.scene = wlroots.NewScene()
	server.sceneLayout = server.scene.AttachOutputLayout(server.outputLayout)

	/* Set up xdg-shell version 3. The xdg-shell is a Wayland protocol which is
	 * used for application windows. */
	server.xdgShell = server.display.XDGShellCreate(3)
	server.xdgShell.OnNewSurface(server.handleNewXDGSurface)

	server.cursor = wlroots.NewCursor()
	server.cursor.AttachOutputLayout(server.outputLayout)
	server.cursorMgr = wlroots.NewXCursorManager("", 24)

	server.cursor.OnMotion(server.handleCursorMotion)
	server.cursor.OnMotionAbsolute(server.handleCursorMotionAbsolute)
	server.cursor.OnButton(server.handleCursorButton)
	server.cursor.OnAxis(server.handleCursorAxis)
	server.cursor.OnFrame(server.handleCursorFrame)
	server.cursorMgr.Load(1)

	server.backend.OnNewInput(server.handleNewInput)
	server.seat = server.display.SeatCreate("seat0")
	server.seat.OnSetCursorRequest(server.handleSetCursorRequest)

	server.root = wlmtk.NewRoot(server.tkScene.Root(), wlmtk.NewEnv(server))
	menu, err := server.newRootMenu()
	if err != nil {
		logrus.WithError(err).Errorln("Failed to create root menu, continuing without")
	} else {
		server.root.SetRootMenu(menu)
	}
	return server, nil
}

func (server *Server) Start() error {
	/* Add a Unix socket to the Wayland display. */
	socket, err := server.display.AddSocketAuto()
	if err != nil {
		server.backend.Destroy()
		return err
	}
	logrus.WithField("socket", socket).Debugln("got wl socket")

	/* Start the backend. This will enumerate outputs and inputs, become the DRM
	 * master, etc */
	if err = server.backend.Start(); err != nil {
		server.backend.Destroy()
		server.display.Destroy()
		return err
	}

	if res := os.Getenv("WAYLAND_DISPLAY"); res != "" {
		logrus.WithField("WAYLAND_DISPLAY", res).Debugln("Wayland display already set, overwriting")
	}
	if err = os.Setenv("WAYLAND_DISPLAY", socket); err != nil {
		return err
	}

	logrus.WithField("WAYLAND_DISPLAY", socket).Infoln("Running Wayland compositor")
	return nil
}

func (server *Server) Run() error {
	/* Run the Wayland event loop. This does not return until you exit the
	 * compositor. */
	server.display.Run()

	server.display.DestroyClients()

	server.tkLock.Lock()
	for topLevel, tw := range server.toplevels {
		delete(server.toplevels, topLevel)
		tw.destroy()
	}
	server.root.Destroy()
	server.tkLock.Unlock()

	server.scene.Tree().Node().Destroy()
	server.cursorMgr.Destroy()
	server.outputLayout.Destroy()
	server.display.Destroy()
	return nil
}

func (server *Server) Stop() {
	server.display.Terminate()
}
