package main

import (
	"fmt"
	"testing"

	"github.com/mstarongithub/wlmaker/config"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaywm/go-wlroots/wlroots"
)

// newTestServer builds a server with only the toolkit side set up
func newTestServer(t *testing.T, conf *config.Config) *Server {
	t.Helper()
	server := &Server{
		conf:      conf,
		style:     wlmtk.DefaultStyle(),
		toplevels: map[wlroots.XDGTopLevel]*toplevelWindow{},
	}
	server.root = wlmtk.NewRoot(nil, wlmtk.NewEnv(server))
	menu, err := server.newRootMenu()
	require.NoError(t, err)
	server.root.SetRootMenu(menu)
	t.Cleanup(server.root.Destroy)
	return server
}

// addTestToplevel maps a window around a surface without a client, the
// toolkit half of a toplevel
func addTestToplevel(t *testing.T, server *Server) *toplevelWindow {
	t.Helper()
	tw := &toplevelWindow{server: server}
	tw.surface = wlmtk.NewSurface(nil)
	tw.surface.Commit(200, 100)
	window, err := wlmtk.NewWindow(server.root.Env(), tw.surface, server.style.Window)
	require.NoError(t, err)
	tw.window = window
	window.SetHandler(tw)
	require.NoError(t, window.SetTitle("xterm"))
	require.NoError(t, server.root.MapWindow(window))
	server.toplevels[tw.toplevel] = tw
	t.Cleanup(func() {
		window.Destroy()
		tw.surface.Destroy()
	})
	return tw
}

func TestSetCursorIsDeferred(t *testing.T) {
	server := newTestServer(t, config.Default())
	server.SetCursor(wlmtk.CursorMove)
	assert.Equal(t, "move", server.pendingCursor)
}

func TestReplMenuDefersCursor(t *testing.T) {
	server := newTestServer(t, config.Default())
	tw := addTestToplevel(t, server)
	handler := server.replCommands().Handler()

	rx, ry := tw.window.Resizebar().AbsolutePosition()
	server.root.PointerMotion(float64(rx+2), float64(ry+2), 0)
	require.Equal(t, "sw-resize", server.pendingCursor)

	// The menu opens over the pointer, the resizebar sees a leave. Run on
	// another goroutine like the repl does; the zero cursor would crash if
	// touched.
	done := make(chan string)
	go func() {
		res, _ := handler(fmt.Sprintf("menu show %d %d", rx, ry-5), nil)
		done <- res
	}()
	assert.Equal(t, fmt.Sprintf("Menu shown at %d,%d", rx, ry-5), <-done)
	assert.True(t, server.root.RootMenuShown())
	assert.Equal(t, "default", server.pendingCursor)
}

func TestReplRestore(t *testing.T) {
	server := newTestServer(t, config.Default())
	tw := addTestToplevel(t, server)
	handler := server.replCommands().Handler()

	tw.Minimize()
	assert.True(t, tw.Minimized())
	assert.Nil(t, server.root.ActiveWindow())

	res, err := handler("restore 0", nil)
	require.NoError(t, err)
	assert.Equal(t, "Restored xterm", res)
	assert.False(t, tw.Minimized())
	assert.Same(t, tw.window, server.root.ActiveWindow())
	// Keyboard focus follows in the next flush on the event loop
	assert.Nil(t, server.focused)
}

func TestRootMenuFromConfig(t *testing.T) {
	conf := config.Default()
	conf.RootMenu = append(conf.RootMenu, config.MenuEntry{Label: "Separator"})
	server := newTestServer(t, conf)

	items := server.root.RootMenu().Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Terminal", items[0].Text())
	assert.Equal(t, "Exit", items[1].Text())
	assert.True(t, items[0].Enabled())
	assert.True(t, items[1].Enabled())
	assert.False(t, items[2].Enabled())
	assert.Equal(t, wlmtk.MenuItemDisabled, items[2].State())
}

func TestReplMenu(t *testing.T) {
	server := newTestServer(t, config.Default())
	handler := server.replCommands().Handler()

	res, err := handler("menu show 10 20", nil)
	require.NoError(t, err)
	assert.Equal(t, "Menu shown at 10,20", res)
	assert.True(t, server.root.RootMenuShown())
	x, y := server.root.RootMenu().Position()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	res, err = handler("menu hide", nil)
	require.NoError(t, err)
	assert.Equal(t, "Menu hidden", res)
	assert.False(t, server.root.RootMenuShown())

	res, _ = handler("menu show ten 20", nil)
	assert.Equal(t, "menu: show needs x and y", res)
	assert.False(t, server.root.RootMenuShown())
	res, _ = handler("menu", nil)
	assert.Equal(t, "menu: expected show or hide", res)
}

func TestReplWindowsEmpty(t *testing.T) {
	server := newTestServer(t, config.Default())
	handler := server.replCommands().Handler()

	res, err := handler("windows", nil)
	require.NoError(t, err)
	assert.Equal(t, "No windows", res)

	res, err = handler("windows json", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"windows": []}`, res)
}

func TestReplRestoreErrors(t *testing.T) {
	server := newTestServer(t, config.Default())
	handler := server.replCommands().Handler()

	res, err := handler("restore one", nil)
	require.NoError(t, err)
	assert.Equal(t, "restore: index must be a number", res)
	res, _ = handler("restore 0", nil)
	assert.Equal(t, "restore: no window 0", res)
}

func TestReplInspect(t *testing.T) {
	server := newTestServer(t, config.Default())
	handler := server.replCommands().Handler()

	res, err := handler("inspect toolkit", nil)
	require.NoError(t, err)
	assert.Contains(t, res, "root")
	res, _ = handler("inspect nothing", nil)
	assert.Equal(t, "inspect: unknown target, try help", res)

	res, _ = handler("help", nil)
	assert.Contains(t, res, "menu show <x> <y> | hide")
	assert.Contains(t, res, "restore <index>")
}

func TestSpawn(t *testing.T) {
	_, err := spawn("  ", nil)
	assert.ErrorIs(t, err, ErrEmptyCommand)

	name, err := spawn("true --ignored", nil)
	require.NoError(t, err)
	assert.Equal(t, "true", name)

	_, err = spawn("/nonexistent/wlmaker-test-binary", nil)
	assert.Error(t, err)
}
