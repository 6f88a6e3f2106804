package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.toml", `
start_type = 1
start_command = "foot"
log_level = "debug"
style_file = "/tmp/style.yaml"

[[root_menu]]
label = "Browser"
command = "firefox"

[[root_menu]]
label = "Exit"
`)
	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, START_SINGLE_COMMAND, conf.StartType)
	require.NotNil(t, conf.StartCommand)
	assert.Equal(t, "foot", *conf.StartCommand)
	assert.Equal(t, logrus.DebugLevel, conf.Level())
	assert.Equal(t, "/tmp/style.yaml", conf.StyleFile)
	assert.Equal(t, []MenuEntry{
		{Label: "Browser", Command: "firefox"},
		{Label: "Exit"},
	}, conf.RootMenu)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "debug"`)
	t.Setenv("WLMAKER_LOG_LEVEL", "warning")
	t.Setenv("WLMAKER_STYLE_FILE", "style.toml")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, conf.Level())
	assert.Equal(t, "style.toml", conf.StyleFile)
	assert.Equal(t, START_REPL, conf.StartType)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.toml", `start_type = [`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "type.toml", `start_type = 7`))
	assert.ErrorIs(t, err, ErrUnknownStartType)

	_, err = Load(writeFile(t, "cmd.toml", `start_type = 1`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "level.toml", `log_level = "loud"`))
	assert.Error(t, err)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().RootMenu, conf.RootMenu)
	assert.Equal(t, logrus.InfoLevel, conf.Level())
}

func TestLoadStyleYaml(t *testing.T) {
	path := writeFile(t, "style.yaml", `
window:
  titlebar:
    height: 30
    focused_fill:
      type: vgradient
      from: 4278190335
      to: 4294967295
menu:
  width: 150
`)
	style, err := LoadStyle(path)
	require.NoError(t, err)
	def := wlmtk.DefaultStyle()
	assert.Equal(t, 30, style.Window.Titlebar.Height)
	assert.Equal(t, gfxbuf.FillVGradient, style.Window.Titlebar.FocusedFill.Type)
	assert.Equal(t, gfxbuf.Color(0xff0000ff), style.Window.Titlebar.FocusedFill.From)
	assert.Equal(t, 150, style.Menu.Width)
	// Untouched fields keep their defaults
	assert.Equal(t, def.Window.Titlebar.BlurredFill, style.Window.Titlebar.BlurredFill)
	assert.Equal(t, def.Window.Resizebar, style.Window.Resizebar)
	assert.Equal(t, def.Menu.Item, style.Menu.Item)
}

func TestLoadStyleToml(t *testing.T) {
	path := writeFile(t, "style.toml", `
[window.resizebar]
height = 9
corner_width = 40
`)
	style, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, 9, style.Window.Resizebar.Height)
	assert.Equal(t, 40, style.Window.Resizebar.CornerWidth)
}

func TestLoadStyleErrors(t *testing.T) {
	style, err := LoadStyle("")
	require.NoError(t, err)
	assert.Equal(t, wlmtk.DefaultStyle(), style)

	_, err = LoadStyle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	style, err = LoadStyle(writeFile(t, "bad.yml", "window: [1, 2"))
	assert.Error(t, err)
	assert.Equal(t, wlmtk.DefaultStyle(), style)
}
