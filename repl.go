package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mstarongithub/wlmaker/inspect"
	"github.com/mstarongithub/wlmaker/repl"
	"github.com/mstarongithub/wlmaker/util"
	"github.com/mstarongithub/wlmaker/util/wrappers"
	"github.com/sirupsen/logrus"
)

func replRunner(server *Server) {
	// Give repl some wrappers around stdin and stdout so that it closes those instead of stdin & stdout themselves
	commandRepl := repl.NewRepl(wrappers.NewReaderWrapper(os.Stdin), wrappers.NewWriterWrapper(os.Stdout))
	logrus.Debugln("Starting repl")
	if err := commandRepl.Run(server.replCommands().Handler()); err != nil {
		logrus.WithError(err).Warningln("Repl stopped")
	}
}

func (server *Server) replCommands() repl.Commands {
	return repl.Commands{
		{
			Name:  "run",
			Usage: "<command> [args...]",
			Help:  "Start a program",
			Run: func(args []string, r *repl.Repl) (string, error) {
				name, err := spawn(strings.Join(args, " "), r.Output)
				if err != nil {
					return fmt.Sprintf("Failed to start: %s", err), nil
				}
				return "Running " + name, nil
			},
		},
		{
			Name: "quit",
			Help: "Stop the compositor",
			Run: func(_ []string, _ *repl.Repl) (string, error) {
				server.Stop()
				time.Sleep(time.Second)
				return "Quitting", repl.ErrStop
			},
		},
		{
			Name:  "inspect",
			Usage: "cursor [mode|manager] | toolkit | outputs | config",
			Help:  "Print compositor state",
			Run:   server.replInspect,
		},
		{
			Name:  "windows",
			Usage: "[json]",
			Help:  "List the mapped windows",
			Run:   server.replWindows,
		},
		{
			Name:  "restore",
			Usage: "<index>",
			Help:  "Restore a minimized window, by its index in windows",
			Run:   server.replRestore,
		},
		{
			Name:  "menu",
			Usage: "show <x> <y> | hide",
			Help:  "Show or hide the root menu",
			Run:   server.replMenu,
		},
	}
}

func (server *Server) replInspect(args []string, _ *repl.Repl) (string, error) {
	var target, mod string
	util.Unpack(args, &target, &mod)
	logrus.WithFields(logrus.Fields{
		"target": target,
		"mod":    mod,
	}).Debugln("Parsed inspect command")

	switch target {
	case "cursor":
		switch mod {
		case "manager":
			return fmt.Sprintf("Cursor manager (no useful data): %+v", server.cursorMgr), nil
		case "mode":
			server.tkLock.Lock()
			grabbing := server.root.Grabbing()
			server.tkLock.Unlock()
			if grabbing {
				return "Cursor mode: Grab", nil
			}
			return "Cursor mode: PassThrough", nil
		default:
			server.tkLock.Lock()
			defer server.tkLock.Unlock()
			return fmt.Sprintf("Cursor: Location (%f:%f)", server.pointerX, server.pointerY), nil
		}
	case "toolkit":
		server.tkLock.Lock()
		defer server.tkLock.Unlock()
		return inspect.ElementTree(&server.root.Element), nil
	case "outputs":
		server.tkLock.Lock()
		defer server.tkLock.Unlock()
		return fmt.Sprintf("Outputs: %s", strings.Join(server.outputNames, ", ")), nil
	case "config":
		return fmt.Sprintf("%+v", *server.conf), nil
	default:
		return "inspect: unknown target, try help", nil
	}
}

func (server *Server) replWindows(args []string, _ *repl.Repl) (string, error) {
	var format string
	util.Unpack(args, &format)

	server.tkLock.Lock()
	res := inspect.Windows(server.root)
	server.tkLock.Unlock()

	if format == "json" {
		raw, err := json.Marshal(res)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	if len(res.Windows) == 0 {
		return "No windows", nil
	}
	lines := []string{}
	for i, w := range res.Windows {
		line := fmt.Sprintf("%d: %q @%d,%d %dx%d", i, w.Title, w.X, w.Y, w.Width, w.Height)
		if w.Activated {
			line += " (active)"
		}
		if !w.Visible {
			line += " (minimized)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (server *Server) replRestore(args []string, _ *repl.Repl) (string, error) {
	var rawIdx string
	util.Unpack(args, &rawIdx)
	idx, err := strconv.Atoi(rawIdx)
	if err != nil {
		return "restore: index must be a number", nil
	}

	server.tkLock.Lock()
	defer server.tkLock.Unlock()
	windows := server.root.Windows()
	if idx < 0 || idx >= len(windows) {
		return fmt.Sprintf("restore: no window %d", idx), nil
	}
	for _, tw := range server.toplevels {
		if tw.window == windows[idx] {
			tw.Restore()
			return "Restored " + tw.window.Title(), nil
		}
	}
	return fmt.Sprintf("restore: window %d has no client", idx), nil
}

func (server *Server) replMenu(args []string, _ *repl.Repl) (string, error) {
	var action, rawX, rawY string
	util.Unpack(args, &action, &rawX, &rawY)

	server.tkLock.Lock()
	defer server.tkLock.Unlock()
	switch action {
	case "show":
		x, errX := strconv.Atoi(rawX)
		y, errY := strconv.Atoi(rawY)
		if errX != nil || errY != nil {
			return "menu: show needs x and y", nil
		}
		if server.root.RootMenu() == nil {
			return "menu: no root menu configured", nil
		}
		server.root.ShowRootMenu(x, y)
		return fmt.Sprintf("Menu shown at %d,%d", x, y), nil
	case "hide":
		server.root.HideRootMenu()
		return "Menu hidden", nil
	default:
		return "menu: expected show or hide", nil
	}
}
