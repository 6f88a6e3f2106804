package main

import (
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/mstarongithub/wlmaker/config"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/sirupsen/logrus"
)

var ErrEmptyCommand = errors.New("empty command")

// spawn starts cmdString in the background, sending its output to out.
// Returns the name of the started program.
func spawn(cmdString string, out io.Writer) (string, error) {
	parts := strings.Fields(cmdString)
	if len(parts) == 0 {
		return "", ErrEmptyCommand
	}
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Start(); err != nil {
		logrus.WithError(err).WithField("command", cmdString).Errorln("Command failed to start")
		return "", err
	}
	go func(cmd *exec.Cmd, cmdString string) {
		err := cmd.Wait()
		if exiterr, ok := err.(*exec.ExitError); ok {
			logrus.WithError(err).WithFields(logrus.Fields{
				"exit-code": exiterr.ExitCode(),
				"command":   cmdString,
			}).Warningln("Bad command completion")
		}
	}(cmd, cmdString)
	return parts[0], nil
}

// newRootMenu builds the background menu from the configured entries
func (server *Server) newRootMenu() (*wlmtk.Menu, error) {
	menu := wlmtk.NewMenu(server.style.Menu)
	for _, entry := range server.conf.RootMenu {
		var action func()
		switch entry.Command {
		case "":
		case config.ExitCommand:
			action = server.Stop
		default:
			command := entry.Command
			action = func() {
				if _, err := spawn(command, nil); err != nil {
					logrus.WithError(err).WithField("label", entry.Label).Warningln("Root menu entry failed")
				}
			}
		}
		item, err := menu.AddItem(entry.Label, action)
		if err != nil {
			menu.Destroy()
			return nil, err
		}
		if action == nil {
			item.SetEnabled(false)
		}
	}
	return menu, nil
}
