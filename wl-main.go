package main

import (
	"fmt"
	"os"

	"github.com/mstarongithub/wlmaker/config"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/sirupsen/logrus"
	"github.com/swaywm/go-wlroots/wlroots"
)

func fatal(msg string, err error) {
	fmt.Printf("error %s: %s\n", msg, err)
	os.Exit(1)
}

func wlHelpMessage() {
	fmt.Println("---- Help message for wlmaker ----")
	fmt.Println("\nGeneral flags:")
	fmt.Println("\t-config: Path to the config file. Default is wlmaker/config.toml in the xdg config dirs")
	fmt.Println("\t-tool: Start as a tool instead of a compositor")
	fmt.Println("\t-debug: Log at debug level")
	fmt.Println("\t-help: Show this help message (or the one for tool mode if -tool is set)")
	fmt.Println("\nKeybindings:")
	fmt.Println("\tAlt+Escape: Quit")
	fmt.Println("\tAlt+F1: Cycle windows")
	fmt.Println("\tRight click on the background: Root menu")
}

func loadStyle(conf *config.Config) wlmtk.Style {
	style, err := config.LoadStyle(conf.StyleFile)
	if err != nil {
		logrus.WithError(err).WithField("file", conf.StyleFile).Errorln("Failed to load style, using defaults")
	}
	return style
}

func wlMain(conf *config.Config) {
	wlroots.OnLog(wlroots.LogImportanceError, func(importance wlroots.LogImportance, msg string) {
		switch importance {
		case wlroots.LogImportanceDebug:
			logrus.Debugln(msg)
		case wlroots.LogImportanceInfo:
			logrus.Infoln(msg)
		case wlroots.LogImportanceError:
			logrus.Errorln(msg)
		case wlroots.LogImportanceSilent:
			return
		}
	})

	// start the server
	server, err := NewServer(conf, loadStyle(conf))
	if err != nil {
		fatal("initializing server", err)
	}
	if err = server.Start(); err != nil {
		fatal("starting server", err)
	}

	switch conf.StartType {
	case config.START_REPL:
		go replRunner(server)
	case config.START_SINGLE_COMMAND:
		if _, err = spawn(*conf.StartCommand, os.Stdout); err != nil {
			logrus.WithError(err).Errorln("Failed to run start command")
		}
	case config.START_NONE:
	}

	// start the wayland event loop
	if err = server.Run(); err != nil {
		fatal("running server", err)
	}
}
