// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

type StartType int

const (
	// Tells wlmaker to start a repl in parallel for interacting with it
	START_REPL = StartType(iota)
	// Tells wlmaker to execute a specific command on startup
	START_SINGLE_COMMAND
	// Tells wlmaker to start without any specific targets
	// Note: The root menu is the only way to interact with it then
	START_NONE
)

// Prefix of all environment overrides, e.g. WLMAKER_LOG_LEVEL
const EnvPrefix = "WLMAKER"

// Where the config is searched for below the xdg config dirs
const DefaultConfigFile = "wlmaker/config.toml"

var ErrUnknownStartType = errors.New("unknown start type")

// MenuEntry is one line of the root menu
type MenuEntry struct {
	Label string `toml:"label" yaml:"label"`
	// Command run when the entry is clicked. Empty entries are shown
	// disabled. ExitCommand stops the compositor.
	Command string `toml:"command" yaml:"command"`
}

// Menu command handled by the compositor itself
const ExitCommand = ":exit"

type Config struct {
	StartType StartType `envconfig:"START_TYPE" toml:"start_type,omitempty"`
	// What command to execute on start. Only matters if StartType is set to START_SINGLE_COMMAND
	StartCommand *string `envconfig:"START_COMMAND" toml:"start_command,omitempty"`
	// One of logrus' level names
	LogLevel string `envconfig:"LOG_LEVEL" toml:"log_level,omitempty"`
	// Path to a yaml or toml file overriding the built-in style
	StyleFile string `envconfig:"STYLE_FILE" toml:"style_file,omitempty"`
	// Entries of the menu opened by right-clicking the background
	RootMenu []MenuEntry `ignored:"true" toml:"root_menu"`
}

func Default() *Config {
	return &Config{
		StartType: START_REPL,
		LogLevel:  logrus.InfoLevel.String(),
		RootMenu: []MenuEntry{
			{Label: "Terminal", Command: "foot"},
			{Label: "Exit", Command: ExitCommand},
		},
	}
}

// Load reads the config at path. An empty path searches the xdg config
// directories and falls back to the defaults if nothing is found there.
// Environment variables prefixed with EnvPrefix override the file.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		found, err := xdg.SearchConfigFile(DefaultConfigFile)
		if err != nil {
			logrus.WithField("file", DefaultConfigFile).Debugln("No config file found, using defaults")
		}
		path = found
	}
	if path != "" {
		if err := conf.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, conf); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if conf.LogLevel == "" {
		conf.LogLevel = logrus.InfoLevel.String()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err = toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	logrus.WithField("file", path).Debugln("Loaded config")
	return nil
}

// Validate checks fields the decoders can't
func (c *Config) Validate() error {
	if c.StartType < START_REPL || c.StartType > START_NONE {
		return fmt.Errorf("%w: %d", ErrUnknownStartType, c.StartType)
	}
	if c.StartType == START_SINGLE_COMMAND && (c.StartCommand == nil || *c.StartCommand == "") {
		return errors.New("start type single command needs a start_command")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("bad log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
