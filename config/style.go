package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// LoadStyle reads a style file over the built-in style. Files ending in
// .yaml or .yml are read as yaml, everything else as toml. Fields missing
// from the file keep their built-in values.
func LoadStyle(path string) (wlmtk.Style, error) {
	style := wlmtk.DefaultStyle()
	if path == "" {
		return style, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return style, fmt.Errorf("failed to read style %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &style)
	default:
		err = toml.Unmarshal(data, &style)
	}
	if err != nil {
		return wlmtk.DefaultStyle(), fmt.Errorf("failed to parse style %s: %w", path, err)
	}
	return style, nil
}
