package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

type TitlebarStyle struct {
	FocusedFill      gfxbuf.Fill  `toml:"focused_fill" yaml:"focused_fill"`
	BlurredFill      gfxbuf.Fill  `toml:"blurred_fill" yaml:"blurred_fill"`
	FocusedTextColor gfxbuf.Color `toml:"focused_text_color" yaml:"focused_text_color"`
	BlurredTextColor gfxbuf.Color `toml:"blurred_text_color" yaml:"blurred_text_color"`
	Height           int          `toml:"height" yaml:"height"`
	BezelWidth       int          `toml:"bezel_width" yaml:"bezel_width"`
	Font             gfxbuf.Font  `toml:"font" yaml:"font"`
}

type ResizebarStyle struct {
	Fill        gfxbuf.Fill `toml:"fill" yaml:"fill"`
	Height      int         `toml:"height" yaml:"height"`
	CornerWidth int         `toml:"corner_width" yaml:"corner_width"`
	BezelWidth  int         `toml:"bezel_width" yaml:"bezel_width"`
}

type MenuItemStyle struct {
	Fill                 gfxbuf.Fill  `toml:"fill" yaml:"fill"`
	HighlightedFill      gfxbuf.Fill  `toml:"highlighted_fill" yaml:"highlighted_fill"`
	Font                 gfxbuf.Font  `toml:"font" yaml:"font"`
	Height               int          `toml:"height" yaml:"height"`
	BezelWidth           int          `toml:"bezel_width" yaml:"bezel_width"`
	EnabledTextColor     gfxbuf.Color `toml:"enabled_text_color" yaml:"enabled_text_color"`
	HighlightedTextColor gfxbuf.Color `toml:"highlighted_text_color" yaml:"highlighted_text_color"`
	DisabledTextColor    gfxbuf.Color `toml:"disabled_text_color" yaml:"disabled_text_color"`
}

type MenuStyle struct {
	Item  MenuItemStyle `toml:"item" yaml:"item"`
	Width int           `toml:"width" yaml:"width"`
}

type WindowStyle struct {
	Titlebar  TitlebarStyle  `toml:"titlebar" yaml:"titlebar"`
	Resizebar ResizebarStyle `toml:"resizebar" yaml:"resizebar"`
	// Gap between titlebar, content and resizebar
	Spacing int `toml:"spacing" yaml:"spacing"`
}

// Style bundles all widget styles
type Style struct {
	Window WindowStyle `toml:"window" yaml:"window"`
	Menu   MenuStyle   `toml:"menu" yaml:"menu"`
}

func DefaultStyle() Style {
	return Style{
		Window: WindowStyle{
			Titlebar: TitlebarStyle{
				FocusedFill:      gfxbuf.Fill{Type: gfxbuf.FillHGradient, From: 0xff505a5e, To: 0xff202a2e},
				BlurredFill:      gfxbuf.SolidFill(0xffc2c0c5),
				FocusedTextColor: 0xffffffff,
				BlurredTextColor: 0xff000000,
				Height:           22,
				BezelWidth:       1,
				Font:             gfxbuf.Font{Weight: gfxbuf.FontWeightBold, Size: 10},
			},
			Resizebar: ResizebarStyle{
				Fill:        gfxbuf.SolidFill(0xffc2c0c5),
				Height:      7,
				CornerWidth: 29,
				BezelWidth:  1,
			},
			Spacing: 1,
		},
		Menu: MenuStyle{
			Item: MenuItemStyle{
				Fill:                 gfxbuf.Fill{Type: gfxbuf.FillDGradient, From: 0xffc2c0c5, To: 0xff828085},
				HighlightedFill:      gfxbuf.SolidFill(0xffffffff),
				Font:                 gfxbuf.Font{Weight: gfxbuf.FontWeightNormal, Size: 10},
				Height:               20,
				BezelWidth:           1,
				EnabledTextColor:     0xff000000,
				HighlightedTextColor: 0xff000000,
				DisabledTextColor:    0xff808080,
			},
			Width: 200,
		},
	}
}
