package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied by DefaultConfig. Colors are Nord-ish and easy to spot
// against most wallpapers.
const (
	DefaultWorkspaces       = 10
	DefaultBorderWidth      = 3
	DefaultInnerBorderWidth = 2
	DefaultTitleHeight      = 4
	DefaultMoveStep         = 40
	DefaultResizeStep       = 40
	DefaultTopGap           = 0
)

// Config is the runtime configuration of the window manager. Geometry and
// focus code read it live on every operation; the IPC color/width commands
// mutate it in place.
type Config struct {
	// Workspaces is the number of virtual workspace slots. Fixed once the
	// manager has started; only the mapping to monitors changes at runtime.
	Workspaces int `yaml:"workspaces"`

	BorderWidth      int `yaml:"border_width"`
	InnerBorderWidth int `yaml:"inner_border_width"`
	TitleHeight      int `yaml:"title_height"`

	// Color fields hold "#rrggbb" strings in the file; the parsed X pixel
	// values live in the *Pixel fields after BuildEffective.
	FocusColor        string `yaml:"focus_color"`
	UnfocusColor      string `yaml:"unfocus_color"`
	InnerFocusColor   string `yaml:"inner_focus_color"`
	InnerUnfocusColor string `yaml:"inner_unfocus_color"`

	MoveStep   int  `yaml:"move_step"`
	ResizeStep int  `yaml:"resize_step"`
	EdgeLock   bool `yaml:"edge_lock"`
	TopGap     int  `yaml:"top_gap"`

	// Autostart is an executable spawned once at startup, detached from the
	// event loop. Empty means the XDG default path is probed.
	Autostart string `yaml:"autostart"`

	FocusPixel        uint32 `yaml:"-"`
	UnfocusPixel      uint32 `yaml:"-"`
	InnerFocusPixel   uint32 `yaml:"-"`
	InnerUnfocusPixel uint32 `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Workspaces:        DefaultWorkspaces,
		BorderWidth:       DefaultBorderWidth,
		InnerBorderWidth:  DefaultInnerBorderWidth,
		TitleHeight:       DefaultTitleHeight,
		FocusColor:        "#5e81ac",
		UnfocusColor:      "#2e3440",
		InnerFocusColor:   "#4c566a",
		InnerUnfocusColor: "#3b4252",
		MoveStep:          DefaultMoveStep,
		ResizeStep:        DefaultResizeStep,
		EdgeLock:          true,
		TopGap:            DefaultTopGap,
	}
}

// BuildEffective parses the color strings into X pixel values. Called once
// after load; IPC color commands write pixel values directly.
func (c *Config) BuildEffective() error {
	pairs := []struct {
		name string
		src  string
		dst  *uint32
	}{
		{"focus_color", c.FocusColor, &c.FocusPixel},
		{"unfocus_color", c.UnfocusColor, &c.UnfocusPixel},
		{"inner_focus_color", c.InnerFocusColor, &c.InnerFocusPixel},
		{"inner_unfocus_color", c.InnerUnfocusColor, &c.InnerUnfocusPixel},
	}
	for _, p := range pairs {
		px, err := ParseColor(p.src)
		if err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		*p.dst = px
	}
	return nil
}

// Validate checks ranges that would otherwise surface as degenerate window
// geometry deep inside the engine.
func (c *Config) Validate() error {
	if c.Workspaces < 1 {
		return fmt.Errorf("workspaces: must be at least 1, got %d", c.Workspaces)
	}
	if c.BorderWidth < 0 {
		return fmt.Errorf("border_width: must not be negative, got %d", c.BorderWidth)
	}
	if c.InnerBorderWidth < 0 {
		return fmt.Errorf("inner_border_width: must not be negative, got %d", c.InnerBorderWidth)
	}
	if c.TitleHeight < 0 {
		return fmt.Errorf("title_height: must not be negative, got %d", c.TitleHeight)
	}
	if c.MoveStep < 1 {
		return fmt.Errorf("move_step: must be at least 1, got %d", c.MoveStep)
	}
	if c.ResizeStep < 1 {
		return fmt.Errorf("resize_step: must be at least 1, got %d", c.ResizeStep)
	}
	if c.TopGap < 0 {
		return fmt.Errorf("top_gap: must not be negative, got %d", c.TopGap)
	}
	return nil
}

// ParseColor converts "#rrggbb" (or "rrggbb") to a 24-bit X pixel value.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return uint32(v), nil
}
