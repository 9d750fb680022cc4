package wm

import "github.com/BurntSushi/xgb/xproto"

// Client is one managed top-level window. The registry is the sole owner;
// a client belongs to exactly one workspace and appears in exactly one
// stacking list and one focus list at a time.
type Client struct {
	// Window is the content window, owned by the X server.
	Window xproto.Window
	// Dec is the decoration frame window, valid only while Decorated.
	Dec       xproto.Window
	Decorated bool

	Workspace int
	Geom      Rect

	Hidden bool
	// HideX is the x coordinate saved by Hide so Show can restore it.
	HideX int

	Fullscreen bool
}

// Center returns the geometric center of the stored geometry.
func (c *Client) Center() (x, y int) {
	return c.Geom.X + c.Geom.Width/2, c.Geom.Y + c.Geom.Height/2
}
