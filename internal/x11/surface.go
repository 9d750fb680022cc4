package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/fern/internal/wm"
)

var _ wm.Display = (*Conn)(nil)

func (c *Conn) Move(win xproto.Window, x, y int) {
	xwindow.New(c.xu, win).Move(x, y)
}

func (c *Conn) Resize(win xproto.Window, width, height int) {
	xwindow.New(c.xu, win).Resize(width, height)
}

func (c *Conn) Raise(win xproto.Window) {
	xwindow.New(c.xu, win).Stack(xproto.StackModeAbove)
}

func (c *Conn) Lower(win xproto.Window) {
	xwindow.New(c.xu, win).Stack(xproto.StackModeBelow)
}

func (c *Conn) MapWindow(win xproto.Window) {
	xwindow.New(c.xu, win).Map()
}

func (c *Conn) UnmapWindow(win xproto.Window) {
	xwindow.New(c.xu, win).Unmap()
}

func (c *Conn) DestroyWindow(win xproto.Window) {
	xwindow.New(c.xu, win).Destroy()
}

// CreateDecoration creates and maps a frame window. The X border width is
// set separately because CreateWindow cannot take it as a value-list entry.
func (c *Conn) CreateDecoration(x, y, width, height, borderWidth int, bg, border uint32) (xproto.Window, error) {
	win, err := xwindow.Generate(c.xu)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate frame window id: %w", err)
	}
	err = win.CreateChecked(c.root, x, y, width, height,
		xproto.CwBackPixel|xproto.CwBorderPixel, bg, border)
	if err != nil {
		return 0, fmt.Errorf("failed to create frame window: %w", err)
	}
	xproto.ConfigureWindow(c.xu.Conn(), win.Id,
		xproto.ConfigWindowBorderWidth, []uint32{uint32(borderWidth)})
	win.Map()
	return win.Id, nil
}

// SetColor repaints a frame's background and border pixels. The clear
// forces an exposure so the new background actually shows.
func (c *Conn) SetColor(win xproto.Window, bg, border uint32) {
	xproto.ChangeWindowAttributes(c.xu.Conn(), win,
		xproto.CwBackPixel|xproto.CwBorderPixel, []uint32{bg, border})
	xproto.ClearArea(c.xu.Conn(), true, win, 0, 0, 0, 0)
}

func (c *Conn) SetInputFocus(win xproto.Window) {
	xproto.SetInputFocus(c.xu.Conn(), xproto.InputFocusPointerRoot, win,
		xproto.TimeCurrentTime)
}

// SendTakeFocus notifies the client per ICCCM, but only when it opted into
// the WM_TAKE_FOCUS protocol.
func (c *Conn) SendTakeFocus(win xproto.Window) {
	protocols, err := icccm.WmProtocolsGet(c.xu, win)
	if err != nil {
		return
	}
	for _, p := range protocols {
		if p == "WM_TAKE_FOCUS" {
			c.sendProtocol(win, "WM_TAKE_FOCUS")
			return
		}
	}
}

// SendDelete asks the client to close itself. Sent unconditionally;
// clients without WM_DELETE_WINDOW simply ignore it.
func (c *Conn) SendDelete(win xproto.Window) {
	c.sendProtocol(win, "WM_DELETE_WINDOW")
}

func (c *Conn) sendProtocol(win xproto.Window, name string) {
	wmProtocols, err := xprop.Atm(c.xu, "WM_PROTOCOLS")
	if err != nil {
		c.log.Warn("failed to intern WM_PROTOCOLS", "error", err)
		return
	}
	atom, err := xprop.Atm(c.xu, name)
	if err != nil {
		c.log.Warn("failed to intern protocol atom", "atom", name, "error", err)
		return
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(atom), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	xproto.SendEvent(c.xu.Conn(), false, win, xproto.EventMaskNoEvent,
		string(ev.Bytes()))
}

func (c *Conn) QueryPointer() (int, int, xproto.Window, bool) {
	reply, err := xproto.QueryPointer(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return 0, 0, 0, false
	}
	return int(reply.RootX), int(reply.RootY), reply.Child, true
}

func (c *Conn) RootDimensions() (int, int) {
	screen := c.xu.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

func (c *Conn) WindowTypes(win xproto.Window) []string {
	types, err := ewmh.WmWindowTypeGet(c.xu, win)
	if err != nil {
		return nil
	}
	return types
}

func (c *Conn) WindowGeometry(win xproto.Window) (wm.Rect, bool) {
	geom, err := xwindow.New(c.xu, win).Geometry()
	if err != nil {
		return wm.Rect{}, false
	}
	return wm.Rect{
		X:      geom.X(),
		Y:      geom.Y(),
		Width:  geom.Width(),
		Height: geom.Height(),
	}, true
}

func (c *Conn) ExportActiveWindow(win xproto.Window) {
	c.should(ewmh.ActiveWindowSet(c.xu, win))
}

func (c *Conn) ExportClientList(wins []xproto.Window) {
	c.should(ewmh.ClientListSet(c.xu, wins))
}

func (c *Conn) ExportCurrentWorkspace(ws int) {
	c.should(ewmh.CurrentDesktopSet(c.xu, uint(ws)))
}

func (c *Conn) ExportFullscreen(win xproto.Window, on bool) {
	if on {
		c.should(ewmh.WmStateSet(c.xu, win, []string{"_NET_WM_STATE_FULLSCREEN"}))
		return
	}
	c.should(ewmh.WmStateSet(c.xu, win, []string{}))
}
