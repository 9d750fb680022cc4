package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/fern/internal/ipc"
	"github.com/1broseidon/fern/internal/wm"
)

// Bind interns the control message atom and connects the root window event
// handlers to the engine. Per-window handlers are attached as windows are
// managed.
func (c *Conn) Bind(m *wm.Manager) error {
	msgAtom, err := xprop.Atm(c.xu, ipc.MessageType)
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", ipc.MessageType, err)
	}

	xevent.MapRequestFun(func(xu *xgbutil.XUtil, ev xevent.MapRequestEvent) {
		c.handleMapRequest(m, ev)
	}).Connect(c.xu, c.root)

	xevent.ConfigureRequestFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureRequestEvent) {
		c.handleConfigureRequest(m, ev)
	}).Connect(c.xu, c.root)

	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		// Root geometry changed, the head layout may have too.
		if ev.Window == c.root {
			m.UpdateMonitors()
		}
	}).Connect(c.xu, c.root)

	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		c.handleClientMessage(m, msgAtom, ev)
	}).Connect(c.xu, c.root)

	return nil
}

func (c *Conn) handleMapRequest(m *wm.Manager, ev xevent.MapRequestEvent) {
	attrs, err := xproto.GetWindowAttributes(c.xu.Conn(), ev.Window).Reply()
	if err == nil && attrs.OverrideRedirect {
		return
	}
	if client := m.HandleMapRequest(ev.Window); client != nil {
		c.watch(m, client.Window)
	}
}

// watch attaches the unmanage handlers to a newly managed window. Both
// paths detach the window from the event registry; the engine tolerates a
// second notification for a window it already dropped.
func (c *Conn) watch(m *wm.Manager, win xproto.Window) {
	xevent.UnmapNotifyFun(func(xu *xgbutil.XUtil, ev xevent.UnmapNotifyEvent) {
		m.HandleUnmapNotify(ev.Window)
		xevent.Detach(xu, ev.Window)
	}).Connect(c.xu, win)

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		m.HandleUnmapNotify(ev.Window)
		xevent.Detach(xu, ev.Window)
	}).Connect(c.xu, win)
}

// handleConfigureRequest grants the client's request verbatim and then lets
// the engine re-derive decoration placement for managed windows.
func (c *Conn) handleConfigureRequest(m *wm.Manager, ev xevent.ConfigureRequestEvent) {
	xwindow.New(c.xu, ev.Window).Configure(int(ev.ValueMask),
		int(ev.X), int(ev.Y), int(ev.Width), int(ev.Height),
		ev.Sibling, ev.StackMode)
	m.RefreshWindow(ev.Window)
}

func (c *Conn) handleClientMessage(m *wm.Manager, msgAtom xproto.Atom, ev xevent.ClientMessageEvent) {
	if ev.Type != msgAtom || ev.Format != 32 {
		return
	}
	var data [5]uint32
	copy(data[:], ev.Data.Data32)
	msg, err := ipc.Decode(data)
	if err != nil {
		c.log.Warn("discarding malformed control message", "error", err)
		return
	}
	m.Dispatch(msg)
}
