package wm

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/fern/internal/config"
)

// Window types that are mapped but never managed.
var unmanagedTypes = map[string]bool{
	"_NET_WM_WINDOW_TYPE_DOCK":    true,
	"_NET_WM_WINDOW_TYPE_TOOLBAR": true,
	"_NET_WM_WINDOW_TYPE_UTILITY": true,
	"_NET_WM_WINDOW_TYPE_MENU":    true,
}

// Manager holds the entire mutable state of the window manager: the client
// registry, the focused-client reference, the monitor table, the
// workspace-to-monitor map and the current workspace. It is built once at
// startup and mutated only from the single event loop, so it carries no
// locks.
type Manager struct {
	dpy Display
	cfg *config.Config
	reg *Registry
	log *slog.Logger

	focused  *Client
	monitors []Monitor
	wsMon    []int
	current  int

	// pointer-move drag accumulator; -1 means no drag in progress.
	pointX, pointY int
}

// New builds the manager. The workspace count is fixed from the config; the
// monitor table starts empty until UpdateMonitors runs.
func New(dpy Display, cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		dpy:    dpy,
		cfg:    cfg,
		reg:    NewRegistry(cfg.Workspaces),
		log:    logger,
		wsMon:  make([]int, cfg.Workspaces),
		pointX: -1,
		pointY: -1,
	}
}

// Registry exposes the client registry (read-side; tests and status use it).
func (m *Manager) Registry() *Registry {
	return m.reg
}

// Focused returns the globally focused client, or nil.
func (m *Manager) Focused() *Client {
	return m.focused
}

// CurrentWorkspace returns the current workspace index.
func (m *Manager) CurrentWorkspace() int {
	return m.current
}

// UpdateMonitors discards the monitor table and rebuilds it from the
// display. Mirrored heads are kept as-is. Called at startup and on every
// root configure notify.
func (m *Manager) UpdateMonitors() {
	m.monitors = m.dpy.Monitors()
	m.log.Info("monitor table rebuilt", "count", len(m.monitors))
	for _, mon := range m.monitors {
		m.log.Debug("monitor",
			"screen", mon.Screen, "x", mon.X, "y", mon.Y,
			"width", mon.Width, "height", mon.Height)
	}
}

// monitorFor returns the monitor the client's workspace is mapped to,
// falling back to the root dimensions when the table is empty or the
// mapping is stale after an unplug.
func (m *Manager) monitorFor(c *Client) Monitor {
	if len(m.monitors) == 0 {
		w, h := m.dpy.RootDimensions()
		return Monitor{Width: w, Height: h}
	}
	idx := 0
	if c.Workspace >= 0 && c.Workspace < len(m.wsMon) {
		idx = m.wsMon[c.Workspace]
	}
	if idx < 0 || idx >= len(m.monitors) {
		idx = 0
	}
	return m.monitors[idx]
}

// HandleMapRequest manages a newly mapped window: filters out dock, toolbar,
// utility and menu windows (those are mapped unmanaged), decorates, maps,
// saves the client on the current workspace, focuses and centers it.
// Returns the new client, or nil when the window was not managed.
func (m *Manager) HandleMapRequest(win xproto.Window) *Client {
	for _, typ := range m.dpy.WindowTypes(win) {
		if unmanagedTypes[typ] {
			m.log.Info("window type not managed, mapping bare", "window", win, "type", typ)
			m.dpy.MapWindow(win)
			return nil
		}
	}

	geom, ok := m.dpy.WindowGeometry(win)
	if !ok {
		m.log.Info("cannot read geometry, not managing", "window", win)
		return nil
	}

	c := &Client{
		Window:    win,
		Workspace: m.current,
		Geom:      geom,
	}
	m.decorate(c)
	m.dpy.MapWindow(c.Window)
	// The decoration was created around the content geometry; refresh
	// re-derives both rectangles from the stored geometry.
	m.Refresh(c)
	m.reg.Save(c, m.current)
	m.ManageFocus(c)
	m.Center(c)
	m.exportClientList()
	m.log.Info("managed new window", "window", win, "workspace", m.current)
	return c
}

// HandleUnmapNotify unmanages the window if it is ours: advances focus,
// destroys the decoration and deregisters the client.
func (m *Manager) HandleUnmapNotify(win xproto.Window) {
	c := m.reg.FindWindow(win)
	if c == nil {
		return
	}
	m.focusNext(c)
	if c.Decorated {
		m.dpy.DestroyWindow(c.Dec)
	}
	m.deleteClient(c)
	m.log.Info("unmanaged window", "window", win)
}

// RefreshWindow re-applies geometry for a managed window after a
// configure request was passed through to the server.
func (m *Manager) RefreshWindow(win xproto.Window) {
	if c := m.reg.FindWindow(win); c != nil {
		m.Refresh(c)
	}
}

// deleteClient removes the client from its workspace's lists, clears the
// focused reference when that workspace's stacking list ran empty, and
// rebuilds the exported client list. An invalid recorded workspace aborts
// with a log line.
func (m *Manager) deleteClient(c *Client) {
	ws := c.Workspace
	if ws < 0 || ws >= m.reg.Workspaces() {
		m.log.Warn("cannot delete client, workspace invalid", "workspace", ws)
		return
	}
	if !m.reg.Delete(c) {
		m.log.Warn("cannot delete client, not found", "window", c.Window)
		return
	}
	if len(m.reg.Stacking(ws)) == 0 {
		m.focused = nil
	}
	m.exportClientList()
}

func (m *Manager) exportClientList() {
	m.dpy.ExportClientList(m.reg.Windows())
}

// decorate creates the frame window around the client's current geometry.
// On failure the client stays undecorated.
func (m *Manager) decorate(c *Client) {
	w := c.Geom.Width + 2*m.cfg.InnerBorderWidth
	h := c.Geom.Height + 2*m.cfg.InnerBorderWidth + m.cfg.TitleHeight
	x := c.Geom.X - m.cfg.InnerBorderWidth - m.cfg.BorderWidth
	y := c.Geom.Y - m.cfg.InnerBorderWidth - m.cfg.BorderWidth - m.cfg.TitleHeight

	dec, err := m.dpy.CreateDecoration(x, y, w, h, m.cfg.BorderWidth,
		m.cfg.InnerUnfocusPixel, m.cfg.UnfocusPixel)
	if err != nil {
		m.log.Warn("failed to create decoration", "window", c.Window, "error", err)
		return
	}
	c.Dec = dec
	c.Decorated = true
}

// destroyDecorations unmaps and destroys the client's frame.
func (m *Manager) destroyDecorations(c *Client) {
	m.dpy.UnmapWindow(c.Dec)
	m.dpy.DestroyWindow(c.Dec)
	c.Decorated = false
}

// ToggleDecorations flips the frame on or off, then refreshes, raises and
// refocuses the client so the new rectangles land on screen.
func (m *Manager) ToggleDecorations(c *Client) {
	if c.Decorated {
		m.destroyDecorations(c)
	} else {
		m.decorate(c)
	}
	m.Refresh(c)
	m.RaiseClient(c)
	m.ManageFocus(c)
}

// refreshConfig re-applies the live configuration to every client: frames
// are recreated (border widths may have changed), geometry refreshed,
// colors repainted by focus state, and clients on non-current workspaces
// re-hidden.
func (m *Manager) refreshConfig() {
	for ws := 0; ws < m.reg.Workspaces(); ws++ {
		for _, c := range m.reg.Stacking(ws) {
			if c.Decorated {
				m.destroyDecorations(c)
				m.decorate(c)
			}
			m.Refresh(c)
			m.Show(c)
			if m.focused == c {
				m.setColor(c, m.cfg.InnerFocusPixel, m.cfg.FocusPixel)
			} else {
				m.setColor(c, m.cfg.InnerUnfocusPixel, m.cfg.UnfocusPixel)
			}
			if ws != m.current {
				m.Hide(c)
			} else {
				m.Show(c)
				m.RaiseClient(c)
			}
		}
	}
}

// CloseClient asks the client to close itself via WM_DELETE_WINDOW. The
// actual unmanage happens when the resulting unmap notify arrives.
func (m *Manager) CloseClient(c *Client) {
	m.dpy.SendDelete(c.Window)
	m.log.Info("sent delete request", "window", c.Window)
}
