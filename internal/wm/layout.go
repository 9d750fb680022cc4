package wm

// Fullscreen toggles the client between its current geometry and the full
// bounds of its monitor, keeping the exported fullscreen state property in
// sync (set or cleared, never accumulated).
func (m *Manager) Fullscreen(c *Client) {
	mon := m.monitorFor(c)
	m.MoveAbsolute(c, mon.X, mon.Y)
	m.ResizeAbsolute(c, mon.Width, mon.Height)
	m.dpy.ExportFullscreen(c.Window, !c.Fullscreen)
	c.Fullscreen = !c.Fullscreen
}

// Monocle fills the monitor below the top gap.
func (m *Manager) Monocle(c *Client) {
	mon := m.monitorFor(c)
	m.MoveAbsolute(c, mon.X, mon.Y+m.cfg.TopGap)
	m.ResizeAbsolute(c, mon.Width, mon.Height-m.cfg.TopGap)
}

// SnapLeft fills the left half of the monitor below the top gap.
func (m *Manager) SnapLeft(c *Client) {
	mon := m.monitorFor(c)
	m.MoveAbsolute(c, mon.X, mon.Y+m.cfg.TopGap)
	m.ResizeAbsolute(c, mon.Width/2, mon.Height-m.cfg.TopGap)
}

// SnapRight fills the right half of the monitor below the top gap.
func (m *Manager) SnapRight(c *Client) {
	mon := m.monitorFor(c)
	m.MoveAbsolute(c, mon.X+mon.Width/2, mon.Y+m.cfg.TopGap)
	m.ResizeAbsolute(c, mon.Width/2, mon.Height-m.cfg.TopGap)
}

// Center moves the client so its geometric center coincides with its
// monitor's center.
func (m *Manager) Center(c *Client) {
	mon := m.monitorFor(c)
	m.MoveAbsolute(c,
		mon.X+mon.Width/2-c.Geom.Width/2,
		mon.Y+mon.Height/2-c.Geom.Height/2)
}

// Hide parks the client past the right edge of the display, saving its x
// coordinate for Show. Hiding a hidden client is a no-op.
func (m *Manager) Hide(c *Client) {
	if c.Hidden {
		return
	}
	c.HideX = c.Geom.X
	rootW, _ := m.dpy.RootDimensions()
	m.MoveAbsolute(c, rootW+m.cfg.BorderWidth, c.Geom.Y)
	c.Hidden = true
}

// Show restores a hidden client to its saved x coordinate, raises it and
// forces a geometry refresh. Showing a visible client is a no-op.
func (m *Manager) Show(c *Client) {
	if !c.Hidden {
		return
	}
	m.MoveAbsolute(c, c.HideX, c.Geom.Y)
	m.RaiseClient(c)
	c.Hidden = false
	m.Refresh(c)
}
