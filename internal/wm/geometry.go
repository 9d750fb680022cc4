package wm

// minimumDim floors every dimension sent to the display so a degenerate
// resize can never produce an invisible window.
const minimumDim = 30

// MoveAbsolute places the client at (x, y). For a decorated client the
// coordinates address the decoration's top-left corner and the content
// window is offset inside it; the stored geometry always tracks (x, y).
func (m *Manager) MoveAbsolute(c *Client, x, y int) {
	destX, destY := x, y
	if c.Decorated {
		destX = x + m.cfg.InnerBorderWidth + m.cfg.BorderWidth
		destY = y + m.cfg.InnerBorderWidth + m.cfg.BorderWidth + m.cfg.TitleHeight
	}

	m.dpy.Move(c.Window, destX, destY)
	if c.Decorated {
		m.dpy.Move(c.Dec, x, y)
	}

	c.Geom.X = x
	c.Geom.Y = y
}

// MoveRelative applies a delta. With edge lock enabled the destination is
// clamped so the bounding box cannot cross the owning monitor's left, right
// or bottom edges, nor the top edge offset by the configured top gap.
func (m *Manager) MoveRelative(c *Client, dx, dy int) {
	if !m.cfg.EdgeLock {
		m.MoveAbsolute(c, c.Geom.X+dx, c.Geom.Y+dy)
		return
	}

	mon := m.monitorFor(c)

	var destX int
	switch {
	case c.Geom.X+c.Geom.Width+dx > mon.X+mon.Width:
		destX = mon.X + mon.Width - c.Geom.Width
	case c.Geom.X+dx < mon.X:
		destX = mon.X
	default:
		destX = c.Geom.X + dx
	}

	var destY int
	switch {
	case c.Geom.Y+c.Geom.Height+dy > mon.Y+mon.Height:
		destY = mon.Y + mon.Height - c.Geom.Height
	case c.Geom.Y+dy < mon.Y+m.cfg.TopGap:
		destY = mon.Y + m.cfg.TopGap
	default:
		destY = c.Geom.Y + dy
	}

	m.MoveAbsolute(c, destX, destY)
}

// ResizeAbsolute sets the client's outer size to (w, h). For a decorated
// client the content dimensions subtract both border widths (and the title
// height vertically) and the decoration subtracts the outer border. Every
// dimension sent to the display is floored at minimumDim, as is the stored
// geometry.
func (m *Manager) ResizeAbsolute(c *Client, w, h int) {
	contentW, contentH := w, h
	decW, decH := w, h

	if c.Decorated {
		contentW = w - 2*m.cfg.InnerBorderWidth - 2*m.cfg.BorderWidth
		contentH = h - 2*m.cfg.InnerBorderWidth - 2*m.cfg.BorderWidth - m.cfg.TitleHeight

		decW = w - 2*m.cfg.BorderWidth
		decH = h - 2*m.cfg.BorderWidth
	}

	m.dpy.Resize(c.Window, max(contentW, minimumDim), max(contentH, minimumDim))
	if c.Decorated {
		m.dpy.Resize(c.Dec, max(decW, minimumDim), max(decH, minimumDim))
	}

	c.Geom.Width = max(w, minimumDim)
	c.Geom.Height = max(h, minimumDim)
}

// ResizeRelative grows or shrinks the client. With edge lock enabled growth
// is capped so the bounding box cannot cross the monitor's right or bottom
// edge (the bottom check accounts for the title height).
func (m *Manager) ResizeRelative(c *Client, dw, dh int) {
	if !m.cfg.EdgeLock {
		m.ResizeAbsolute(c, c.Geom.Width+dw, c.Geom.Height+dh)
		return
	}

	mon := m.monitorFor(c)

	var destW int
	if c.Geom.X+c.Geom.Width+dw > mon.X+mon.Width {
		destW = mon.X + mon.Width - c.Geom.X
	} else {
		destW = c.Geom.Width + dw
	}

	var destH int
	if c.Geom.Y+c.Geom.Height+m.cfg.TitleHeight+dh > mon.Y+mon.Height {
		destH = mon.Y + mon.Height - c.Geom.Y
	} else {
		destH = c.Geom.Height + dh
	}

	m.ResizeAbsolute(c, destW, destH)
}

// Refresh re-applies the client's own geometry to itself, twice. This is
// the idempotent mechanism that forces the display to re-derive decoration
// placement after a frame was recreated or a monitor changed.
func (m *Manager) Refresh(c *Client) {
	for i := 0; i < 2; i++ {
		m.MoveRelative(c, 0, 0)
		m.ResizeRelative(c, 0, 0)
	}
}

// RaiseClient raises the decoration (when present) and the content window
// to the top of the display stacking order.
func (m *Manager) RaiseClient(c *Client) {
	if c == nil {
		return
	}
	if c.Decorated {
		m.dpy.Raise(c.Dec)
	}
	m.dpy.Raise(c.Window)
}

// setColor repaints the client's frame with an inner/border pixel pair.
// Undecorated clients have nothing to repaint.
func (m *Manager) setColor(c *Client, inner, border uint32) {
	if c.Decorated {
		m.dpy.SetColor(c.Dec, inner, border)
	}
}
