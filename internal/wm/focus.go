package wm

import "math"

// ManageFocus transfers focus to c: the previously focused client is
// repainted with the unfocused colors, the new one gets the focused colors,
// is raised, receives input focus, is exported as the active window, moved
// to the front of its stacking list and sent a take-focus notification.
//
// Passing nil repaints the previously focused client only; the focused
// reference and the exported active-window property are deliberately left
// in place so an empty workspace does not flicker the property away.
func (m *Manager) ManageFocus(c *Client) {
	if c != nil && m.focused != nil {
		m.setColor(m.focused, m.cfg.InnerUnfocusPixel, m.cfg.UnfocusPixel)
		m.dpy.SendTakeFocus(c.Window)
	}

	if c == nil {
		if m.focused != nil {
			m.setColor(m.focused, m.cfg.InnerUnfocusPixel, m.cfg.UnfocusPixel)
		}
		return
	}

	m.setColor(c, m.cfg.InnerFocusPixel, m.cfg.FocusPixel)
	m.RaiseClient(c)
	m.dpy.SetInputFocus(c.Window)
	m.dpy.ExportActiveWindow(c.Window)
	m.focused = c
	m.reg.MoveToFront(c)
	m.dpy.SendTakeFocus(c.Window)
}

// CardinalFocus focuses the nearest client strictly on the given side of c,
// measured by euclidean distance between geometry centers over the whole
// current-workspace stacking list (hidden clients included). Ties keep the
// first minimal candidate in list order. No candidate means no change.
func (m *Manager) CardinalFocus(c *Client, dir Direction) {
	minDist := math.MaxInt
	var next *Client

	for _, cand := range m.reg.Stacking(m.current) {
		if cand == c {
			continue
		}

		eligible := false
		switch dir {
		case East:
			eligible = cand.Geom.X > c.Geom.X
		case South:
			eligible = cand.Geom.Y > c.Geom.Y
		case West:
			eligible = cand.Geom.X < c.Geom.X
		case North:
			eligible = cand.Geom.Y < c.Geom.Y
		}
		if !eligible {
			continue
		}

		if dist := centerDistance(c, cand); dist < minDist {
			minDist = dist
			next = cand
		}
	}

	if next == nil {
		m.log.Info("cannot cardinal focus, no valid window found", "direction", dir)
		return
	}
	m.log.Debug("cardinal focus", "direction", dir, "window", next.Window)
	m.ManageFocus(next)
}

// focusNext advances focus to the client after c in its workspace's focus
// list, wrapping to the head at the tail. A single-element list re-focuses
// itself. Nil is a no-op.
func (m *Manager) focusNext(c *Client) {
	if c == nil {
		return
	}
	list := m.reg.FocusOrder(c.Workspace)
	if len(list) == 0 {
		return
	}
	for i, cand := range list {
		if cand == c {
			m.ManageFocus(list[(i+1)%len(list)])
			return
		}
	}
	// c already left the list; fall back to the head.
	m.ManageFocus(list[0])
}

// centerDistance is the squared euclidean distance between two clients'
// geometry centers. Squared keeps it in integers; ordering is unchanged.
func centerDistance(a, b *Client) int {
	ax, ay := a.Center()
	bx, by := b.Center()
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}
