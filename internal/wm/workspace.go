package wm

// AssignMonitor maps a workspace slot onto a monitor index. A monitor index
// beyond the current table is refused; the previous mapping of the
// workspace is overwritten unconditionally.
func (m *Manager) AssignMonitor(ws, mon int) {
	if ws < 0 || ws >= len(m.wsMon) {
		m.log.Warn("cannot save monitor, workspace invalid", "workspace", ws)
		return
	}
	if mon < 0 || mon >= len(m.monitors) {
		m.log.Warn("cannot save monitor, index too high", "monitor", mon)
		return
	}
	m.log.Info("mapping workspace to monitor", "workspace", ws, "monitor", mon)
	m.wsMon[ws] = mon
}

// SafeToFocus reports whether the workspace can be shown without visually
// conflicting with another workspace on the same monitor: it is unsafe
// while any other workspace mapped there has a non-empty, non-hidden
// stacking list.
func (m *Manager) SafeToFocus(ws int) bool {
	if ws < 0 || ws >= len(m.wsMon) {
		return false
	}
	mon := m.wsMon[ws]
	for i := 0; i < m.reg.Workspaces(); i++ {
		if i == ws || m.wsMon[i] != mon {
			continue
		}
		if head := m.reg.Head(i); head != nil && !head.Hidden {
			return false
		}
	}
	return true
}

// SwitchWorkspace makes ws the current workspace: every other workspace
// sharing its monitor is hidden, the destination's clients are shown and
// lowered in registry order so the registry head ends up topmost, focus
// moves to the new head (or the nil branch when the workspace is empty),
// and the current-desktop property is exported.
func (m *Manager) SwitchWorkspace(ws int) {
	if ws < 0 || ws >= m.reg.Workspaces() {
		m.log.Warn("cannot switch workspace, index invalid", "workspace", ws)
		return
	}

	for i := 0; i < m.reg.Workspaces(); i++ {
		switch {
		case i != ws && m.wsMon[i] == m.wsMon[ws]:
			for _, c := range m.reg.Stacking(i) {
				m.Hide(c)
			}
		case i == ws:
			// Lowering in front-to-back registry order reconciles the
			// display stacking order with the list order: the head is
			// lowered first and ends up topmost.
			for _, c := range m.reg.Stacking(i) {
				m.Show(c)
				m.dpy.Lower(c.Window)
				if c.Decorated {
					m.dpy.Lower(c.Dec)
				}
			}
		}
	}

	m.current = ws
	m.log.Info("switched workspace", "workspace", ws, "monitor", m.wsMon[ws])
	m.ManageFocus(m.reg.Head(ws))
	m.dpy.ExportCurrentWorkspace(ws)
}

// SendToWorkspace moves the client to another workspace: it is deleted from
// its current lists, re-saved into the destination, hidden, focus advances
// on the source workspace, and the client is shown immediately only when
// the destination is currently safe to focus.
func (m *Manager) SendToWorkspace(c *Client, ws int) {
	if ws < 0 || ws >= m.reg.Workspaces() {
		m.log.Warn("cannot send to workspace, index invalid", "workspace", ws)
		return
	}

	prev := c.Workspace
	m.deleteClient(c)
	c.Workspace = ws
	m.reg.Save(c, ws)
	m.Hide(c)
	m.focusNext(m.reg.FocusHead(prev))

	if m.SafeToFocus(ws) {
		m.Show(c)
	}
}
