package wm

import "github.com/BurntSushi/xgb/xproto"

// Registry owns the two per-workspace orderings: the stacking list (index 0
// is drawn frontmost) and the focus list (index 0 is the next cycle target).
// The lists may differ in order but never in membership; Save and Delete
// maintain both together.
type Registry struct {
	stacking [][]*Client
	focus    [][]*Client
}

// NewRegistry creates a registry with the given fixed number of workspaces.
func NewRegistry(workspaces int) *Registry {
	return &Registry{
		stacking: make([][]*Client, workspaces),
		focus:    make([][]*Client, workspaces),
	}
}

// Workspaces returns the fixed workspace count.
func (r *Registry) Workspaces() int {
	return len(r.stacking)
}

func (r *Registry) validWorkspace(ws int) bool {
	return ws >= 0 && ws < len(r.stacking)
}

// Save pushes the client onto the head of both the stacking list and the
// focus list for the workspace. Invalid workspace indexes are ignored.
func (r *Registry) Save(c *Client, ws int) {
	if !r.validWorkspace(ws) {
		return
	}
	r.stacking[ws] = append([]*Client{c}, r.stacking[ws]...)
	r.focus[ws] = append([]*Client{c}, r.focus[ws]...)
}

// Delete removes the client from both of its workspace's lists. It reports
// whether the client was present.
func (r *Registry) Delete(c *Client) bool {
	if !r.validWorkspace(c.Workspace) {
		return false
	}
	ws := c.Workspace
	found := false
	r.stacking[ws], found = removeClient(r.stacking[ws], c)
	if !found {
		return false
	}
	r.focus[ws], _ = removeClient(r.focus[ws], c)
	return true
}

// MoveToFront relocates the client to the head of its workspace's stacking
// list. The focus list is untouched. Calling it on the current head is a
// no-op.
func (r *Registry) MoveToFront(c *Client) {
	if !r.validWorkspace(c.Workspace) {
		return
	}
	ws := c.Workspace
	list := r.stacking[ws]
	if len(list) < 2 || list[0] == c {
		return
	}
	rest, found := removeClient(list, c)
	if !found {
		return
	}
	r.stacking[ws] = append([]*Client{c}, rest...)
}

// FindWindow scans every workspace's stacking list for the window handle.
// It matches the content window, or, for an undecorated client, the zero
// decoration placeholder. Returns nil if no client matches.
func (r *Registry) FindWindow(w xproto.Window) *Client {
	for ws := range r.stacking {
		for _, c := range r.stacking[ws] {
			if c.Window == w {
				return c
			}
			if !c.Decorated && c.Dec == w {
				return c
			}
		}
	}
	return nil
}

// Stacking returns the stacking list for a workspace, frontmost first. The
// returned slice is the registry's own; callers must not retain it across
// mutations.
func (r *Registry) Stacking(ws int) []*Client {
	if !r.validWorkspace(ws) {
		return nil
	}
	return r.stacking[ws]
}

// FocusOrder returns the focus list for a workspace.
func (r *Registry) FocusOrder(ws int) []*Client {
	if !r.validWorkspace(ws) {
		return nil
	}
	return r.focus[ws]
}

// Head returns the frontmost client of a workspace's stacking list, or nil.
func (r *Registry) Head(ws int) *Client {
	if !r.validWorkspace(ws) || len(r.stacking[ws]) == 0 {
		return nil
	}
	return r.stacking[ws][0]
}

// FocusHead returns the head of a workspace's focus list, or nil.
func (r *Registry) FocusHead(ws int) *Client {
	if !r.validWorkspace(ws) || len(r.focus[ws]) == 0 {
		return nil
	}
	return r.focus[ws][0]
}

// Windows returns every managed content window, walking workspaces in order
// and each stacking list front to back. Used to rebuild the exported client
// list property.
func (r *Registry) Windows() []xproto.Window {
	var out []xproto.Window
	for ws := range r.stacking {
		for _, c := range r.stacking[ws] {
			out = append(out, c.Window)
		}
	}
	return out
}

func removeClient(list []*Client, c *Client) ([]*Client, bool) {
	for i, cand := range list {
		if cand == c {
			out := make([]*Client, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
	}
	return list, false
}
