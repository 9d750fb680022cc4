package wm

import (
	"io"
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/fern/internal/config"
)

// fakeDisplay records every call the engine makes so tests can assert on
// the resulting screen state without an X server.
type fakeDisplay struct {
	rootW, rootH int
	mons         []Monitor

	pos  map[xproto.Window][2]int
	size map[xproto.Window][2]int

	raised    []xproto.Window
	lowered   []xproto.Window
	mapped    []xproto.Window
	unmapped  []xproto.Window
	destroyed []xproto.Window

	colors map[xproto.Window][2]uint32

	inputFocus xproto.Window
	takeFocus  []xproto.Window
	deleted    []xproto.Window

	activeWin  xproto.Window
	activeSet  bool
	clientList []xproto.Window
	currentWS  int
	fullscreen map[xproto.Window]bool

	pointerX, pointerY int
	pointerChild       xproto.Window
	pointerOK          bool

	types map[xproto.Window][]string
	geoms map[xproto.Window]Rect

	nextDec xproto.Window
}

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{
		rootW:      w,
		rootH:      h,
		mons:       []Monitor{{X: 0, Y: 0, Width: w, Height: h, Screen: 0}},
		pos:        make(map[xproto.Window][2]int),
		size:       make(map[xproto.Window][2]int),
		colors:     make(map[xproto.Window][2]uint32),
		fullscreen: make(map[xproto.Window]bool),
		types:      make(map[xproto.Window][]string),
		geoms:      make(map[xproto.Window]Rect),
		nextDec:    9000,
	}
}

func (d *fakeDisplay) Move(win xproto.Window, x, y int) {
	d.pos[win] = [2]int{x, y}
}

func (d *fakeDisplay) Resize(win xproto.Window, w, h int) {
	d.size[win] = [2]int{w, h}
}

func (d *fakeDisplay) Raise(win xproto.Window)   { d.raised = append(d.raised, win) }
func (d *fakeDisplay) Lower(win xproto.Window)   { d.lowered = append(d.lowered, win) }
func (d *fakeDisplay) MapWindow(w xproto.Window) { d.mapped = append(d.mapped, w) }

func (d *fakeDisplay) UnmapWindow(w xproto.Window) {
	d.unmapped = append(d.unmapped, w)
}

func (d *fakeDisplay) DestroyWindow(w xproto.Window) {
	d.destroyed = append(d.destroyed, w)
}

func (d *fakeDisplay) CreateDecoration(x, y, w, h, borderWidth int, bg, border uint32) (xproto.Window, error) {
	d.nextDec++
	dec := d.nextDec
	d.pos[dec] = [2]int{x, y}
	d.size[dec] = [2]int{w, h}
	d.colors[dec] = [2]uint32{bg, border}
	return dec, nil
}

func (d *fakeDisplay) SetColor(win xproto.Window, bg, border uint32) {
	d.colors[win] = [2]uint32{bg, border}
}

func (d *fakeDisplay) SetInputFocus(win xproto.Window) { d.inputFocus = win }

func (d *fakeDisplay) SendTakeFocus(win xproto.Window) {
	d.takeFocus = append(d.takeFocus, win)
}

func (d *fakeDisplay) SendDelete(win xproto.Window) {
	d.deleted = append(d.deleted, win)
}

func (d *fakeDisplay) QueryPointer() (int, int, xproto.Window, bool) {
	return d.pointerX, d.pointerY, d.pointerChild, d.pointerOK
}

func (d *fakeDisplay) RootDimensions() (int, int) { return d.rootW, d.rootH }
func (d *fakeDisplay) Monitors() []Monitor        { return d.mons }

func (d *fakeDisplay) WindowTypes(w xproto.Window) []string { return d.types[w] }

func (d *fakeDisplay) WindowGeometry(w xproto.Window) (Rect, bool) {
	g, ok := d.geoms[w]
	return g, ok
}

func (d *fakeDisplay) ExportActiveWindow(w xproto.Window) {
	d.activeWin = w
	d.activeSet = true
}

func (d *fakeDisplay) ExportClientList(wins []xproto.Window) { d.clientList = wins }
func (d *fakeDisplay) ExportCurrentWorkspace(ws int)         { d.currentWS = ws }

func (d *fakeDisplay) ExportFullscreen(w xproto.Window, on bool) {
	d.fullscreen[w] = on
}

func newTestManager(t *testing.T, workspaces int) (*Manager, *fakeDisplay) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Workspaces = workspaces
	if err := cfg.BuildEffective(); err != nil {
		t.Fatalf("building config: %v", err)
	}
	d := newFakeDisplay(1920, 1080)
	m := New(d, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.UpdateMonitors()
	return m, d
}

var nextTestWin xproto.Window = 100

// addClient registers an undecorated client directly, bypassing the map
// request path. Tests that need the full manage flow use HandleMapRequest.
func addClient(m *Manager, ws int, geom Rect) *Client {
	nextTestWin++
	c := &Client{Window: nextTestWin, Workspace: ws, Geom: geom}
	m.reg.Save(c, ws)
	return c
}

func TestHandleMapRequestManages(t *testing.T) {
	m, d := newTestManager(t, 2)
	win := xproto.Window(42)
	d.geoms[win] = Rect{X: 10, Y: 20, Width: 300, Height: 200}

	c := m.HandleMapRequest(win)
	if c == nil {
		t.Fatalf("expected window to be managed")
	}
	if !c.Decorated {
		t.Fatalf("expected client to be decorated")
	}
	if c.Workspace != 0 {
		t.Fatalf("expected workspace 0, got %d", c.Workspace)
	}
	if m.Focused() != c {
		t.Fatalf("expected new client to take focus")
	}

	// Centered on a 1920x1080 monitor.
	want := Rect{X: 810, Y: 440, Width: 300, Height: 200}
	if c.Geom != want {
		t.Fatalf("expected geometry %+v, got %+v", want, c.Geom)
	}

	if len(d.clientList) != 1 || d.clientList[0] != win {
		t.Fatalf("expected client list [%d], got %v", win, d.clientList)
	}
}

func TestHandleMapRequestSkipsDock(t *testing.T) {
	m, d := newTestManager(t, 2)
	win := xproto.Window(43)
	d.types[win] = []string{"_NET_WM_WINDOW_TYPE_DOCK"}
	d.geoms[win] = Rect{Width: 100, Height: 100}

	if c := m.HandleMapRequest(win); c != nil {
		t.Fatalf("expected dock window to stay unmanaged")
	}
	if len(d.mapped) != 1 || d.mapped[0] != win {
		t.Fatalf("expected dock window to be mapped bare, got %v", d.mapped)
	}
	if m.reg.Head(0) != nil {
		t.Fatalf("expected registry to stay empty")
	}
}

func TestHandleUnmapNotifyAdvancesFocus(t *testing.T) {
	m, d := newTestManager(t, 2)
	d.geoms[1] = Rect{Width: 100, Height: 100}
	d.geoms[2] = Rect{Width: 100, Height: 100}
	a := m.HandleMapRequest(1)
	b := m.HandleMapRequest(2)
	if m.Focused() != b {
		t.Fatalf("expected second client focused")
	}

	m.HandleUnmapNotify(b.Window)

	if m.Focused() != a {
		t.Fatalf("expected focus to advance to first client")
	}
	if m.reg.FindWindow(b.Window) != nil {
		t.Fatalf("expected unmapped client to be deregistered")
	}
	found := false
	for _, w := range d.destroyed {
		if w == b.Dec {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected decoration %d to be destroyed, got %v", b.Dec, d.destroyed)
	}
}

func TestDeleteLastClientClearsFocus(t *testing.T) {
	m, d := newTestManager(t, 2)
	d.geoms[1] = Rect{Width: 100, Height: 100}
	c := m.HandleMapRequest(1)

	m.HandleUnmapNotify(c.Window)

	if m.Focused() != nil {
		t.Fatalf("expected no focused client after last unmap")
	}
	if len(d.clientList) != 0 {
		t.Fatalf("expected empty client list, got %v", d.clientList)
	}
}

func TestToggleDecorations(t *testing.T) {
	m, d := newTestManager(t, 2)
	d.geoms[1] = Rect{Width: 100, Height: 100}
	c := m.HandleMapRequest(1)
	dec := c.Dec

	m.ToggleDecorations(c)
	if c.Decorated {
		t.Fatalf("expected client to be undecorated after toggle")
	}
	found := false
	for _, w := range d.destroyed {
		if w == dec {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected frame %d to be destroyed", dec)
	}

	m.ToggleDecorations(c)
	if !c.Decorated {
		t.Fatalf("expected client to be decorated after second toggle")
	}
}
