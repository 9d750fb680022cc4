package wm

import (
	"testing"

	"github.com/1broseidon/fern/internal/ipc"
)

func TestDispatchMoveAbsolute(t *testing.T) {
	m, _ := newTestManager(t, 1)
	c := addClient(m, 0, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	m.ManageFocus(c)

	m.Dispatch(ipc.Message{Op: ipc.OpWindowMoveAbsolute, Args: [4]int32{50, 60}})

	if c.Geom.X != 50 || c.Geom.Y != 60 {
		t.Fatalf("expected (50,60), got (%d,%d)", c.Geom.X, c.Geom.Y)
	}
}

func TestDispatchWithoutFocusIsNoOp(t *testing.T) {
	m, d := newTestManager(t, 1)

	ops := []ipc.Op{
		ipc.OpWindowMoveRelative,
		ipc.OpWindowResizeRelative,
		ipc.OpWindowMonocle,
		ipc.OpWindowRaise,
		ipc.OpWindowCenter,
		ipc.OpWindowClose,
		ipc.OpWindowToggleDecorations,
		ipc.OpFullscreen,
		ipc.OpSnapLeft,
		ipc.OpSnapRight,
		ipc.OpCardinalFocus,
		ipc.OpCycleFocus,
		ipc.OpSendToWorkspace,
	}
	for _, op := range ops {
		m.Dispatch(ipc.Message{Op: op, Args: [4]int32{1}})
	}

	if len(d.pos) != 0 || len(d.raised) != 0 || len(d.deleted) != 0 {
		t.Fatalf("expected no display calls without a focused client")
	}
}

func TestDispatchWorkspaceNumbersAreOneBased(t *testing.T) {
	m, _ := newTestManager(t, 3)

	m.Dispatch(ipc.Message{Op: ipc.OpSwitchWorkspace, Args: [4]int32{2}})
	if m.CurrentWorkspace() != 1 {
		t.Fatalf("expected wire workspace 2 to land on index 1, got %d", m.CurrentWorkspace())
	}

	c := addClient(m, 1, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	m.ManageFocus(c)
	m.Dispatch(ipc.Message{Op: ipc.OpSendToWorkspace, Args: [4]int32{3}})
	if c.Workspace != 2 {
		t.Fatalf("expected wire workspace 3 to land on index 2, got %d", c.Workspace)
	}
}

func TestDispatchBorderWidthReconfigures(t *testing.T) {
	m, d := newTestManager(t, 1)
	c := addClient(m, 0, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	c.Dec = 500
	c.Decorated = true
	m.ManageFocus(c)
	d.raised = nil

	m.Dispatch(ipc.Message{Op: ipc.OpBorderWidth, Args: [4]int32{8}})

	if m.cfg.BorderWidth != 8 {
		t.Fatalf("expected border width 8, got %d", m.cfg.BorderWidth)
	}
	// The frame is recreated with the new width and the focused client
	// ends up raised again.
	if len(d.raised) == 0 {
		t.Fatalf("expected focused client raised after reconfigure")
	}
	if !c.Decorated {
		t.Fatalf("expected client still decorated")
	}
}

func TestDispatchColorUpdates(t *testing.T) {
	m, d := newTestManager(t, 1)
	c := addClient(m, 0, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	c.Dec = 500
	c.Decorated = true
	m.ManageFocus(c)

	m.Dispatch(ipc.Message{Op: ipc.OpFocusColor, Args: [4]int32{0x00ff00}})

	if m.cfg.FocusPixel != 0x00ff00 {
		t.Fatalf("expected focus pixel updated, got %#x", m.cfg.FocusPixel)
	}
	if d.colors[c.Dec][1] != 0x00ff00 {
		t.Fatalf("expected focused frame repainted, got %#x", d.colors[c.Dec][1])
	}
}

func TestDispatchCardinalFocus(t *testing.T) {
	m, _ := newTestManager(t, 1)
	a := addClient(m, 0, Rect{X: 100, Y: 100, Width: 100, Height: 100})
	b := addClient(m, 0, Rect{X: 400, Y: 100, Width: 100, Height: 100})
	m.ManageFocus(a)

	m.Dispatch(ipc.Message{Op: ipc.OpCardinalFocus, Args: [4]int32{int32(East)}})

	if m.Focused() != b {
		t.Fatalf("expected eastern client focused")
	}
}

func TestDispatchPointerMoveDrag(t *testing.T) {
	m, d := newTestManager(t, 1)
	c := addClient(m, 0, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	d.pointerOK = true
	d.pointerChild = c.Window

	// First sample only arms the accumulator.
	d.pointerX, d.pointerY = 500, 500
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{1}})
	if c.Geom.X != 100 || c.Geom.Y != 100 {
		t.Fatalf("expected no move on first sample, got (%d,%d)", c.Geom.X, c.Geom.Y)
	}

	d.pointerX, d.pointerY = 520, 530
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{1}})
	if c.Geom.X != 120 || c.Geom.Y != 130 {
		t.Fatalf("expected (120,130) after drag, got (%d,%d)", c.Geom.X, c.Geom.Y)
	}
	if m.Focused() != c {
		t.Fatalf("expected dragged client focused")
	}

	// Reset, then a fresh drag must not jump.
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{2}})
	d.pointerX, d.pointerY = 900, 900
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{1}})
	if c.Geom.X != 120 || c.Geom.Y != 130 {
		t.Fatalf("expected no move after reset, got (%d,%d)", c.Geom.X, c.Geom.Y)
	}
}

func TestDispatchPointerDragTakesFocus(t *testing.T) {
	m, d := newTestManager(t, 1)
	a := addClient(m, 0, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	b := addClient(m, 0, Rect{X: 400, Y: 100, Width: 200, Height: 100})
	m.ManageFocus(a)

	// Drag b while a holds the focus.
	d.pointerOK = true
	d.pointerChild = b.Window
	d.pointerX, d.pointerY = 450, 150
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{1}})
	d.pointerX, d.pointerY = 480, 170
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{1}})

	if b.Geom.X != 430 || b.Geom.Y != 120 {
		t.Fatalf("expected (430,120) after drag, got (%d,%d)", b.Geom.X, b.Geom.Y)
	}
	if m.Focused() != b {
		t.Fatalf("expected focus to follow the dragged client, got window %d",
			m.Focused().Window)
	}
	if m.reg.Head(0) != b {
		t.Fatalf("expected dragged client at stacking head")
	}
}

func TestDispatchPointerFocus(t *testing.T) {
	m, d := newTestManager(t, 1)
	a := addClient(m, 0, Rect{X: 100, Y: 100, Width: 200, Height: 100})
	b := addClient(m, 0, Rect{X: 400, Y: 100, Width: 200, Height: 100})
	m.ManageFocus(a)

	d.pointerOK = true
	d.pointerChild = b.Window
	m.Dispatch(ipc.Message{Op: ipc.OpPointerMove, Args: [4]int32{0}})

	if m.Focused() != b {
		t.Fatalf("expected client under pointer focused")
	}
}

func TestDispatchSaveMonitor(t *testing.T) {
	m, _ := newTestManager(t, 3)
	m.dpy.(*fakeDisplay).mons = []Monitor{
		{Width: 1920, Height: 1080},
		{X: 1920, Width: 1280, Height: 1024, Screen: 1},
	}
	m.UpdateMonitors()

	m.Dispatch(ipc.Message{Op: ipc.OpSaveMonitor, Args: [4]int32{2, 1}})
	if m.wsMon[2] != 1 {
		t.Fatalf("expected workspace 2 mapped to monitor 1, got %d", m.wsMon[2])
	}
}
