// Package wm is the window/workspace state engine: per-workspace client
// registries, the focus machinery, geometry and decoration arithmetic, the
// four canned layouts, and the command dispatcher. It owns all mutable
// manager state; everything it does to the screen goes through the Display
// interface.
package wm

import "github.com/BurntSushi/xgb/xproto"

// Rect is a window geometry in root coordinates. For a decorated client the
// stored geometry tracks the decoration origin and outer size; for an
// undecorated client it tracks the content window directly.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Monitor is one physical display region. The monitor table is rebuilt
// wholesale on every display configuration change; entries are never
// patched in place. Mirrored heads are not deduplicated.
type Monitor struct {
	X, Y          int
	Width, Height int
	Screen        int
}

// Display is the surface the engine draws on. Calls are synchronous and
// assumed to succeed; expected benign X errors are swallowed by the error
// handler the x11 package installs. The engine never retries.
type Display interface {
	Move(win xproto.Window, x, y int)
	Resize(win xproto.Window, width, height int)
	Raise(win xproto.Window)
	Lower(win xproto.Window)
	MapWindow(win xproto.Window)
	UnmapWindow(win xproto.Window)
	DestroyWindow(win xproto.Window)

	// CreateDecoration creates and maps a frame window with the given
	// outer geometry, X border width, background and border pixels.
	CreateDecoration(x, y, width, height, borderWidth int, bg, border uint32) (xproto.Window, error)
	SetColor(win xproto.Window, bg, border uint32)

	SetInputFocus(win xproto.Window)
	SendTakeFocus(win xproto.Window)
	SendDelete(win xproto.Window)

	// QueryPointer returns the pointer position in root coordinates and
	// the top-level child under it (zero when over the root itself).
	QueryPointer() (x, y int, child xproto.Window, ok bool)
	RootDimensions() (width, height int)
	Monitors() []Monitor

	WindowTypes(win xproto.Window) []string
	WindowGeometry(win xproto.Window) (Rect, bool)

	ExportActiveWindow(win xproto.Window)
	ExportClientList(wins []xproto.Window)
	ExportCurrentWorkspace(ws int)
	ExportFullscreen(win xproto.Window, on bool)
}

// Direction is a cardinal focus direction. Wire values are fixed.
type Direction int

const (
	East Direction = iota
	South
	West
	North
)

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "unknown"
	}
}

// DirectionFromName resolves a direction name as used by fernctl.
func DirectionFromName(name string) (Direction, bool) {
	switch name {
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	case "north":
		return North, true
	default:
		return 0, false
	}
}
