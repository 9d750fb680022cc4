package wm

import (
	"github.com/1broseidon/fern/internal/ipc"
)

// Dispatch executes one decoded control message. Window operations that
// need a target act on the focused client and are no-ops while nothing is
// focused. Workspace numbers arrive 1-based on the wire and are shifted
// here.
func (m *Manager) Dispatch(msg ipc.Message) {
	m.log.Debug("dispatching command", "op", msg.Op.String(),
		"args", msg.Args)

	f := m.focused

	switch msg.Op {
	case ipc.OpWindowMoveRelative:
		if f != nil {
			m.MoveRelative(f, int(msg.Args[0]), int(msg.Args[1]))
		}
	case ipc.OpWindowMoveAbsolute:
		if f != nil {
			m.MoveAbsolute(f, int(msg.Args[0]), int(msg.Args[1]))
		}
	case ipc.OpWindowResizeRelative:
		if f != nil {
			m.ResizeRelative(f, int(msg.Args[0]), int(msg.Args[1]))
		}
	case ipc.OpWindowResizeAbsolute:
		if f != nil {
			m.ResizeAbsolute(f, int(msg.Args[0]), int(msg.Args[1]))
		}
	case ipc.OpWindowMonocle:
		if f != nil {
			m.Monocle(f)
		}
	case ipc.OpWindowRaise:
		if f != nil {
			m.RaiseClient(f)
		}
	case ipc.OpWindowCenter:
		if f != nil {
			m.Center(f)
		}
	case ipc.OpWindowClose:
		if f != nil {
			m.CloseClient(f)
		}
	case ipc.OpWindowToggleDecorations:
		if f != nil {
			m.ToggleDecorations(f)
		}
	case ipc.OpFullscreen:
		if f != nil {
			m.Fullscreen(f)
		}
	case ipc.OpSnapLeft:
		if f != nil {
			m.SnapLeft(f)
		}
	case ipc.OpSnapRight:
		if f != nil {
			m.SnapRight(f)
		}
	case ipc.OpCardinalFocus:
		if f != nil {
			m.CardinalFocus(f, Direction(msg.Args[0]))
		}
	case ipc.OpCycleFocus:
		if f != nil {
			m.focusNext(f)
		}
	case ipc.OpPointerMove:
		m.pointerMove(int(msg.Args[0]))
	case ipc.OpSwitchWorkspace:
		m.SwitchWorkspace(int(msg.Args[0]) - 1)
	case ipc.OpSendToWorkspace:
		if f != nil {
			m.SendToWorkspace(f, int(msg.Args[0])-1)
		}
	case ipc.OpSaveMonitor:
		m.AssignMonitor(int(msg.Args[0]), int(msg.Args[1]))
	case ipc.OpFocusColor:
		m.cfg.FocusPixel = uint32(msg.Args[0])
		m.refreshConfig()
	case ipc.OpUnfocusColor:
		m.cfg.UnfocusPixel = uint32(msg.Args[0])
		m.refreshConfig()
	case ipc.OpInnerFocusColor:
		m.cfg.InnerFocusPixel = uint32(msg.Args[0])
		m.refreshConfig()
	case ipc.OpInnerUnfocusColor:
		m.cfg.InnerUnfocusPixel = uint32(msg.Args[0])
		m.refreshConfig()
	case ipc.OpBorderWidth:
		m.cfg.BorderWidth = int(msg.Args[0])
		m.refreshConfig()
		if f != nil {
			m.RaiseClient(f)
		}
	case ipc.OpInnerBorderWidth:
		m.cfg.InnerBorderWidth = int(msg.Args[0])
		m.refreshConfig()
	case ipc.OpTitleHeight:
		m.cfg.TitleHeight = int(msg.Args[0])
		m.refreshConfig()
	case ipc.OpTopGap:
		m.cfg.TopGap = int(msg.Args[0])
		m.refreshConfig()
	default:
		m.log.Warn("unhandled command", "op", uint32(msg.Op))
	}
}

// pointerMove services the pointer-driven commands. Mode 2 resets the drag
// accumulator. The other modes act on the client under the pointer: mode 1
// moves it by the pointer delta since the previous call, and both modes
// leave it focused and raised.
func (m *Manager) pointerMove(mode int) {
	if mode == 2 {
		m.pointX, m.pointY = -1, -1
		return
	}

	x, y, child, ok := m.dpy.QueryPointer()
	if !ok {
		return
	}
	c := m.reg.FindWindow(child)
	if c == nil {
		return
	}

	if mode == 1 {
		if m.pointX >= 0 {
			m.MoveRelative(c, x-m.pointX, y-m.pointY)
		}
		m.pointX, m.pointY = x, y
	}
	m.ManageFocus(c)
}
