// Package ipc defines the control protocol between fernctl and the window
// manager: an opcode plus up to four signed 32-bit arguments, carried in a
// client message addressed to the root window.
package ipc

import "fmt"

// MessageType is the atom name the manager watches for on the root window.
// Client messages of any other type, or with a format other than 32, are
// ignored.
const MessageType = "_FERN_CLIENT_EVENT"

// Op identifies a window manager command. The numeric values are the wire
// protocol; append only.
type Op uint32

const (
	OpWindowMoveRelative Op = iota
	OpWindowMoveAbsolute
	OpWindowMonocle
	OpWindowRaise
	OpWindowResizeRelative
	OpWindowResizeAbsolute
	OpWindowToggleDecorations
	OpWindowClose
	OpWindowCenter
	OpFocusColor
	OpUnfocusColor
	OpInnerFocusColor
	OpInnerUnfocusColor
	OpBorderWidth
	OpInnerBorderWidth
	OpTitleHeight
	OpSwitchWorkspace
	OpSendToWorkspace
	OpFullscreen
	OpSnapLeft
	OpSnapRight
	OpCardinalFocus
	OpCycleFocus
	OpPointerMove
	OpSaveMonitor
	OpTopGap

	opLast // sentinel, keep last
)

// opNames maps CLI command names to opcodes. Every opcode has exactly one
// name; fernctl and the usage printer iterate this table.
var opNames = map[string]Op{
	"move":                OpWindowMoveRelative,
	"move-absolute":       OpWindowMoveAbsolute,
	"monocle":             OpWindowMonocle,
	"raise":               OpWindowRaise,
	"resize":              OpWindowResizeRelative,
	"resize-absolute":     OpWindowResizeAbsolute,
	"toggle-decorations":  OpWindowToggleDecorations,
	"close":               OpWindowClose,
	"center":              OpWindowCenter,
	"focus-color":         OpFocusColor,
	"unfocus-color":       OpUnfocusColor,
	"inner-focus-color":   OpInnerFocusColor,
	"inner-unfocus-color": OpInnerUnfocusColor,
	"border-width":        OpBorderWidth,
	"inner-border-width":  OpInnerBorderWidth,
	"title-height":        OpTitleHeight,
	"switch-workspace":    OpSwitchWorkspace,
	"send-to-workspace":   OpSendToWorkspace,
	"fullscreen":          OpFullscreen,
	"snap-left":           OpSnapLeft,
	"snap-right":          OpSnapRight,
	"cardinal-focus":      OpCardinalFocus,
	"cycle-focus":         OpCycleFocus,
	"pointer-move":        OpPointerMove,
	"save-monitor":        OpSaveMonitor,
	"top-gap":             OpTopGap,
}

// Valid reports whether the opcode is part of the protocol.
func (op Op) Valid() bool {
	return op < opLast
}

// String returns the CLI name for the opcode.
func (op Op) String() string {
	for name, o := range opNames {
		if o == op {
			return name
		}
	}
	return fmt.Sprintf("op(%d)", uint32(op))
}

// OpFromName resolves a CLI command name to its opcode.
func OpFromName(name string) (Op, error) {
	op, ok := opNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown command %q", name)
	}
	return op, nil
}

// Names returns every CLI command name. Order is unspecified.
func Names() []string {
	out := make([]string, 0, len(opNames))
	for name := range opNames {
		out = append(out, name)
	}
	return out
}
