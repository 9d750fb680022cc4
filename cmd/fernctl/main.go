package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/1broseidon/fern/internal/config"
	"github.com/1broseidon/fern/internal/ipc"
	"github.com/1broseidon/fern/internal/wm"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	default:
		os.Exit(runCommand(os.Args[1], os.Args[2:]))
	}
}

func runCommand(name string, args []string) int {
	op, err := ipc.OpFromName(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printMainUsage(os.Stderr)
		return 2
	}

	msg := ipc.Message{Op: op}
	msg.Args, err = parseArgs(op, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 2
	}

	if err := ipc.Send(msg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}

// parseArgs converts the command line into the four wire words of a
// control message, per command schema.
func parseArgs(op ipc.Op, args []string) ([4]int32, error) {
	switch op {
	case ipc.OpWindowMoveRelative:
		if len(args) == 1 {
			return moveStepArgs(args[0])
		}
		return intArgs(args, 2)

	case ipc.OpWindowResizeRelative:
		if len(args) == 1 {
			return resizeStepArgs(args[0])
		}
		return intArgs(args, 2)

	case ipc.OpWindowMoveAbsolute, ipc.OpWindowResizeAbsolute,
		ipc.OpSaveMonitor:
		return intArgs(args, 2)

	case ipc.OpBorderWidth, ipc.OpInnerBorderWidth, ipc.OpTitleHeight,
		ipc.OpTopGap, ipc.OpSwitchWorkspace, ipc.OpSendToWorkspace:
		return intArgs(args, 1)

	case ipc.OpFocusColor, ipc.OpUnfocusColor,
		ipc.OpInnerFocusColor, ipc.OpInnerUnfocusColor:
		if len(args) != 1 {
			return [4]int32{}, fmt.Errorf("expected 1 argument (#rrggbb), got %d", len(args))
		}
		pixel, err := config.ParseColor(args[0])
		if err != nil {
			return [4]int32{}, err
		}
		return [4]int32{int32(pixel)}, nil

	case ipc.OpCardinalFocus:
		if len(args) != 1 {
			return [4]int32{}, fmt.Errorf("expected 1 argument (east|south|west|north), got %d", len(args))
		}
		dir, ok := wm.DirectionFromName(args[0])
		if !ok {
			return [4]int32{}, fmt.Errorf("unknown direction %q", args[0])
		}
		return [4]int32{int32(dir)}, nil

	case ipc.OpPointerMove:
		if len(args) != 1 {
			return [4]int32{}, fmt.Errorf("expected 1 argument (move|focus|reset), got %d", len(args))
		}
		switch args[0] {
		case "move":
			return [4]int32{1}, nil
		case "focus":
			return [4]int32{0}, nil
		case "reset":
			return [4]int32{2}, nil
		default:
			return [4]int32{}, fmt.Errorf("unknown pointer mode %q", args[0])
		}

	default:
		if len(args) != 0 {
			return [4]int32{}, fmt.Errorf("takes no arguments")
		}
		return [4]int32{}, nil
	}
}

// moveStepArgs maps a direction word to a move_step delta from the
// configuration, so keybindings can say "move left" without hardcoding
// pixel counts.
func moveStepArgs(word string) ([4]int32, error) {
	cfg, err := config.Load()
	if err != nil {
		return [4]int32{}, err
	}
	step := int32(cfg.MoveStep)
	switch word {
	case "left":
		return [4]int32{-step, 0}, nil
	case "right":
		return [4]int32{step, 0}, nil
	case "up":
		return [4]int32{0, -step}, nil
	case "down":
		return [4]int32{0, step}, nil
	default:
		return [4]int32{}, fmt.Errorf("expected <dx> <dy> or left|right|up|down, got %q", word)
	}
}

// resizeStepArgs is the resize counterpart, using resize_step.
func resizeStepArgs(word string) ([4]int32, error) {
	cfg, err := config.Load()
	if err != nil {
		return [4]int32{}, err
	}
	step := int32(cfg.ResizeStep)
	switch word {
	case "wider":
		return [4]int32{step, 0}, nil
	case "narrower":
		return [4]int32{-step, 0}, nil
	case "taller":
		return [4]int32{0, step}, nil
	case "shorter":
		return [4]int32{0, -step}, nil
	default:
		return [4]int32{}, fmt.Errorf("expected <dw> <dh> or wider|narrower|taller|shorter, got %q", word)
	}
}

func intArgs(args []string, want int) ([4]int32, error) {
	var out [4]int32
	if len(args) != want {
		return out, fmt.Errorf("expected %d arguments, got %d", want, len(args))
	}
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return out, fmt.Errorf("argument %d: %q is not a number", i+1, a)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fernctl <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window commands (act on the focused window):")
	fmt.Fprintln(w, "  move <dx> <dy>               Move by a delta")
	fmt.Fprintln(w, "  move <direction>             Move one step: left|right|up|down")
	fmt.Fprintln(w, "  move-absolute <x> <y>        Move to a position")
	fmt.Fprintln(w, "  resize <dw> <dh>             Resize by a delta")
	fmt.Fprintln(w, "  resize <word>                Resize one step: wider|narrower|taller|shorter")
	fmt.Fprintln(w, "  resize-absolute <w> <h>      Resize to a size")
	fmt.Fprintln(w, "  raise                        Raise to the top")
	fmt.Fprintln(w, "  center                       Center on the monitor")
	fmt.Fprintln(w, "  monocle                      Fill the monitor")
	fmt.Fprintln(w, "  fullscreen                   Toggle fullscreen")
	fmt.Fprintln(w, "  snap-left                    Fill the left half")
	fmt.Fprintln(w, "  snap-right                   Fill the right half")
	fmt.Fprintln(w, "  toggle-decorations           Toggle the frame")
	fmt.Fprintln(w, "  close                        Ask the window to close")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Focus commands:")
	fmt.Fprintln(w, "  cardinal-focus <direction>   Focus east|south|west|north")
	fmt.Fprintln(w, "  cycle-focus                  Focus the next window")
	fmt.Fprintln(w, "  pointer-move <mode>          Pointer drag: move|focus|reset")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Workspace commands (workspaces are numbered from 1):")
	fmt.Fprintln(w, "  switch-workspace <n>         Switch to workspace n")
	fmt.Fprintln(w, "  send-to-workspace <n>        Send the focused window to n")
	fmt.Fprintln(w, "  save-monitor <ws> <mon>      Map a workspace onto a monitor")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Appearance commands:")
	fmt.Fprintln(w, "  focus-color <#rrggbb>        Focused border color")
	fmt.Fprintln(w, "  unfocus-color <#rrggbb>      Unfocused border color")
	fmt.Fprintln(w, "  inner-focus-color <#rrggbb>  Focused inner border color")
	fmt.Fprintln(w, "  inner-unfocus-color <#rrggbb> Unfocused inner border color")
	fmt.Fprintln(w, "  border-width <px>            Outer border width")
	fmt.Fprintln(w, "  inner-border-width <px>      Inner border width")
	fmt.Fprintln(w, "  title-height <px>            Title bar height")
	fmt.Fprintln(w, "  top-gap <px>                 Gap below the top screen edge")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  status                       Show window manager state")
	fmt.Fprintln(w, "  help                         Show this help")
}
