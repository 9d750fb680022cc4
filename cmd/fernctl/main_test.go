package main

import (
	"testing"

	"github.com/1broseidon/fern/internal/config"
	"github.com/1broseidon/fern/internal/ipc"
)

func TestParseArgs(t *testing.T) {
	// Point config resolution at an empty directory so the step words
	// resolve against the defaults.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	step := int32(config.DefaultMoveStep)
	rstep := int32(config.DefaultResizeStep)

	cases := []struct {
		name    string
		op      ipc.Op
		args    []string
		want    [4]int32
		wantErr bool
	}{
		{"move deltas", ipc.OpWindowMoveRelative, []string{"-40", "25"}, [4]int32{-40, 25}, false},
		{"move left", ipc.OpWindowMoveRelative, []string{"left"}, [4]int32{-step, 0}, false},
		{"move down", ipc.OpWindowMoveRelative, []string{"down"}, [4]int32{0, step}, false},
		{"move bad word", ipc.OpWindowMoveRelative, []string{"sideways"}, [4]int32{}, true},
		{"resize wider", ipc.OpWindowResizeRelative, []string{"wider"}, [4]int32{rstep, 0}, false},
		{"resize shorter", ipc.OpWindowResizeRelative, []string{"shorter"}, [4]int32{0, -rstep}, false},
		{"resize deltas", ipc.OpWindowResizeRelative, []string{"10", "-20"}, [4]int32{10, -20}, false},
		{"absolute needs two", ipc.OpWindowMoveAbsolute, []string{"50"}, [4]int32{}, true},
		{"color", ipc.OpFocusColor, []string{"#5e81ac"}, [4]int32{0x5e81ac}, false},
		{"bad color", ipc.OpFocusColor, []string{"blue"}, [4]int32{}, true},
		{"direction", ipc.OpCardinalFocus, []string{"south"}, [4]int32{1}, false},
		{"bad direction", ipc.OpCardinalFocus, []string{"upwards"}, [4]int32{}, true},
		{"pointer move", ipc.OpPointerMove, []string{"move"}, [4]int32{1}, false},
		{"pointer focus", ipc.OpPointerMove, []string{"focus"}, [4]int32{0}, false},
		{"pointer reset", ipc.OpPointerMove, []string{"reset"}, [4]int32{2}, false},
		{"workspace number", ipc.OpSwitchWorkspace, []string{"3"}, [4]int32{3}, false},
		{"no args allowed", ipc.OpWindowRaise, []string{"now"}, [4]int32{}, true},
		{"not a number", ipc.OpBorderWidth, []string{"thick"}, [4]int32{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseArgs(tc.op, tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
