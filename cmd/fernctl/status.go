package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("250")).
				Width(16)
	statusValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))
	statusDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// runStatus reads the manager's exported root window properties and prints
// them. It works against any EWMH window manager, which doubles as a quick
// check that the right one is running.
func runStatus(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		return 2
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		fmt.Fprintf(os.Stderr, "status: failed to connect to X11: %v\n", err)
		return 1
	}
	defer xu.Conn().Close()

	wmName, err := ewmh.GetEwmhWM(xu)
	if err != nil || wmName == "" {
		fmt.Fprintln(os.Stderr, "status: no EWMH window manager detected")
		return 1
	}
	printRow("Window manager", wmName)

	if current, err := ewmh.CurrentDesktopGet(xu); err == nil {
		total, _ := ewmh.NumberOfDesktopsGet(xu)
		printRow("Workspace", fmt.Sprintf("%d of %d", current+1, total))
	}

	clients, err := ewmh.ClientListGet(xu)
	if err != nil {
		clients = nil
	}
	printRow("Managed windows", fmt.Sprintf("%d", len(clients)))

	active, err := ewmh.ActiveWindowGet(xu)
	if err != nil || active == 0 {
		printRow("Focused", statusDimStyle.Render("none"))
		return 0
	}

	title, err := ewmh.WmNameGet(xu, active)
	if err != nil || title == "" {
		title = statusDimStyle.Render(fmt.Sprintf("window %#x", active))
	}
	printRow("Focused", title)
	return 0
}

func printRow(label, value string) {
	fmt.Println(statusLabelStyle.Render(label) + statusValueStyle.Render(value))
}
