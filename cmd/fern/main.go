package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/fern/internal/config"
	"github.com/1broseidon/fern/internal/wm"
	"github.com/1broseidon/fern/internal/x11"
)

var version = "0.3.0"

func main() {
	fs := flag.NewFlagSet("fern", flag.ExitOnError)
	configPath := fs.String("c", "", "path to config file (default: XDG config dir)")
	debug := fs.Bool("debug", false, "enable debug logging")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println("fern", version)
		return
	}

	logger := newLogger(*debug)
	slog.SetDefault(logger)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	conn, err := x11.Connect(logger)
	if err != nil {
		logger.Error("failed to connect to display", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.Setup(cfg.Workspaces); err != nil {
		logger.Error("failed to initialize window manager", "error", err)
		os.Exit(1)
	}

	mgr := wm.New(conn, cfg, logger)
	mgr.UpdateMonitors()
	if err := conn.Bind(mgr); err != nil {
		logger.Error("failed to bind event handlers", "error", err)
		os.Exit(1)
	}

	runAutostart(cfg, logger)

	logger.Info("fern started", "version", version, "workspaces", cfg.Workspaces)
	conn.Run()
}

// newLogger writes human-readable logs when stderr is a terminal and JSON
// otherwise, so a session log redirected to a file stays parseable.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// runAutostart spawns the autostart program in its own session so it is
// not tied to the manager's process group. A missing file is fine.
func runAutostart(cfg *config.Config, logger *slog.Logger) {
	path := cfg.Autostart
	if path == "" {
		p, err := config.DefaultAutostartPath()
		if err != nil {
			return
		}
		path = p
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	cmd := exec.Command(path)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		logger.Warn("failed to run autostart", "path", path, "error", err)
		return
	}
	cmd.Process.Release()
	logger.Info("ran autostart", "path", path)
}
