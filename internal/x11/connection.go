// Package x11 is the concrete display layer. It owns the server
// connection, claims window manager duties on the root window, implements
// the surface the engine draws on, and routes X events into the engine.
package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// supportedAtoms is the EWMH surface advertised on the root window.
var supportedAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_NAME",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_CURRENT_DESKTOP",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_MENU",
}

// Conn manages the X11 connection and the root window.
type Conn struct {
	xu    *xgbutil.XUtil
	root  xproto.Window
	check *xwindow.Window
	log   *slog.Logger
}

// Connect establishes a connection to the X server.
func Connect(logger *slog.Logger) (*Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &Conn{
		xu:   xu,
		root: xu.RootWin(),
		log:  logger,
	}, nil
}

// Setup claims substructure redirect on the root window and publishes the
// EWMH bookkeeping properties. Only one client may hold the redirect, so
// this fails while another window manager is running.
func (c *Conn) Setup(workspaces int) error {
	root := xwindow.New(c.xu, c.root)
	err := root.Listen(
		xproto.EventMaskSubstructureRedirect,
		xproto.EventMaskSubstructureNotify,
		xproto.EventMaskStructureNotify,
	)
	if err != nil {
		return fmt.Errorf("another window manager is already running: %w", err)
	}

	installErrorHandler(c.xu, c.log)

	check, err := xwindow.Create(c.xu, c.root)
	if err != nil {
		return fmt.Errorf("failed to create supporting check window: %w", err)
	}
	c.check = check

	c.should(ewmh.SupportingWmCheckSet(c.xu, c.root, check.Id))
	c.should(ewmh.SupportingWmCheckSet(c.xu, check.Id, check.Id))
	c.should(ewmh.WmNameSet(c.xu, check.Id, "fern"))
	c.should(ewmh.SupportedSet(c.xu, supportedAtoms))
	c.should(ewmh.NumberOfDesktopsSet(c.xu, uint(workspaces)))
	c.should(ewmh.CurrentDesktopSet(c.xu, 0))

	c.log.Info("claimed window manager duties", "root", c.root, "check", check.Id)
	return nil
}

// Run enters the X event loop and blocks until the connection drops or
// xevent.Quit runs.
func (c *Conn) Run() {
	xevent.Main(c.xu)
}

// Close disconnects from the X server.
func (c *Conn) Close() {
	c.xu.Conn().Close()
}

// XUtil exposes the underlying connection for callers that speak xgbutil
// directly.
func (c *Conn) XUtil() *xgbutil.XUtil {
	return c.xu
}

// should logs a failed property update and moves on. Property exports are
// bookkeeping; losing one is not worth tearing the manager down.
func (c *Conn) should(err error) {
	if err != nil {
		c.log.Warn("property update failed", "error", err)
	}
}
