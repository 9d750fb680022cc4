package x11

import (
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// installErrorHandler replaces xgbutil's default fatal error handler.
// Window manager traffic races against clients destroying their own
// windows, so errors about windows that no longer exist are routine and
// must not kill the process.
func installErrorHandler(xu *xgbutil.XUtil, log *slog.Logger) {
	xevent.ErrorHandlerSet(xu, func(err xgb.Error) {
		switch err.(type) {
		case xproto.WindowError, xproto.MatchError, xproto.DrawableError, xproto.AccessError:
			log.Debug("ignoring expected X error", "error", err.Error())
		default:
			log.Error("X error", "error", err.Error())
		}
	})
}
