package ipc

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Send delivers one command to the running window manager over a fresh X
// connection. The manager listens for MessageType client messages on the
// root window; there is no reply channel, a malformed or unknown command
// is simply dropped on the other side.
func Send(msg Message) error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("failed to connect to X11: %w", err)
	}
	defer xu.Conn().Close()

	return SendTo(xu, msg)
}

// SendTo delivers one command using an existing connection.
func SendTo(xu *xgbutil.XUtil, msg Message) error {
	typ, err := xprop.Atm(xu, MessageType)
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", MessageType, err)
	}

	data := msg.Encode()
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xu.RootWin(),
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}

	return xproto.SendEventChecked(
		xu.Conn(),
		false,
		xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
