package x11

import (
	"github.com/BurntSushi/xgbutil/xinerama"

	"github.com/1broseidon/fern/internal/wm"
)

// Monitors enumerates the physical heads via Xinerama. When the extension
// is missing or reports nothing the whole root geometry stands in as a
// single monitor. Mirrored heads come back as duplicate entries and are
// kept that way.
func (c *Conn) Monitors() []wm.Monitor {
	heads, err := xinerama.PhysicalHeads(c.xu)
	if err != nil || len(heads) == 0 {
		w, h := c.RootDimensions()
		return []wm.Monitor{{Width: w, Height: h}}
	}

	mons := make([]wm.Monitor, 0, len(heads))
	for i, head := range heads {
		mons = append(mons, wm.Monitor{
			X:      head.X(),
			Y:      head.Y(),
			Width:  head.Width(),
			Height: head.Height(),
			Screen: i,
		})
	}
	return mons
}
