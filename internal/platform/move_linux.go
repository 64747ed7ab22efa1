//go:build linux

package platform

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// MoveWindow moves an X11 window to (x, y). Other native contexts, such as
// Wayland, return ErrUnsupported.
func MoveWindow(native any, x, y int) error {
	var handle uintptr
	switch ctx := native.(type) {
	case driver.X11WindowContext:
		handle = ctx.WindowHandle
	case *driver.X11WindowContext:
		if ctx != nil {
			handle = ctx.WindowHandle
		}
	}
	if handle == 0 {
		return ErrUnsupported
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("failed to connect to X server: %w", err)
	}
	defer conn.Close()

	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	values := []uint32{uint32(int32(x)), uint32(int32(y))}

	err = xproto.ConfigureWindowChecked(conn, xproto.Window(handle), mask, values).Check()
	if err != nil {
		return fmt.Errorf("failed to configure window: %w", err)
	}
	return nil
}
