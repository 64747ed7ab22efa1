//go:build windows

package platform

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos = user32.NewProc("SetWindowPos")
)

// MoveWindow moves a Win32 window to (x, y) without resizing it.
func MoveWindow(native any, x, y int) error {
	var hwnd uintptr
	switch ctx := native.(type) {
	case driver.WindowsWindowContext:
		hwnd = ctx.HWND
	case *driver.WindowsWindowContext:
		if ctx != nil {
			hwnd = ctx.HWND
		}
	}
	if hwnd == 0 {
		return ErrUnsupported
	}

	ret, _, err := procSetWindowPos.Call(
		hwnd,
		0,
		uintptr(x),
		uintptr(y),
		0,
		0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}
