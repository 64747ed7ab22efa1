//go:build !linux && !windows

package platform

// MoveWindow is not available here; the window manager decides placement.
func MoveWindow(native any, x, y int) error {
	return ErrUnsupported
}
