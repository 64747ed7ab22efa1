// Package platform moves native windows to an absolute screen position.
package platform

import "errors"

// ErrUnsupported is returned when the windowing system cannot be driven.
var ErrUnsupported = errors.New("window placement not supported on this platform")
