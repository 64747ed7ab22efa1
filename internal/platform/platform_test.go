package platform

import (
	"errors"
	"testing"
)

func TestMoveWindowUnknownContext(t *testing.T) {
	for _, native := range []any{nil, "not a window", 42} {
		if err := MoveWindow(native, 10, 20); !errors.Is(err, ErrUnsupported) {
			t.Errorf("MoveWindow(%v) = %v, want ErrUnsupported", native, err)
		}
	}
}
