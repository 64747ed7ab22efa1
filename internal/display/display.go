// Package display owns the single on-screen image surface.
package display

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// ErrUnsupportedFormat is returned for decodable data that is not PNG, JPEG or GIF.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var supportedFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"gif":  true,
}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	if !supportedFormats[format] {
		return nil, fmt.Errorf("%q is %s: %w", path, format, ErrUnsupportedFormat)
	}
	return img, nil
}

// Surface is the image widget shown in the window. It holds the decoded
// image for as long as it is on screen.
type Surface struct {
	image    *canvas.Image
	dispatch func(func())

	mu      sync.Mutex
	path    string
	current image.Image
}

// NewSurface creates a Surface that applies updates on the fyne main thread.
func NewSurface() *Surface {
	return NewSurfaceWithDispatcher(fyne.DoAndWait)
}

// NewSurfaceWithDispatcher creates a Surface whose canvas updates are run
// through dispatch. dispatch must not return before the update ran.
func NewSurfaceWithDispatcher(dispatch func(func())) *Surface {
	img := &canvas.Image{FillMode: canvas.ImageFillContain}
	return &Surface{image: img, dispatch: dispatch}
}

// CanvasObject returns the object to place in the window content.
func (s *Surface) CanvasObject() fyne.CanvasObject {
	return s.image
}

// Show decodes the file at path and replaces the displayed image with it.
// On error the previous image stays on screen.
func (s *Surface) Show(path string) error {
	img, err := Decode(path)
	if err != nil {
		return err
	}

	s.dispatch(func() {
		s.image.Image = img
		s.image.Refresh()
	})

	s.mu.Lock()
	s.path = path
	s.current = img
	s.mu.Unlock()
	return nil
}

// Current returns the path and image currently on screen.
func (s *Surface) Current() (string, image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path, s.current
}

// Release drops the displayed image and blanks the surface. Call it from
// the UI thread.
func (s *Surface) Release() {
	s.image.Image = nil
	s.image.Refresh()

	s.mu.Lock()
	s.path = ""
	s.current = nil
	s.mu.Unlock()
}
