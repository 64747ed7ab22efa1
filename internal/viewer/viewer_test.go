package viewer

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/mahyarmirrashed/imgwatch/internal/config"
	"github.com/mahyarmirrashed/imgwatch/internal/display"
)

func inline(fn func()) { fn() }

func testConfig(dir string) *config.Config {
	return &config.Config{
		Dir:    dir,
		Delay:  5 * time.Millisecond,
		Width:  320,
		Height: 240,
		X:      10,
		Y:      20,
		Title:  "latest frame",
	}
}

func TestNewWindow(t *testing.T) {
	a := test.NewTempApp(t)
	surface := display.NewSurfaceWithDispatcher(inline)
	v := newViewer(a, testConfig(t.TempDir()), nil, surface)

	if got := v.window.Title(); got != "latest frame" {
		t.Errorf("Title = %q", got)
	}
	if !v.window.FixedSize() {
		t.Error("window should have a fixed size")
	}
	if v.window.Content() != surface.CanvasObject() {
		t.Error("window content is not the image surface")
	}
}

func TestPlaceWithoutNativeWindow(t *testing.T) {
	a := test.NewTempApp(t)
	v := newViewer(a, testConfig(t.TempDir()), nil, display.NewSurfaceWithDispatcher(inline))

	// Test windows have no native handle; placement only logs.
	v.place()
}

func TestPollShowsNewestImage(t *testing.T) {
	a := test.NewTempApp(t)
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	for _, name := range []string{"frame_001.png", "frame_002.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}

	surface := display.NewSurfaceWithDispatcher(inline)
	v := newViewer(a, testConfig(dir), nil, surface)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		v.poll(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if path, _ := surface.Current(); path == filepath.Join(dir, "frame_002.png") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("newest frame was not displayed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-done
	if err := v.Err(); err != nil {
		t.Errorf("Err after cancel = %v", err)
	}
}

func TestPollRecordsScanFailure(t *testing.T) {
	a := test.NewTempApp(t)
	v := newViewer(a, testConfig(filepath.Join(t.TempDir(), "missing")), nil, display.NewSurfaceWithDispatcher(inline))

	v.poll(context.Background())

	if v.Err() == nil {
		t.Fatal("expected scan failure to be recorded")
	}
}
