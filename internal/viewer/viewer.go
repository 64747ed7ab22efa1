package viewer

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver"
	log "github.com/sirupsen/logrus"

	"github.com/mahyarmirrashed/imgwatch/internal/config"
	"github.com/mahyarmirrashed/imgwatch/internal/display"
	"github.com/mahyarmirrashed/imgwatch/internal/notify"
	"github.com/mahyarmirrashed/imgwatch/internal/platform"
	"github.com/mahyarmirrashed/imgwatch/internal/poller"
	"github.com/mahyarmirrashed/imgwatch/internal/scanner"
)

const appID = "io.github.mahyarmirrashed.imgwatch"

// Viewer is the window showing the newest image of the watched directory.
type Viewer struct {
	app     fyne.App
	window  fyne.Window
	config  *config.Config
	surface *display.Surface
	poller  *poller.Poller

	mu  sync.Mutex
	err error
}

// New creates the application window for cfg. Notifications about images
// that fail to display go to notifier.
func New(cfg *config.Config, notifier notify.Notifier) *Viewer {
	return newViewer(app.NewWithID(appID), cfg, notifier, display.NewSurface())
}

func newViewer(a fyne.App, cfg *config.Config, notifier notify.Notifier, surface *display.Surface) *Viewer {
	w := a.NewWindow(cfg.Title)
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	w.SetFixedSize(true)
	w.SetPadded(false)
	w.SetContent(surface.CanvasObject())

	return &Viewer{
		app:     a,
		window:  w,
		config:  cfg,
		surface: surface,
		poller:  poller.New(cfg.Dir, cfg.Delay, scanner.New(nil), surface, notifier),
	}
}

// Run shows the window and polls until the window is closed, a signal
// arrives, or polling fails. The polling error, if any, is returned.
func (v *Viewer) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v.app.Lifecycle().SetOnStarted(func() {
		fyne.Do(v.place)
		go v.poll(ctx)
	})
	v.app.Lifecycle().SetOnStopped(func() {
		cancel()
		v.surface.Release()
	})

	stop := v.handleSignals()
	defer stop()

	log.Infof("Watching %s every %s", v.config.Dir, v.config.Delay)
	v.window.ShowAndRun()
	return v.Err()
}

// Err returns the error that stopped polling.
func (v *Viewer) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// poll runs the poller and quits the app if it fails.
func (v *Viewer) poll(ctx context.Context) {
	err := v.poller.Run(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	v.mu.Lock()
	v.err = err
	v.mu.Unlock()

	log.Errorf("Polling stopped: %v", err)
	fyne.Do(v.app.Quit)
}

// place moves the window to the configured screen position.
func (v *Viewer) place() {
	nw, ok := v.window.(driver.NativeWindow)
	if !ok {
		log.Warnf("Window position %d,%d ignored: no native window", v.config.X, v.config.Y)
		return
	}

	nw.RunNative(func(native any) {
		if err := platform.MoveWindow(native, v.config.X, v.config.Y); err != nil {
			log.Warnf("Could not move window to %d,%d: %v", v.config.X, v.config.Y, err)
		}
	})
}

// handleSignals quits the app on SIGINT or SIGTERM.
func (v *Viewer) handleSignals() func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-signals:
			log.Infof("Received signal: %s, shutting down...", sig)
			fyne.Do(v.app.Quit)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
