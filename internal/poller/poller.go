package poller

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mahyarmirrashed/imgwatch/internal/notify"
	"github.com/mahyarmirrashed/imgwatch/internal/scanner"
	log "github.com/sirupsen/logrus"
)

// Lister returns the sorted image names of a directory.
type Lister interface {
	ImageFiles(dir string) ([]string, error)
}

// Updater replaces the displayed image with the file at path.
type Updater interface {
	Show(path string) error
}

// Poller rescans a directory and shows the newest image by name.
// It is not safe for concurrent use; Run owns it.
type Poller struct {
	dir      string
	delay    time.Duration
	lister   Lister
	updater  Updater
	notifier notify.Notifier

	lastDisplayed string
	lastFailed    string
}

// New creates a Poller for dir that waits delay between ticks.
func New(dir string, delay time.Duration, lister Lister, updater Updater, notifier notify.Notifier) *Poller {
	return &Poller{
		dir:      dir,
		delay:    delay,
		lister:   lister,
		updater:  updater,
		notifier: notifier,
	}
}

// LastDisplayed returns the path of the image on screen, or "" before the
// first successful update.
func (p *Poller) LastDisplayed() string {
	return p.lastDisplayed
}

// Tick runs one scan and updates the display when the candidate changed.
// Only a scan failure is returned; a failed display update is logged and
// retried on the next tick.
func (p *Poller) Tick() error {
	names, err := p.lister.ImageFiles(p.dir)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	name, ok := scanner.Latest(names)
	if !ok {
		log.Debugf("No images in %s", p.dir)
		return nil
	}

	candidate := filepath.Join(p.dir, name)
	if candidate == p.lastDisplayed {
		log.Debugf("Unchanged: %s", candidate)
		return nil
	}

	if err := p.updater.Show(candidate); err != nil {
		log.Errorf("Could not display %s: %v", filepath.ToSlash(candidate), err)
		// Notify once per failing file, the log still records every retry.
		if candidate != p.lastFailed {
			notify.Send(p.notifier, "imgwatch", fmt.Sprintf("Could not display %s: %v", name, err))
			p.lastFailed = candidate
		}
		return nil
	}

	p.lastDisplayed = candidate
	p.lastFailed = ""
	log.Infof("Displaying %s", filepath.ToSlash(candidate))
	return nil
}

// Run ticks immediately and then once per delay until ctx is cancelled or a
// tick fails. The delay is measured from the end of the previous tick.
func (p *Poller) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		if err := p.Tick(); err != nil {
			return err
		}
		timer.Reset(p.delay)
	}
}
