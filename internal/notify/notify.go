package notify

import (
	"github.com/gen2brain/beeep"
	log "github.com/sirupsen/logrus"
)

// Notifier delivers a short message to the operator.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the desktop notification service.
type Desktop struct {
	Enabled bool
}

// Notify shows a desktop notification if enabled.
func (d *Desktop) Notify(title, message string) error {
	if !d.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// Send notifies through n and logs a warning if that fails.
func Send(n Notifier, title, message string) {
	if n == nil {
		return
	}
	if err := n.Notify(title, message); err != nil {
		log.Warnf("Notification failed: %v", err)
	}
}
