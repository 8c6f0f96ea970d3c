package notify

import (
	"github.com/modelvision/leadgen/log"
	"github.com/modelvision/leadgen/model"
)

// Notifier reports a stored signup to the administrator. Errors are the
// caller's to swallow: a lead must never be lost because notification failed.
type Notifier interface {
	SignupReceived(signup model.Signup) error
}

type disabledNotifier struct{}

// Disabled stands in when no email account is configured.
func Disabled() Notifier {
	return disabledNotifier{}
}

func (disabledNotifier) SignupReceived(signup model.Signup) error {
	log.Debugf("notify: disabled, skipping notification for %q", signup.Name)
	return nil
}
