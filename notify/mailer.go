package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/modelvision/leadgen/config"
	"github.com/modelvision/leadgen/log"
	"github.com/modelvision/leadgen/model"
)

type mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// NewMailer sends one transactional email per stored signup, addressed to
// the fixed administrative recipient, with Reply-To set to the applicant.
func NewMailer(cfg config.Config) Notifier {
	return &mailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword),
		from:       cfg.EmailUser,
		adminEmail: cfg.AdminEmail,
	}
}

func (m *mailer) SignupReceived(signup model.Signup) error {
	// verify connectivity before building the message
	sender, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp connection failed: %w", err)
	}
	defer sender.Close()

	body, err := Body(signup)
	if err != nil {
		return fmt.Errorf("rendering notification body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, signup.Name))
	msg.SetHeader("Reply-To", signup.Email)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", Subject(signup))
	msg.SetBody("text/html", body)

	err = gomail.Send(sender, msg)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	log.Debugf("notify: sent notification for signup %d", signup.ID)
	return nil
}
