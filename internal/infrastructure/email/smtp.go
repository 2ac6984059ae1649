// Package email delivers assignment notifications. SMTPMailer does real
// delivery; LogMailer is the dev fallback when SMTP is unconfigured.
package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
)

const subject = "🎁 Your Secret Santa assignment is here!"

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends assignment emails over SMTP.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds a mailer from config.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// SendAssignment delivers one assignment email to the giver.
func (m *SMTPMailer) SendAssignment(ctx context.Context, msg ports.AssignmentEmail) error {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return err
	}
	if err := mm.To(msg.GiverEmail); err != nil {
		return err
	}
	mm.Subject(subject)
	mm.SetBodyString(mail.TypeTextPlain, Body(msg))
	return m.client.DialAndSendWithContext(ctx, mm)
}

// Body renders the plain-text assignment message.
func Body(msg ports.AssignmentEmail) string {
	wishList := msg.ReceiverWishList
	if wishList == "" {
		wishList = "They haven't shared a wish list"
	}
	exchangeDate := msg.ExchangeDate
	if exchangeDate == "" {
		exchangeDate = "to be decided"
	}
	return fmt.Sprintf(`Hi %s,

Your Secret Santa assignment for %q is in!

You are gifting: %s
Wish list: %s

Spending cap: %s
Exchange date: %s

Keep it secret! 🎅
`, msg.GiverName, msg.GameName, msg.ReceiverName, wishList, msg.MaxPrice, exchangeDate)
}

var _ ports.Mailer = (*SMTPMailer)(nil)
