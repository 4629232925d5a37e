package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

const (
	DriverSMTP = "smtp"
	DriverSES  = "ses"
	DriverLog  = "log"
)

// Settings is the subset of server configuration the mailer needs.
type Settings struct {
	Driver       string
	From         string
	SMTPAddr     string
	SMTPUsername string
	SMTPPassword string
	SMTPTimeout  time.Duration
	SES          SESConfig
}

// New builds the mailer selected by s.Driver.
func New(ctx context.Context, s Settings, l logging.Logger) (Mailer, error) {
	switch s.Driver {
	case DriverSMTP, "":
		return NewSMTPMailer(SMTPConfig{
			Addr:     s.SMTPAddr,
			From:     s.From,
			Username: s.SMTPUsername,
			Password: s.SMTPPassword,
			Timeout:  s.SMTPTimeout,
		})
	case DriverSES:
		return NewSESMailer(ctx, s.SES, s.From)
	case DriverLog:
		return NewLogMailer(l), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", s.Driver)
	}
}
