package mailer

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

// LogMailer writes messages to the log instead of sending them. Meant for
// local development.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l.With("module", "mailer")}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, html string) error {
	m.logger.Info(ctx, "mail not sent (log driver)", "to", to, "subject", subject, "body", html)
	return nil
}
