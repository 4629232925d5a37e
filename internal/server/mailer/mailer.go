// Package mailer delivers transactional email. The services only see the
// Mailer interface; SMTP, Amazon SES and a logging sink implement it.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Message is a rendered email ready for delivery.
type Message struct {
	Subject string
	HTML    string
}

const ResetSubject = "Reset your password"

var resetTemplate = template.Must(template.New("reset").Parse(
	`<p>Click <a href="{{.}}">here</a> to reset your password!</p>
<p>If you did not ask for a new password you can ignore this message.</p>`))

// ResetMessage renders the password reset email pointing at link.
func ResetMessage(link string) (*Message, error) {
	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, link); err != nil {
		return nil, fmt.Errorf("render reset email: %w", err)
	}
	return &Message{Subject: ResetSubject, HTML: buf.String()}, nil
}
