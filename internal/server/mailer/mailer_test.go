package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetMessage(t *testing.T) {
	msg, err := ResetMessage("http://localhost:3000/reset/abc123")
	require.NoError(t, err)
	assert.Equal(t, "Reset your password", msg.Subject)
	assert.Contains(t, msg.HTML, `href="http://localhost:3000/reset/abc123"`)
}

func TestResetMessage_EscapesLink(t *testing.T) {
	msg, err := ResetMessage(`javascript:alert("x")`)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "javascript:")
}

type fakeSES struct {
	in  *sesv2.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(ctx context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	return &sesv2.SendEmailOutput{}, f.err
}

func TestSESMailer_Send(t *testing.T) {
	f := &fakeSES{}
	m := &SESMailer{client: f, from: "no-reply@example.com"}

	require.NoError(t, m.Send(context.Background(), "alice@example.com", "Reset your password", "<p>x</p>"))
	require.NotNil(t, f.in)
	assert.Equal(t, "no-reply@example.com", aws.ToString(f.in.FromEmailAddress))
	assert.Equal(t, []string{"alice@example.com"}, f.in.Destination.ToAddresses)
	assert.Equal(t, "Reset your password", aws.ToString(f.in.Content.Simple.Subject.Data))
	assert.Equal(t, "<p>x</p>", aws.ToString(f.in.Content.Simple.Body.Html.Data))

	f.err = errors.New("throttled")
	require.ErrorContains(t, m.Send(context.Background(), "a@b.c", "s", "b"), "ses send: throttled")
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, NewLogMailer(l).Send(context.Background(), "alice@example.com", "subj", "body"))
	assert.Contains(t, buf.String(), "to=alice@example.com")
	assert.Contains(t, buf.String(), "module=mailer")
}

func TestNew_Drivers(t *testing.T) {
	ctx := context.Background()
	l := logging.Discard()

	m, err := New(ctx, Settings{Driver: DriverSMTP, SMTPAddr: "localhost:1025", From: "f@x"}, l)
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	m, err = New(ctx, Settings{Driver: DriverLog}, l)
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)

	m, err = New(ctx, Settings{Driver: DriverSES, From: "f@x", SES: SESConfig{Region: "eu-west-1", AccessKeyID: "AKIA", SecretAccessKey: "s"}}, l)
	require.NoError(t, err)
	assert.IsType(t, &SESMailer{}, m)

	_, err = New(ctx, Settings{Driver: "pigeon"}, l)
	require.Error(t, err)
}
