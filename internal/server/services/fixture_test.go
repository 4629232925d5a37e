package services

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/password"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/totp"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type sentMail struct {
	to, subject, html string
}

type captureMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *captureMailer) Send(ctx context.Context, to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

var resetLinkRe = regexp.MustCompile(`/reset/([0-9a-f]{64})`)

func (m *captureMailer) lastToken(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no mail sent")
	match := resetLinkRe.FindStringSubmatch(m.sent[len(m.sent)-1].html)
	require.Len(t, match, 2, "reset link not found in mail body")
	return match[1]
}

type fixture struct {
	clock    *fakeClock
	repos    *repomanager.MemoryRepositoryManager
	totp     *totp.Verifier
	mail     *captureMailer
	sessions *SessionService
	resets   *ResetService
}

func newFixture(t *testing.T, limiter AttemptLimiter) *fixture {
	t.Helper()

	f := &fixture{
		clock: newFakeClock(),
		repos: repomanager.NewMemoryRepositoryManager(),
		mail:  &captureMailer{},
	}
	f.totp = totp.New(totp.Config{Issuer: "Test", Skew: 1}).WithClock(f.clock.Now)

	tx := dbx.NewLockingTransactor()
	issuer := auth.NewIssuer([]byte("test-secret"), 30*time.Second, 7*24*time.Hour, 0).WithClock(f.clock.Now)
	hasher := password.NewHasher(4)
	logger := logging.Discard()

	f.sessions = NewSessionService(tx, f.repos, issuer, hasher, f.totp, limiter, logger, WithClock(f.clock.Now))
	f.resets = NewResetService(tx, f.repos, hasher, f.mail, limiter, logger,
		ResetConfig{TTL: time.Hour, URLBase: "http://localhost:3000/reset"}, WithClock(f.clock.Now))
	return f
}

func (f *fixture) register(t *testing.T, email, pw string) string {
	t.Helper()
	u, err := f.sessions.Register(context.Background(), RegisterInput{
		FirstName: "Alice", LastName: "Liddell", Email: email, Password: pw, PasswordConfirm: pw,
	})
	require.NoError(t, err)
	return u.ID
}

func (f *fixture) code(t *testing.T, secret string) string {
	t.Helper()
	code, err := f.totp.CodeAt(secret, f.clock.Now())
	require.NoError(t, err)
	return code
}

// signIn runs login and the two-factor step, enrolling when needed, and
// returns the enrolled secret with the issued pair. The clock moves one
// period first so every call presents a code from a fresh step.
func (f *fixture) signIn(t *testing.T, email, pw, secret string) (string, *TokenPair) {
	t.Helper()
	ctx := context.Background()
	f.clock.Advance(30 * time.Second)

	res, err := f.sessions.Login(ctx, LoginInput{Email: email, Password: pw})
	require.NoError(t, err)
	if res.Enrolling() {
		secret = res.Secret
	}

	pair, err := f.sessions.CompleteTwoFactor(ctx, TwoFactorInput{UserID: res.UserID, Code: f.code(t, secret), Secret: res.Secret})
	require.NoError(t, err)
	return secret, pair
}

var errBoom = errors.New("boom")
