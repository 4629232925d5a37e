// Package totp issues and checks RFC 6238 codes through
// github.com/pquerna/otp with a fixed configuration and a clock that
// tests can replace.
package totp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	pqtotp "github.com/pquerna/otp/totp"
)

const secretSize = 20

var ErrInvalidSecret = errors.New("invalid totp secret")

// Config tunes code generation. Zero fields take RFC defaults.
type Config struct {
	Issuer string
	Period int
	Digits int
	Skew   int
}

type Verifier struct {
	config Config
	now    func() time.Time
}

func New(cfg Config) *Verifier {
	if cfg.Issuer == "" {
		cfg.Issuer = "sessionkeeper"
	}
	if cfg.Period <= 0 {
		cfg.Period = 30
	}
	if cfg.Digits <= 0 {
		cfg.Digits = 6
	}
	if cfg.Skew < 0 {
		cfg.Skew = 0
	}
	return &Verifier{config: cfg, now: time.Now}
}

// WithClock returns a copy of the verifier that reads time from now.
func (v *Verifier) WithClock(now func() time.Time) *Verifier {
	c := *v
	c.now = now
	return &c
}

func (v *Verifier) validateOpts() pqtotp.ValidateOpts {
	return pqtotp.ValidateOpts{
		Period:    uint(v.config.Period),
		Skew:      uint(v.config.Skew),
		Digits:    otp.Digits(v.config.Digits),
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GenerateSecret returns a new base32 secret and its otpauth:// provisioning
// URI for account.
func (v *Verifier) GenerateSecret(account string) (string, string, error) {
	key, err := pqtotp.Generate(pqtotp.GenerateOpts{
		Issuer:      v.config.Issuer,
		AccountName: account,
		Period:      uint(v.config.Period),
		SecretSize:  secretSize,
		Digits:      otp.Digits(v.config.Digits),
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// Verify checks code against secret at the current time.
func (v *Verifier) Verify(secret, code string) bool {
	_, ok := v.MatchAt(secret, code, v.now())
	return ok
}

// VerifyAt checks code against secret at t.
func (v *Verifier) VerifyAt(secret, code string, t time.Time) bool {
	_, ok := v.MatchAt(secret, code, t)
	return ok
}

// Match is Verify that also returns the time step the code belongs to.
func (v *Verifier) Match(secret, code string) (int64, bool) {
	return v.MatchAt(secret, code, v.now())
}

// MatchAt accepts codes from up to Skew steps before or after t and
// returns the matching step.
func (v *Verifier) MatchAt(secret, code string, t time.Time) (int64, bool) {
	if strings.TrimSpace(secret) == "" {
		return 0, false
	}

	opts := hotp.ValidateOpts{Digits: otp.Digits(v.config.Digits), Algorithm: otp.AlgorithmSHA1}
	base := t.Unix() / int64(v.config.Period)
	for step := base - int64(v.config.Skew); step <= base+int64(v.config.Skew); step++ {
		if step < 0 {
			continue
		}
		ok, err := hotp.ValidateCustom(code, uint64(step), secret, opts)
		if err != nil {
			return 0, false
		}
		if ok {
			return step, true
		}
	}
	return 0, false
}

// CodeAt returns the code for secret at t.
func (v *Verifier) CodeAt(secret string, t time.Time) (string, error) {
	code, err := pqtotp.GenerateCodeCustom(secret, t, v.validateOpts())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	return code, nil
}
