package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/mailer"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/resettokens"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	ForgotMessage = "Mail sent, check your email!"
	ResetMessage  = "Success, new password updated"

	// resetTokenBytes of crypto/rand entropy, hex-encoded for the link.
	resetTokenBytes = 32
)

type ResetConfig struct {
	TTL     time.Duration
	URLBase string
}

// ResetService issues and redeems single-use password reset tokens.
type ResetService struct {
	tx      dbx.Transactor
	repos   repomanager.RepositoryManager
	hasher  PasswordHasher
	mailer  mailer.Mailer
	limiter AttemptLimiter
	logger  logging.Logger
	tracer  trace.Tracer
	now     func() time.Time
	cfg     ResetConfig
}

func NewResetService(
	tx dbx.Transactor,
	repos repomanager.RepositoryManager,
	hasher PasswordHasher,
	m mailer.Mailer,
	limiter AttemptLimiter,
	logger logging.Logger,
	cfg ResetConfig,
	opts ...Option,
) *ResetService {
	o := buildOptions(opts)
	if limiter == nil {
		limiter = (*ratelimit.Limiter)(nil)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &ResetService{
		tx:      tx,
		repos:   repos,
		hasher:  hasher,
		mailer:  m,
		limiter: limiter,
		logger:  logger.With("module", "reset_service"),
		tracer:  o.tracer,
		now:     o.now,
		cfg:     cfg,
	}
}

// ForgotPassword stores a reset token for the address and mails the link.
// The account table is never consulted, so known and unknown addresses get
// the same answer. Over the attempt budget nothing is sent, but the answer
// is still the same.
func (s *ResetService) ForgotPassword(ctx context.Context, in ForgotInput) (_ string, err error) {
	ctx, span := s.tracer.Start(ctx, "ResetService.ForgotPassword")
	defer func() { endSpan(span, err) }()

	in.Email = common.NormalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return "", err
	}

	if err := s.limiter.Allow(ctx, ratelimit.ScopeForgot, in.Email); err != nil {
		if errors.Is(err, common.ErrRateLimited) {
			s.logger.Warn(ctx, "reset request throttled")
			return ForgotMessage, nil
		}
		return "", err
	}

	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return "", common.Dependency("generate reset token", err)
	}

	now := s.now()
	err = s.repos.ResetTokens(s.tx.Conn()).Create(ctx, &models.ResetToken{
		ID:        uuid.NewString(),
		Email:     in.Email,
		TokenHash: common.HashToken(token),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	})
	if err != nil {
		return "", common.Classify("store reset token", err)
	}

	msg, err := mailer.ResetMessage(s.link(token))
	if err != nil {
		return "", common.Dependency("render reset mail", err)
	}
	if err := s.mailer.Send(ctx, in.Email, msg.Subject, msg.HTML); err != nil {
		return "", common.Dependency("send reset mail", err)
	}

	s.logger.Info(ctx, "Reset mail sent")
	return ForgotMessage, nil
}

// ResetPassword redeems token and replaces the password of the account it
// was issued for. All refresh tokens of that account are revoked.
func (s *ResetService) ResetPassword(ctx context.Context, in ResetInput) (_ string, err error) {
	ctx, span := s.tracer.Start(ctx, "ResetService.ResetPassword")
	defer func() { endSpan(span, err) }()

	in.Token = strings.TrimSpace(in.Token)
	if err := validate(in); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", common.Dependency("hash password", err)
	}

	tokenHash := common.HashToken(in.Token)
	now := s.now()

	var userID string
	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		resets := s.repos.ResetTokens(tx)
		users := s.repos.Users(tx)

		grant, err := resets.Redeem(ctx, tokenHash, now)
		if errors.Is(err, common.ErrorNotFound) {
			return s.classifyUnredeemable(ctx, resets, tokenHash, now)
		}
		if err != nil {
			return err
		}

		user, err := users.GetByEmail(ctx, grant.Email)
		if err != nil {
			return err
		}
		if err := users.LockForUpdate(ctx, user.ID); err != nil {
			return err
		}
		if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
		if _, err := s.repos.RefreshTokens(tx).RevokeAllForUser(ctx, user.ID, now); err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return "", common.Classify("reset password", err)
	}

	s.logger.Info(ctx, "Password reset", "user_id", userID)
	return ResetMessage, nil
}

// classifyUnredeemable tells an expired grant apart from an unknown or
// already used one.
func (s *ResetService) classifyUnredeemable(ctx context.Context, resets resettokens.Repository, tokenHash string, now time.Time) error {
	stored, err := resets.FindByHash(ctx, tokenHash)
	if err != nil {
		return err
	}
	if !stored.Used() && stored.Expired(now) {
		return common.ErrExpired
	}
	return common.ErrorNotFound
}

func (s *ResetService) link(token string) string {
	return strings.TrimRight(s.cfg.URLBase, "/") + "/" + token
}
