// Package services contains the server-side business logic: the session
// lifecycle (register, login, two-factor, refresh, logout) and the password
// reset flow. Transports call into it with validated inputs and translate
// the returned sentinel errors from internal/common.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const LogoutMessage = "Logged out"

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// LoginResult is returned by a successful password check. Secret and
// EnrollmentURI are only set when the user still has to enrol a TOTP
// authenticator.
type LoginResult struct {
	UserID        string
	Secret        string
	EnrollmentURI string
}

// Enrolling reports whether the result carries a fresh TOTP secret.
func (r *LoginResult) Enrolling() bool {
	return r.Secret != ""
}

// SessionService drives the authentication state machine. Two-factor is
// mandatory: Login never issues tokens, CompleteTwoFactor does.
//
// Refresh tokens rotate on every use. Presenting a token that was already
// rotated revokes its whole family.
type SessionService struct {
	tx      dbx.Transactor
	repos   repomanager.RepositoryManager
	issuer  *auth.Issuer
	hasher  PasswordHasher
	totp    TwoFactor
	limiter AttemptLimiter
	logger  logging.Logger
	tracer  trace.Tracer
	now     func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewSessionService(
	tx dbx.Transactor,
	repos repomanager.RepositoryManager,
	issuer *auth.Issuer,
	hasher PasswordHasher,
	totp TwoFactor,
	limiter AttemptLimiter,
	logger logging.Logger,
	opts ...Option,
) *SessionService {
	o := buildOptions(opts)
	if limiter == nil {
		limiter = (*ratelimit.Limiter)(nil)
	}
	return &SessionService{
		tx:      tx,
		repos:   repos,
		issuer:  issuer,
		hasher:  hasher,
		totp:    totp,
		limiter: limiter,
		logger:  logger.With("module", "session_service"),
		tracer:  o.tracer,
		now:     o.now,
	}
}

// Register creates a user and returns it without credentials.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (_ *models.UserPublic, err error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.Register")
	defer func() { endSpan(span, err) }()

	in.Email = common.NormalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, common.Dependency("hash password", err)
	}

	user, err := s.repos.Users(s.tx.Conn()).Create(ctx, &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return nil, common.Classify("create user", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return user.Public(), nil
}

// Login checks the password. An unknown email yields common.ErrorNotFound
// after the same amount of hashing work as a wrong password.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (_ *LoginResult, err error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.Login")
	defer func() { endSpan(span, err) }()

	in.Email = common.NormalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return nil, err
	}

	if err := s.limiter.Allow(ctx, ratelimit.ScopeLogin, in.Email); err != nil {
		return nil, err
	}

	user, err := s.repos.Users(s.tx.Conn()).GetByEmail(ctx, in.Email)
	if errors.Is(err, common.ErrorNotFound) {
		_, _ = s.hasher.Verify(in.Password, s.dummy())
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, common.Classify("find user", err)
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, common.Dependency("verify password", err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	s.resetAttempts(ctx, ratelimit.ScopeLogin, in.Email)

	if user.HasTwoFactor() {
		return &LoginResult{UserID: user.ID}, nil
	}

	secret, uri, err := s.totp.GenerateSecret(user.Email)
	if err != nil {
		return nil, common.Dependency("generate totp secret", err)
	}
	return &LoginResult{UserID: user.ID, Secret: secret, EnrollmentURI: uri}, nil
}

// CompleteTwoFactor verifies code against the stored secret, or against
// in.Secret when none is stored yet, and issues a token pair in a new
// family. The first successful verification enrols in.Secret.
func (s *SessionService) CompleteTwoFactor(ctx context.Context, in TwoFactorInput) (_ *TokenPair, err error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.CompleteTwoFactor")
	defer func() { endSpan(span, err) }()

	if err := validate(in); err != nil {
		return nil, err
	}

	if err := s.limiter.Allow(ctx, ratelimit.ScopeTwoFactor, in.UserID); err != nil {
		return nil, err
	}

	var pair *TokenPair
	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repos.Users(tx)

		if err := users.LockForUpdate(ctx, in.UserID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidCredentials
			}
			return err
		}
		user, err := users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		enrolling := !user.HasTwoFactor()
		secret := user.TFASecret
		if enrolling {
			secret = in.Secret
		}
		step, ok := s.totp.Match(secret, in.Code)
		if !ok {
			return common.ErrInvalidCredentials
		}

		if enrolling {
			enrolled, err := users.EnrollTwoFactor(ctx, user.ID, in.Secret)
			if err != nil {
				return err
			}
			if !enrolled {
				// someone else enrolled first; their secret is authoritative
				if user, err = users.GetByID(ctx, in.UserID); err != nil {
					return err
				}
				if step, ok = s.totp.Match(user.TFASecret, in.Code); !ok {
					return common.ErrInvalidCredentials
				}
			} else {
				s.logger.Info(ctx, "Two-factor enrolled", "user_id", user.ID)
			}
		}

		// each time step opens at most one session
		fresh, err := users.UseTwoFactorStep(ctx, user.ID, step)
		if err != nil {
			return err
		}
		if !fresh {
			return common.ErrInvalidCredentials
		}

		pair, err = s.issuePair(ctx, tx, user.ID, uuid.NewString())
		return err
	})
	if err != nil {
		return nil, common.Classify("complete two-factor", err)
	}

	s.resetAttempts(ctx, ratelimit.ScopeTwoFactor, in.UserID)
	s.logger.Info(ctx, "Logged in", "user_id", in.UserID)
	return pair, nil
}

// Refresh exchanges an active refresh token for a new pair in the same
// family; the presented token is revoked in the same transaction.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (_ *TokenPair, err error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.Refresh")
	defer func() { endSpan(span, err) }()

	claims, err := s.verifyRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	hash := common.HashToken(refreshToken)
	now := s.now()
	reused := false

	var pair *TokenPair
	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.repos.RefreshTokens(tx)

		if err := s.repos.Users(tx).LockForUpdate(ctx, claims.Subject); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUnauthenticated
			}
			return err
		}

		next, err := s.issuer.IssueRefresh(claims.Subject, claims.FamilyID)
		if err != nil {
			return common.Dependency("sign refresh token", err)
		}

		prev, err := tokens.Rotate(ctx, hash, next.ID, now)
		if errors.Is(err, common.ErrorNotFound) {
			stored, ferr := tokens.FindByHash(ctx, hash)
			switch {
			case errors.Is(ferr, common.ErrorNotFound):
				return common.ErrUnauthenticated
			case ferr != nil:
				return ferr
			case stored.Rotated():
				n, err := tokens.RevokeFamily(ctx, stored.FamilyID, now)
				if err != nil {
					return err
				}
				s.logger.Warn(ctx, "Refresh token reuse, family revoked",
					"user_id", stored.UserID, "family_id", stored.FamilyID, "revoked", n)
				reused = true
				return nil
			default:
				return common.ErrUnauthenticated
			}
		}
		if err != nil {
			return err
		}
		if prev.UserID != claims.Subject || prev.FamilyID != claims.FamilyID {
			return common.ErrUnauthenticated
		}

		pair, err = s.storePair(ctx, tx, claims.Subject, next)
		return err
	})
	if err != nil {
		return nil, common.Classify("refresh", err)
	}
	if reused {
		return nil, common.ErrUnauthenticated
	}
	return pair, nil
}

// Logout revokes every refresh token of the token's owner.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) (_ string, err error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.Logout")
	defer func() { endSpan(span, err) }()

	claims, err := s.verifyRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	var revoked int64
	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Users(tx).LockForUpdate(ctx, claims.Subject); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUnauthenticated
			}
			return err
		}
		var err error
		revoked, err = s.repos.RefreshTokens(tx).RevokeAllForUser(ctx, claims.Subject, s.now())
		return err
	})
	if err != nil {
		return "", common.Classify("logout", err)
	}

	s.logger.Info(ctx, "Logged out", "user_id", claims.Subject, "revoked", revoked)
	return LogoutMessage, nil
}

// Authenticate verifies an access token and returns its user id.
func (s *SessionService) Authenticate(accessToken string) (string, error) {
	if accessToken == "" {
		return "", common.ErrUnauthenticated
	}
	userID, err := s.issuer.VerifyAccess(accessToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}
	return userID, nil
}

// CurrentUser resolves the owner of an access token.
func (s *SessionService) CurrentUser(ctx context.Context, accessToken string) (*models.UserPublic, error) {
	userID, err := s.Authenticate(accessToken)
	if err != nil {
		return nil, err
	}
	return s.User(ctx, userID)
}

// User loads an already authenticated user. A user that vanished after
// its token was issued is treated as unauthenticated.
func (s *SessionService) User(ctx context.Context, userID string) (_ *models.UserPublic, err error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.User")
	defer func() { endSpan(span, err) }()

	user, err := s.repos.Users(s.tx.Conn()).GetByID(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrUnauthenticated
	}
	if err != nil {
		return nil, common.Classify("find user", err)
	}
	return user.Public(), nil
}

// --- helpers below ---

func (s *SessionService) verifyRefresh(ctx context.Context, refreshToken string) (*auth.Claims, error) {
	if refreshToken == "" {
		return nil, common.ErrUnauthenticated
	}
	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		s.logger.Debug(ctx, "refresh token rejected", "error", err.Error())
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}
	return claims, nil
}

func (s *SessionService) issuePair(ctx context.Context, tx dbx.DBTX, userID, familyID string) (*TokenPair, error) {
	refresh, err := s.issuer.IssueRefresh(userID, familyID)
	if err != nil {
		return nil, common.Dependency("sign refresh token", err)
	}
	return s.storePair(ctx, tx, userID, refresh)
}

// storePair persists refresh and mints the matching access token.
func (s *SessionService) storePair(ctx context.Context, tx dbx.DBTX, userID string, refresh *auth.IssuedRefresh) (*TokenPair, error) {
	access, err := s.issuer.IssueAccess(userID)
	if err != nil {
		return nil, common.Dependency("sign access token", err)
	}

	err = s.repos.RefreshTokens(tx).Create(ctx, &models.RefreshToken{
		ID:        refresh.ID,
		UserID:    userID,
		FamilyID:  refresh.FamilyID,
		TokenHash: common.HashToken(refresh.Token),
		IssuedAt:  refresh.IssuedAt,
		ExpiresAt: refresh.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh.Token,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, nil
}

// dummy returns a hash to verify against when the account does not exist.
func (s *SessionService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("sessionkeeper-dummy-password")
	})
	return s.dummyHash
}

func (s *SessionService) resetAttempts(ctx context.Context, scope ratelimit.Scope, key string) {
	if err := s.limiter.Reset(ctx, scope, key); err != nil {
		s.logger.Warn(ctx, "attempts not reset", "scope", string(scope), "error", err.Error())
	}
}
