// Package server wires the session service together: storage, token
// issuer, mailer, attempt limiter, telemetry and the HTTP and gRPC
// transports, and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/mailer"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/password"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/telemetry"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/totp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/sessionkeeper/internal/server/grpc"
	hs "github.com/dmitrijs2005/sessionkeeper/internal/server/http"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	redis     *redis.Client
	telemetry *telemetry.Provider
	sessions  *services.SessionService
	resets    *services.ResetService
}

// NewApp builds every collaborator from c. With an empty DatabaseDSN the
// in-memory repositories are used and nothing survives a restart.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	tp, err := telemetry.New(ctx, telemetry.Settings{
		Endpoint:    c.TelemetryEndpoint,
		Insecure:    c.TelemetryInsecure,
		ServiceName: c.ServiceName,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}
	app.telemetry = tp

	tx, repos, err := app.initStorage(ctx)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	var limiter *ratelimit.Limiter
	if c.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB})
		limiter = ratelimit.New(app.redis, ratelimit.Config{MaxAttempts: c.MaxAttempts, Window: c.AttemptWindow})
	} else {
		logger.Warn(ctx, "no redis address configured, attempt limiting disabled")
	}

	m, err := mailer.New(ctx, mailer.Settings{
		Driver:       c.MailDriver,
		From:         c.MailFrom,
		SMTPAddr:     c.SMTPAddr,
		SMTPUsername: c.SMTPUsername,
		SMTPPassword: c.SMTPPassword,
		SMTPTimeout:  c.SMTPTimeout,
		SES: mailer.SESConfig{
			Region:          c.SESRegion,
			AccessKeyID:     c.SESAccessKeyID,
			SecretAccessKey: c.SESSecretAccessKey,
			BaseEndpoint:    c.SESBaseEndpoint,
		},
	}, logger)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("mailer init error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration, c.TokenLeeway)
	hasher := password.NewHasher(c.BcryptCost)
	verifier := totp.New(totp.Config{Issuer: c.TOTPIssuer, Skew: 1})
	tracing := services.WithTracer(tp.Tracer())

	app.sessions = services.NewSessionService(tx, repos, issuer, hasher, verifier, limiter, logger, tracing)
	app.resets = services.NewResetService(tx, repos, hasher, m, limiter, logger,
		services.ResetConfig{TTL: c.ResetTokenValidityDuration, URLBase: c.ResetURLBase}, tracing)

	return app, nil
}

func (app *App) initStorage(ctx context.Context) (dbx.Transactor, repomanager.RepositoryManager, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "no database DSN configured, using in-memory storage")
		return dbx.NewLockingTransactor(), repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := repomanager.OpenPostgres(ctx, app.config.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}
	return dbx.NewSQLTransactor(db, nil), rm, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves gRPC and HTTP until a signal arrives, ctx is cancelled or
// either server fails; then both are stopped.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	defer app.close(context.Background())

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions, app.resets)
	httpServer := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.sessions, app.resets, hs.Settings{
		ServiceName:        app.config.ServiceName,
		CORSAllowedOrigins: app.config.CORSAllowedOrigins,
		CookieSecure:       app.config.CookieSecure,
		RefreshTTL:         app.config.RefreshTokenValidityDuration,
		RequestsPerMinute:  app.config.RequestsPerMinute,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return grpcServer.Run(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}
	app.logger.Info(context.Background(), "App stopped")
	return err
}

func (app *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close error", "error", err.Error())
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close error", "error", err.Error())
		}
	}
	if err := app.telemetry.Shutdown(ctx); err != nil {
		app.logger.Warn(ctx, "telemetry shutdown error", "error", err.Error())
	}
}
