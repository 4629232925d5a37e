package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/client"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/config"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// SessionClient is satisfied by *client.GRPCClient.
type SessionClient interface {
	Restore(ctx context.Context) error
	LoggedIn() bool
	Register(ctx context.Context, in *pb.RegisterRequest) (*pb.UserResponse, error)
	Login(ctx context.Context, email, password string) (*pb.LoginResponse, error)
	CompleteTwoFactor(ctx context.Context, userID, code, secret string) error
	CurrentUser(ctx context.Context) (*pb.UserResponse, error)
	Logout(ctx context.Context) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password, confirm string) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	client SessionClient
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, client.NewSQLSessionStore(db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := apiClient.Restore(ctx); err != nil {
		_ = apiClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &App{config: c, client: apiClient, db: db, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Close()
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

// requestContext bounds a single call to the server.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := 10 * time.Second
	if a.config != nil && a.config.RequestTimeout > 0 {
		timeout = a.config.RequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
