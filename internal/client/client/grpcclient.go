package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const refreshTimeout = 10 * time.Second

// protectedMethods carry the access token and are retried once after a
// refresh.
var protectedMethods = map[string]bool{
	pb.SessionService_CurrentUser_FullMethodName: true,
}

type GRPCClient struct {
	conn  *grpc.ClientConn
	rpc   pb.SessionServiceClient
	store SessionStore

	mu      sync.RWMutex
	session Session

	refreshes singleflight.Group
}

// NewGRPCClient dials endpointURL lazily. Extra options are appended to
// the defaults, which tests use to dial an in-process listener.
func NewGRPCClient(endpointURL string, store SessionStore, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{store: store}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.rpc = pb.NewSessionServiceClient(conn)
	return c, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if !protectedMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	used := c.current().AccessToken
	if used == "" {
		return ErrNotLoggedIn
	}

	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated {
		return err
	}

	fresh, err := c.refresh(ctx, used)
	if err != nil {
		return err
	}
	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refresh rotates the token pair unless someone already replaced stale.
// Callers that arrive while a rotation is in flight wait for its result.
// refresh rotates the session once for all concurrent callers. The shared
// call outlives the caller that started it; each caller stops waiting when
// its own ctx ends.
func (c *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	ch := c.refreshes.DoChan("refresh", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		cur := c.current()
		if cur.AccessToken != stale && cur.AccessToken != "" {
			return cur.AccessToken, nil
		}
		if cur.RefreshToken == "" {
			return "", ErrNotLoggedIn
		}

		resp, err := c.rpc.Refresh(ctx, &pb.RefreshRequest{RefreshToken: cur.RefreshToken})
		if err != nil {
			if status.Code(err) == codes.Unauthenticated {
				_ = c.forget(ctx)
			}
			return "", err
		}

		next := Session{UserID: cur.UserID, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
		if err := c.remember(ctx, next); err != nil {
			return "", err
		}
		return next.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *GRPCClient) current() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *GRPCClient) remember(ctx context.Context, s Session) error {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return c.store.Save(ctx, s)
}

func (c *GRPCClient) forget(ctx context.Context) error {
	c.mu.Lock()
	c.session = Session{}
	c.mu.Unlock()
	return c.store.Clear(ctx)
}

// Restore picks up the session saved by a previous run.
func (c *GRPCClient) Restore(ctx context.Context) error {
	s, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return nil
}

func (c *GRPCClient) LoggedIn() bool {
	return !c.current().Empty()
}

func (c *GRPCClient) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.UserResponse, error) {
	resp, err := c.rpc.Register(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// Login checks the password. The session starts only after
// CompleteTwoFactor succeeds.
func (c *GRPCClient) Login(ctx context.Context, email, password string) (*pb.LoginResponse, error) {
	resp, err := c.rpc.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) CompleteTwoFactor(ctx context.Context, userID, code, secret string) error {
	resp, err := c.rpc.CompleteTwoFactor(ctx, &pb.TwoFactorRequest{Id: userID, Code: code, Secret: secret})
	if err != nil {
		return mapError(err)
	}
	return c.remember(ctx, Session{UserID: userID, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})
}

func (c *GRPCClient) CurrentUser(ctx context.Context) (*pb.UserResponse, error) {
	resp, err := c.rpc.CurrentUser(ctx, &pb.CurrentUserRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// Logout ends every session of the user on the server. The local session
// is dropped even when the server call fails.
func (c *GRPCClient) Logout(ctx context.Context) (string, error) {
	cur := c.current()
	if cur.Empty() {
		return "", ErrNotLoggedIn
	}

	resp, err := c.rpc.Logout(ctx, &pb.LogoutRequest{RefreshToken: cur.RefreshToken})
	if ferr := c.forget(ctx); ferr != nil && err == nil {
		return "", ferr
	}
	if err != nil {
		return "", mapError(err)
	}
	return resp.Message, nil
}

func (c *GRPCClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := c.rpc.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Message, nil
}

func (c *GRPCClient) ResetPassword(ctx context.Context, token, password, confirm string) (string, error) {
	resp, err := c.rpc.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, Password: password, PasswordConfirm: confirm})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Message, nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.rpc.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
