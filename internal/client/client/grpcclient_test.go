package client

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeServer accepts exactly one access token and one refresh token at a
// time and rotates both on Refresh.
type fakeServer struct {
	pb.UnimplementedSessionServiceServer

	mu      sync.Mutex
	access  string
	refresh string
	gen     int

	refreshCalls atomic.Int32
	logoutCalls  atomic.Int32
	refreshDelay time.Duration
}

func (f *fakeServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.UserResponse, error) {
	if in.Email == "taken@example.com" {
		return nil, status.Error(codes.AlreadyExists, "already exists")
	}
	return &pb.UserResponse{Id: "u1", Email: in.Email}, nil
}

func (f *fakeServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
	if in.Password != "Secret123" {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return &pb.LoginResponse{Id: "u1", Secret: "JBSWY3DPEHPK3PXP"}, nil
}

func (f *fakeServer) CompleteTwoFactor(_ context.Context, in *pb.TwoFactorRequest) (*pb.TokenResponse, error) {
	if in.Code != "123456" {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return f.rotate(), nil
}

func (f *fakeServer) rotate() *pb.TokenResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.access = "access-" + string(rune('0'+f.gen))
	f.refresh = "refresh-" + string(rune('0'+f.gen))
	return &pb.TokenResponse{AccessToken: f.access, RefreshToken: f.refresh}
}

func (f *fakeServer) Refresh(_ context.Context, in *pb.RefreshRequest) (*pb.TokenResponse, error) {
	f.refreshCalls.Add(1)
	time.Sleep(f.refreshDelay)

	f.mu.Lock()
	ok := in.RefreshToken == f.refresh
	f.mu.Unlock()
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return f.rotate(), nil
}

func (f *fakeServer) Logout(_ context.Context, in *pb.LogoutRequest) (*pb.MessageResponse, error) {
	f.logoutCalls.Add(1)
	return &pb.MessageResponse{Message: "Logged out"}, nil
}

func (f *fakeServer) CurrentUser(ctx context.Context, _ *pb.CurrentUserRequest) (*pb.UserResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	vals := md.Get(common.AccessTokenHeaderName)

	f.mu.Lock()
	ok := len(vals) == 1 && vals[0] == f.access
	f.mu.Unlock()
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return &pb.UserResponse{Id: "u1", Email: "alice@example.com"}, nil
}

func (f *fakeServer) ForgotPassword(context.Context, *pb.ForgotPasswordRequest) (*pb.MessageResponse, error) {
	return &pb.MessageResponse{Message: "Mail sent, check your email!"}, nil
}

func (f *fakeServer) ResetPassword(_ context.Context, in *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	if in.Token == "expired" {
		return nil, status.Error(codes.FailedPrecondition, "expired")
	}
	return &pb.MessageResponse{Message: "Success, new password updated"}, nil
}

func (f *fakeServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func newTestClient(t *testing.T, f *fakeServer, store SessionStore) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterSessionServiceServer(srv, f)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", store,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func signedIn(t *testing.T, c *GRPCClient) {
	t.Helper()
	ctx := context.Background()

	resp, err := c.Login(ctx, "alice@example.com", "Secret123")
	require.NoError(t, err)
	require.NoError(t, c.CompleteTwoFactor(ctx, resp.GetId(), "123456", resp.GetSecret()))
}

func TestLoginAndTwoFactor_StoresSession(t *testing.T) {
	store := &MemorySessionStore{}
	c := newTestClient(t, &fakeServer{}, store)
	assert.False(t, c.LoggedIn())

	signedIn(t, c)

	assert.True(t, c.LoggedIn())
	s, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: "u1", AccessToken: "access-1", RefreshToken: "refresh-1"}, s)
}

func TestLogin_WrongPassword(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, &MemorySessionStore{})

	_, err := c.Login(context.Background(), "alice@example.com", "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, c.LoggedIn())
}

func TestCurrentUser_NotLoggedIn(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, &MemorySessionStore{})

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCurrentUser_RefreshesOnceAndRetries(t *testing.T) {
	f := &fakeServer{}
	store := &MemorySessionStore{}
	c := newTestClient(t, f, store)
	signedIn(t, c)

	// server moves on; the client still holds generation 1
	f.mu.Lock()
	f.access = "access-expired"
	f.mu.Unlock()

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, int32(1), f.refreshCalls.Load())

	s, _ := store.Load(context.Background())
	assert.Equal(t, "access-2", s.AccessToken)
	assert.Equal(t, "refresh-2", s.RefreshToken)
}

func TestCurrentUser_ConcurrentCallersShareOneRefresh(t *testing.T) {
	f := &fakeServer{refreshDelay: 50 * time.Millisecond}
	c := newTestClient(t, f, &MemorySessionStore{})
	signedIn(t, c)

	f.mu.Lock()
	f.access = "access-expired"
	f.mu.Unlock()

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.CurrentUser(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), f.refreshCalls.Load())
}

func TestCurrentUser_CancelledCallerKeepsRotation(t *testing.T) {
	f := &fakeServer{refreshDelay: 100 * time.Millisecond}
	store := &MemorySessionStore{}
	c := newTestClient(t, f, store)
	signedIn(t, c)

	f.mu.Lock()
	f.access = "access-expired"
	f.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.CurrentUser(ctx)
	require.Error(t, err)

	assert.Eventually(t, func() bool {
		s, _ := store.Load(context.Background())
		return s.RefreshToken == "refresh-2"
	}, time.Second, 10*time.Millisecond)

	me, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, int32(1), f.refreshCalls.Load())
	assert.True(t, c.LoggedIn())
}

func TestRefreshRejected_DropsSession(t *testing.T) {
	f := &fakeServer{}
	store := &MemorySessionStore{}
	c := newTestClient(t, f, store)
	signedIn(t, c)

	f.mu.Lock()
	f.access = "access-expired"
	f.refresh = "refresh-revoked"
	f.mu.Unlock()

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, c.LoggedIn())

	s, _ := store.Load(context.Background())
	assert.True(t, s.Empty())
}

func TestLogout(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, &MemorySessionStore{})

	_, err := c.Logout(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, int32(0), f.logoutCalls.Load())

	signedIn(t, c)
	msg, err := c.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Logged out", msg)
	assert.False(t, c.LoggedIn())
}

func TestRestore(t *testing.T) {
	store := &MemorySessionStore{}
	require.NoError(t, store.Save(context.Background(), Session{UserID: "u1", AccessToken: "a", RefreshToken: "r"}))

	c := newTestClient(t, &fakeServer{}, store)
	assert.False(t, c.LoggedIn())
	require.NoError(t, c.Restore(context.Background()))
	assert.True(t, c.LoggedIn())
}

func TestPasswordResetCalls(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, &MemorySessionStore{})
	ctx := context.Background()

	msg, err := c.ForgotPassword(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Mail sent, check your email!", msg)

	msg, err = c.ResetPassword(ctx, "abc", "Newpass123", "Newpass123")
	require.NoError(t, err)
	assert.Equal(t, "Success, new password updated", msg)

	_, err = c.ResetPassword(ctx, "expired", "Newpass123", "Newpass123")
	assert.ErrorIs(t, err, common.ErrExpired)
}

func TestRegisterAndPing(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, &MemorySessionStore{})
	ctx := context.Background()

	u, err := c.Register(ctx, &pb.RegisterRequest{Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.GetId())

	_, err = c.Register(ctx, &pb.RegisterRequest{Email: "taken@example.com"})
	assert.ErrorIs(t, err, common.ErrConflict)

	assert.NoError(t, c.Ping(ctx))
}
