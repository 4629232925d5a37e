package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/client"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// stubInputs answers text prompts from texts and secret prompts from
// secrets, in order.
func stubInputs(t *testing.T, texts []string, secrets []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(secrets) == 0 {
			return nil, io.EOF
		}
		v := secrets[0]
		secrets = secrets[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeClient struct {
	loggedIn bool

	registered *pb.RegisterRequest
	regErr     error

	loginEmail, loginPass string
	loginResp             *pb.LoginResponse
	loginErr              error

	tfaID, tfaCode, tfaSecret string
	tfaErr                    error

	logoutErr error

	forgotEmail string
	reset       [3]string
	resetErr    error
}

func (f *fakeClient) Restore(context.Context) error { return nil }
func (f *fakeClient) LoggedIn() bool                { return f.loggedIn }
func (f *fakeClient) Close() error                  { return nil }
func (f *fakeClient) Ping(context.Context) error    { return nil }

func (f *fakeClient) Register(_ context.Context, in *pb.RegisterRequest) (*pb.UserResponse, error) {
	f.registered = in
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &pb.UserResponse{Id: "u1", Email: in.Email}, nil
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*pb.LoginResponse, error) {
	f.loginEmail, f.loginPass = email, password
	return f.loginResp, f.loginErr
}

func (f *fakeClient) CompleteTwoFactor(_ context.Context, userID, code, secret string) error {
	f.tfaID, f.tfaCode, f.tfaSecret = userID, code, secret
	if f.tfaErr == nil {
		f.loggedIn = true
	}
	return f.tfaErr
}

func (f *fakeClient) CurrentUser(context.Context) (*pb.UserResponse, error) {
	if !f.loggedIn {
		return nil, client.ErrNotLoggedIn
	}
	return &pb.UserResponse{Id: "u1", Email: "alice@example.com", FirstName: "Alice", LastName: "Doe"}, nil
}

func (f *fakeClient) Logout(context.Context) (string, error) {
	if !f.loggedIn {
		return "", client.ErrNotLoggedIn
	}
	if f.logoutErr != nil {
		return "", f.logoutErr
	}
	f.loggedIn = false
	return "Logged out", nil
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) (string, error) {
	f.forgotEmail = email
	return "Mail sent, check your email!", nil
}

func (f *fakeClient) ResetPassword(_ context.Context, token, password, confirm string) (string, error) {
	f.reset = [3]string{token, password, confirm}
	if f.resetErr != nil {
		return "", f.resetErr
	}
	return "Success, new password updated", nil
}

func newTestApp(f *fakeClient) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{client: f, out: &out}, &out
}

func TestRegister(t *testing.T) {
	f := &fakeClient{}
	a, out := newTestApp(f)
	stubInputs(t, []string{"Alice", "Doe", "alice@example.com"}, []string{"Secret123", "Secret123"})

	require.NoError(t, a.Register(context.Background()))
	assert.True(t, proto.Equal(&pb.RegisterRequest{
		FirstName:       "Alice",
		LastName:        "Doe",
		Email:           "alice@example.com",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	}, f.registered))
	assert.Contains(t, out.String(), "Registered alice@example.com")
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeClient{regErr: errors.New("already exists")}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"A", "B", "a@example.com"}, []string{"x", "x"})

	assert.EqualError(t, a.Register(context.Background()), "already exists")
}

func TestLogin_FirstTimeShowsSecret(t *testing.T) {
	f := &fakeClient{loginResp: &pb.LoginResponse{Id: "u1", Secret: "JBSWY3DPEHPK3PXP", OtpauthUrl: "otpauth://totp/x"}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice@example.com", "123456"}, []string{"Secret123"})

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice@example.com", f.loginEmail)
	assert.Equal(t, "Secret123", f.loginPass)
	assert.Equal(t, "u1", f.tfaID)
	assert.Equal(t, "123456", f.tfaCode)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", f.tfaSecret)
	assert.Contains(t, out.String(), "JBSWY3DPEHPK3PXP")
	assert.Contains(t, out.String(), "otpauth://totp/x")
	assert.Contains(t, out.String(), "Login successful")
	assert.True(t, a.isLoggedIn())
}

func TestLogin_EnrolledUserGetsNoSecret(t *testing.T) {
	f := &fakeClient{loginResp: &pb.LoginResponse{Id: "u1"}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice@example.com", "654321"}, []string{"Secret123"})

	require.NoError(t, a.Login(context.Background()))
	assert.Empty(t, f.tfaSecret)
	assert.NotContains(t, out.String(), "authenticator app")
}

func TestLogin_Failures(t *testing.T) {
	t.Run("bad password", func(t *testing.T) {
		f := &fakeClient{loginErr: client.ErrUnauthorized}
		a, _ := newTestApp(f)
		stubInputs(t, []string{"alice@example.com"}, []string{"nope"})

		assert.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
		assert.Empty(t, f.tfaID)
	})

	t.Run("bad code", func(t *testing.T) {
		f := &fakeClient{loginResp: &pb.LoginResponse{Id: "u1"}, tfaErr: client.ErrUnauthorized}
		a, _ := newTestApp(f)
		stubInputs(t, []string{"alice@example.com", "000000"}, []string{"Secret123"})

		assert.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
		assert.False(t, a.isLoggedIn())
	})

	t.Run("already logged in", func(t *testing.T) {
		f := &fakeClient{loggedIn: true}
		a, out := newTestApp(f)

		require.NoError(t, a.Login(context.Background()))
		assert.Contains(t, out.String(), "Already logged in")
		assert.Empty(t, f.loginEmail)
	})
}

func TestWhoAmIAndLogout(t *testing.T) {
	f := &fakeClient{loggedIn: true}
	a, out := newTestApp(f)
	ctx := context.Background()

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Alice Doe <alice@example.com>")

	require.NoError(t, a.Logout(ctx))
	assert.Contains(t, out.String(), "Logged out")
	assert.False(t, a.isLoggedIn())

	assert.ErrorIs(t, a.WhoAmI(ctx), client.ErrNotLoggedIn)

	out.Reset()
	require.NoError(t, a.Logout(ctx))
	assert.Contains(t, out.String(), "Not logged in")
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeClient{loggedIn: true, logoutErr: client.ErrUnavailable}
	a, _ := newTestApp(f)

	assert.ErrorIs(t, a.Logout(context.Background()), client.ErrUnavailable)
}

func TestForgotAndReset(t *testing.T) {
	f := &fakeClient{}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice@example.com", "deadbeef"}, []string{"Newpass123", "Newpass123"})

	require.NoError(t, a.Forgot(context.Background()))
	assert.Equal(t, "alice@example.com", f.forgotEmail)
	assert.Contains(t, out.String(), "Mail sent, check your email!")

	require.NoError(t, a.Reset(context.Background()))
	assert.Equal(t, [3]string{"deadbeef", "Newpass123", "Newpass123"}, f.reset)
	assert.Contains(t, out.String(), "Success, new password updated")
}

func TestReset_InputError(t *testing.T) {
	f := &fakeClient{}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"deadbeef"}, nil)

	assert.ErrorIs(t, a.Reset(context.Background()), io.EOF)
	assert.Empty(t, f.reset[0])
}
