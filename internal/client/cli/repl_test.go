package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	failOn   string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool                   { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) WhoAmI(ctx context.Context) error   { return f.record("whoami") }
func (f *fakeExec) Forgot(ctx context.Context) error   { return f.record("forgot") }
func (f *fakeExec) Reset(ctx context.Context) error    { return f.record("reset") }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	lines := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"register",
		"",
		"login",
		"help",
		"whoami",
		"logout",
		"forgot",
		"reset",
		"foobar",
		"exit",
		"register",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"register", "login", "whoami", "logout", "forgot", "reset"}, exec.calls)

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Available commands: register, login, forgot, reset, exit")
	assert.Contains(t, out, "Available commands: whoami, logout, exit")
	assert.Contains(t, out, "Unknown command:foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	lines := captureOutput(t)

	exec := &fakeExec{failOn: "login"}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("login\nforgot\n")))

	assert.Equal(t, []string{"login", "forgot"}, exec.calls)
	assert.Contains(t, strings.Join(*lines, "\n"), "Error:login failed")
}

func TestRunREPL_QuitOnEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("")))

	assert.Empty(t, exec.calls)
}
