package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/client"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

// getSimpleText and getPassword point at the interactive helpers and are
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askSecret(prompt string) (string, error) {
	b, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return string(b), nil
}

// Register creates an account. It does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	req := &pb.RegisterRequest{}
	var err error

	if req.FirstName, err = a.ask("Enter first name"); err != nil {
		return err
	}
	if req.LastName, err = a.ask("Enter last name"); err != nil {
		return err
	}
	if req.Email, err = a.ask("Enter email"); err != nil {
		return err
	}
	if req.Password, err = a.askSecret("Enter password"); err != nil {
		return err
	}
	if req.PasswordConfirm, err = a.askSecret("Confirm password"); err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.client.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s, you can login now\n", u.Email)
	return nil
}

// Login checks the password, shows the authenticator secret on first
// login and then asks for the current code.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in, logout first")
		return nil
	}

	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := a.askSecret("Enter password")
	if err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	resp, err := a.client.Login(rctx, email, password)
	cancel()
	if err != nil {
		return err
	}

	if resp.GetSecret() != "" {
		fmt.Fprintln(a.out, "Add this account to your authenticator app:")
		fmt.Fprintln(a.out, "  secret:", resp.Secret)
		if resp.GetOtpauthUrl() != "" {
			fmt.Fprintln(a.out, "  uri:   ", resp.GetOtpauthUrl())
		}
	}

	code, err := a.ask("Enter authenticator code")
	if err != nil {
		return err
	}

	rctx, cancel = a.requestContext(ctx)
	defer cancel()
	if err := a.client.CompleteTwoFactor(rctx, resp.GetId(), code, resp.GetSecret()); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s <%s>, id %s\n", u.GetFirstName(), u.GetLastName(), u.GetEmail(), u.GetId())
	return nil
}

// Logout ends every session of the user, on every device.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	msg, err := a.client.Logout(ctx)
	if err != nil {
		if errors.Is(err, client.ErrNotLoggedIn) {
			fmt.Fprintln(a.out, "Not logged in")
			return nil
		}
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	msg, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Reset sets a new password with the token from the reset mail.
func (a *App) Reset(ctx context.Context) error {
	token, err := a.ask("Enter reset token")
	if err != nil {
		return err
	}
	password, err := a.askSecret("Enter new password")
	if err != nil {
		return err
	}
	confirm, err := a.askSecret("Confirm new password")
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	msg, err := a.client.ResetPassword(ctx, token, password, confirm)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
