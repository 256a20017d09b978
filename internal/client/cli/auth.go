package cli

import (
	"context"
	"fmt"
	"os"

	pb "github.com/djitsotsu/authsvc/internal/proto"
	"github.com/djitsotsu/authsvc/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) rememberUser(u *pb.User) {
	if u == nil {
		return
	}
	a.userName = u.GetNickname()
	if u.GetTag() != "" {
		a.userName = a.userName + "#" + u.GetTag()
	}
}

// Register prompts for email, password, nickname and optional avatar URL, and
// starts the registration flow. The account only materializes once the mailed
// code is confirmed with the verify command.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	nickname, err := getSimpleText(a.reader, "Enter nickname", os.Stdout)
	if err != nil {
		return err
	}

	avatarURL, err := getSimpleText(a.reader, "Enter avatar URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	msg, err := a.api.Register(ctx, email, string(password), nickname, avatarURL)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println(msg + ". Confirm with: verify")
	return nil
}

// Login prompts for credentials and authenticates against the server. On
// success the client holds a fresh token pair.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.rememberUser(user)
	fmt.Println("Logged in as", a.userName)
	return nil
}

// SendOtp requests a login code for an email or phone identifier.
func (a *App) SendOtp(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or phone", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	msg, err := a.api.SendOtp(ctx, identifier)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println(msg)
	return nil
}

// VerifyOtp confirms a mailed code; this finishes a pending registration or
// completes a code login, opening a session either way.
func (a *App) VerifyOtp(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or phone", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Enter the code you received", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.api.VerifyOtp(ctx, identifier, code)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.rememberUser(user)
	fmt.Println("Logged in as", a.userName)
	return nil
}

// WhoAmI validates the held access token and prints its subject.
func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	userID, role, err := a.api.ValidateToken(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("user=%s role=%s\n", userID, role)
	return nil
}

// Refresh rotates the session: the old refresh token is traded for a new pair.
func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.Refresh(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Tokens refreshed")
	return nil
}

// Logout revokes the current session.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.Logout(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = ""
	fmt.Println("Logged out")
	return nil
}

// ForgotPassword requests a recovery code for an existing account.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	msg, err := a.api.ForgotPassword(ctx, email)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println(msg)
	return nil
}

// ResetPassword confirms a recovery code and sets a new password. All other
// sessions are revoked server-side; the fresh session replaces ours.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Enter the code you received", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.api.ResetPassword(ctx, email, code, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.rememberUser(user)
	fmt.Println("Password reset; logged in as", a.userName)
	return nil
}
