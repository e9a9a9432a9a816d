package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/session"
	"github.com/dmitrijs2005/skillswap/internal/common"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

func (a *App) showLogin() {
	if a.signUp {
		fmt.Fprintln(a.out, "Create Account: Join our community of learners")
	} else {
		fmt.Fprintln(a.out, "Sign In: Welcome back to your journey")
	}
}

// ToggleMode switches the login screen between sign-in and sign-up.
func (a *App) ToggleMode() {
	a.signUp = !a.signUp
	a.showLogin()
}

// Demo prints the demo credentials accepted by sign-in.
func (a *App) Demo() {
	fmt.Fprintf(a.out, "🧪 Demo Credentials\nEmail: %s\nPassword: %s\n", session.DemoEmail, session.DemoPassword)
}

// Submit runs the action of the current login mode.
func (a *App) Submit(ctx context.Context) error {
	if a.signUp {
		return a.SignUp(ctx)
	}
	return a.SignIn(ctx)
}

// SignIn prompts for email and password and authenticates against the
// session controller. On success the home tab is shown.
//
// The password byte slice is wiped before returning.
func (a *App) SignIn(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := withLoading(ctx, a.out, "Loading", func(ctx context.Context) (models.Session, error) {
		return a.session.SignIn(ctx, email, password)
	})
	if err != nil {
		a.authFailed(err)
		return err
	}

	a.enterTabs(ctx, sess)
	return nil
}

// SignUp prompts for email and password, validates them and creates the
// session. On success the home tab is shown.
//
// The password byte slice is wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := withLoading(ctx, a.out, "Loading", func(ctx context.Context) (models.Session, error) {
		return a.session.SignUp(ctx, email, password)
	})
	if err != nil {
		a.authFailed(err)
		return err
	}

	notice(a.out, "Success", "Account created! You are now logged in.")
	a.enterTabs(ctx, sess)
	return nil
}

// Logout asks for confirmation, then clears the session and returns to the
// login screen. Declining leaves everything as it was.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		notice(a.out, "Sign in required", "Please sign in first.")
		return errNotSignedIn
	}
	a.route = RouteProfile
	if !confirm(a.reader, "Are you sure you want to logout?", a.out) {
		return nil
	}

	a.session.Logout()
	a.form.Reset()
	a.signUp = false
	a.route = RouteLogin
	a.log.Info(ctx, "signed out")

	a.showLogin()
	return nil
}

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "📧 Email Address", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

func (a *App) authFailed(err error) {
	var verr *common.ValidationError
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		notice(a.out, "Login failed", fmt.Sprintf("Invalid email or password. Use %s / %s", session.DemoEmail, session.DemoPassword))
	case errors.As(err, &verr):
		notice(a.out, "Check your details",
			fmt.Sprintf("Enter a valid email and a password with at least %d characters.", session.MinPasswordLen))
	case errors.Is(err, session.ErrBusy):
		notice(a.out, "Please wait", "Another sign-in is in progress.")
	case errors.Is(err, context.Canceled):
		notice(a.out, "Cancelled", "Sign-in was cancelled.")
	default:
		notice(a.out, "Error", err.Error())
	}
}

func (a *App) enterTabs(ctx context.Context, sess models.Session) {
	a.route = RouteHome
	if sess.CurrentUser != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.CurrentUser.FirstName())
	}
	_ = a.List(ctx)
}
