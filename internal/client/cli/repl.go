package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentRoute() Route

	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Submit(ctx context.Context) error
	ToggleMode()
	Demo()

	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Connect(ctx context.Context, id string) error

	Post(ctx context.Context) error
	Categories()

	Profile() error
	EditProfile() error
	Logout(ctx context.Context) error

	SwitchTab(r Route) error
}

// runREPL starts a simple read–eval–print loop for the SkillSwap CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Which commands are accepted depends on
// whether a user is signed in. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out (login screen):
//	  - signin | signup  — authenticate or create an account
//	  - submit           — sign in or sign up, depending on the mode
//	  - toggle           — switch between sign-in and sign-up mode
//	  - demo             — print the demo credentials
//
//	Signed in:
//	  - home | create | profile  — switch tab
//	  - list | l                 — show the feed (same as home)
//	  - search <query>           — filter the feed; no query shows everything
//	  - refresh                  — reload the feed or the profile
//	  - show <id>                — offer details
//	  - connect <id>             — send a connection request
//	  - post                     — create a skill offer
//	  - categories               — list category chips
//	  - edit                     — edit the profile
//	  - logout                   — sign out (asks for confirmation)
//
//	Always: help, exit | quit
//
// Errors returned by command handlers are ignored here; handlers print
// their own notices. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("skillswap %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		switch cmd {
		case "help":
			printlnFn(helpText(a.currentRoute()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if a.isLoggedIn() {
			dispatchTabs(ctx, a, cmd, arg)
		} else {
			dispatchLogin(ctx, a, cmd)
		}
	}
}

func dispatchLogin(ctx context.Context, a execIface, cmd string) {
	switch cmd {
	case "signin", "login":
		_ = a.SignIn(ctx)
	case "signup", "register":
		_ = a.SignUp(ctx)
	case "submit":
		_ = a.Submit(ctx)
	case "toggle":
		a.ToggleMode()
	case "demo":
		a.Demo()
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchTabs(ctx context.Context, a execIface, cmd, arg string) {
	switch cmd {
	case "home", "l", "list":
		_ = a.List(ctx)
	case "create":
		_ = a.SwitchTab(RouteCreate)
	case "profile":
		_ = a.Profile()
	case "search":
		_ = a.Search(ctx, arg)
	case "refresh":
		_ = a.Refresh(ctx)
	case "show":
		_ = a.Show(ctx, arg)
	case "connect":
		_ = a.Connect(ctx, arg)
	case "post":
		_ = a.Post(ctx)
	case "categories":
		_ = a.SwitchTab(RouteCreate)
		a.Categories()
	case "edit":
		_ = a.EditProfile()
	case "logout":
		_ = a.Logout(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}
