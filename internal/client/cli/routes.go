package cli

import "fmt"

// Route names the screen the REPL is showing.
type Route string

const (
	RouteLogin   Route = "login"
	RouteHome    Route = "home"
	RouteCreate  Route = "create"
	RouteProfile Route = "profile"
)

func (a *App) currentRoute() Route {
	return a.route
}

// SwitchTab moves to one of the three tabs. Tabs are only reachable while
// signed in.
func (a *App) SwitchTab(r Route) error {
	if !a.isLoggedIn() {
		notice(a.out, "Sign in required", "Please sign in first.")
		return errNotSignedIn
	}
	switch r {
	case RouteHome, RouteCreate, RouteProfile:
	default:
		return fmt.Errorf("unknown tab %q", r)
	}
	a.route = r
	return nil
}

func helpText(r Route) string {
	switch r {
	case RouteLogin:
		return "Available commands: signin, signup, submit, toggle, demo, help, exit"
	case RouteHome:
		return "Available commands: (l)ist, search <query>, refresh, show <id>, connect <id>, create, profile, help, exit"
	case RouteCreate:
		return "Available commands: post, categories, home, profile, help, exit"
	case RouteProfile:
		return "Available commands: profile, edit, refresh, logout, home, create, help, exit"
	}
	return "Available commands: help, exit"
}
