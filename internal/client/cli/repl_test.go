package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	route    Route

	calls []string
	args  []string
}

func (f *fakeExec) record(call, arg string) {
	f.calls = append(f.calls, call)
	f.args = append(f.args, arg)
}

func (f *fakeExec) isLoggedIn() bool    { return f.loggedIn }
func (f *fakeExec) currentRoute() Route { return f.route }
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.record("signin", "")
	f.loggedIn, f.route = true, RouteHome
	return nil
}
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.record("signup", "")
	f.loggedIn, f.route = true, RouteHome
	return nil
}
func (f *fakeExec) Submit(ctx context.Context) error { f.record("submit", ""); return nil }
func (f *fakeExec) ToggleMode()                      { f.record("toggle", "") }
func (f *fakeExec) Demo()                            { f.record("demo", "") }
func (f *fakeExec) List(ctx context.Context) error   { f.record("list", ""); return nil }
func (f *fakeExec) Search(ctx context.Context, q string) error {
	f.record("search", q)
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error { f.record("refresh", ""); return nil }
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.record("show", id)
	return nil
}
func (f *fakeExec) Connect(ctx context.Context, id string) error {
	f.record("connect", id)
	return nil
}
func (f *fakeExec) Post(ctx context.Context) error { f.record("post", ""); return nil }
func (f *fakeExec) Categories()                    { f.record("categories", "") }
func (f *fakeExec) Profile() error                 { f.record("profile", ""); return nil }
func (f *fakeExec) EditProfile() error             { f.record("edit", ""); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", "")
	f.loggedIn, f.route = false, RouteLogin
	return nil
}
func (f *fakeExec) SwitchTab(r Route) error {
	f.record("tab", string(r))
	f.route = r
	return nil
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"demo",
		"toggle",
		"list",
		"signin",
		"help",
		"search  guitar lessons ",
		"show 2",
		"connect 2",
		"refresh",
		"create",
		"post",
		"categories",
		"profile",
		"edit",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{route: RouteLogin}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	want := []string{
		"demo", "toggle", "signin",
		"search", "show", "connect", "refresh",
		"tab", "post", "tab", "categories",
		"profile", "edit", "logout",
	}
	require.Equal(t, want, exec.calls, "list before sign-in and commands after exit are not dispatched")
	assert.Equal(t, "guitar lessons", exec.args[3])
	assert.Equal(t, "2", exec.args[4])
	assert.Equal(t, "2", exec.args[5])
	assert.Equal(t, string(RouteCreate), exec.args[7])
}

func TestRunREPL_HelpDependsOnRoute(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, route: RouteProfile}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\n")))

	assert.Contains(t, *lines, helpText(RouteProfile))
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, route: RouteHome}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("\n   \nfoobar\nsearch")))

	assert.Contains(t, *lines, "Unknown command: foobar")
	require.Equal(t, []string{"search"}, exec.calls, "last line without newline is still run")
	assert.Equal(t, "", exec.args[0])
}

func TestRunREPL_QuitPrintsBye(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("quit\nsignin\n")))

	assert.Empty(t, exec.calls)
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestHelpText_EveryRoute(t *testing.T) {
	for _, r := range []Route{RouteLogin, RouteHome, RouteCreate, RouteProfile} {
		assert.Contains(t, helpText(r), "help", r)
	}
	assert.Contains(t, helpText(RouteLogin), "signin")
	assert.Contains(t, helpText(RouteHome), "search")
	assert.Contains(t, helpText(RouteCreate), "post")
	assert.Contains(t, helpText(RouteProfile), "logout")
}

func TestRunREPL_ProfileStaysOnProfileTab(t *testing.T) {
	capturePrintln(t)
	a, out := signedInApp(t, "profile\nrefresh\n")

	runREPL(context.Background(), a, a.getStatus, a.reader)

	assert.Equal(t, RouteProfile, a.route)
	assert.NotContains(t, out.String(), "Python Tutoring", "the feed is not shown on the profile tab")
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Student User")), "refresh shows the profile again")
}
