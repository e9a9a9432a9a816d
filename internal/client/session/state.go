package session

// State is a step of the session lifecycle.
type State int

const (
	StateInit State = iota
	StateAuthenticated
	StateUnauthenticated
	StateTeardown
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateTeardown:
		return "teardown"
	}
	return "unknown"
}
