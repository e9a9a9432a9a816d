package session

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/client/latency"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/google/uuid"
)

// MinPasswordLen is the shortest password accepted by SignUp.
const MinPasswordLen = 4

// emailShape is deliberately loose: something, "@", something, ".",
// something, with no whitespace.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether email (trimmed) has the accepted shape.
func ValidEmail(email string) bool {
	return emailShape.MatchString(strings.TrimSpace(email))
}

// ValidPassword reports whether password (trimmed) is long enough.
func ValidPassword(password []byte) bool {
	return len(strings.TrimSpace(string(password))) >= MinPasswordLen
}

// Controller owns the session of one running client.
//
// It is driven from the single UI goroutine; the mutex only makes Busy and
// the query methods safe to call while an attempt is waiting.
type Controller struct {
	mu    sync.Mutex
	state State
	user  *models.User
	busy  bool

	verifier Verifier
	delay    latency.Simulator
	log      logging.Logger
}

// NewController returns a Controller in StateInit.
func NewController(v Verifier, delay latency.Simulator, log logging.Logger) *Controller {
	return &Controller{
		state:    StateInit,
		verifier: v,
		delay:    delay,
		log:      log.With("component", "session"),
	}
}

// SignIn authenticates with the verifier and, after the artificial delay,
// marks the session logged in. A rejected pair returns ErrInvalidCredentials
// at once and leaves the session unchanged.
func (c *Controller) SignIn(ctx context.Context, email string, password []byte) (models.Session, error) {
	if err := c.checkReady(); err != nil {
		return c.Snapshot(), err
	}

	if err := c.verifier.Verify(ctx, email, password); err != nil {
		c.log.Warn(ctx, "sign-in rejected", "email", strings.TrimSpace(email))
		return c.Snapshot(), err
	}

	return c.authenticate(ctx, email)
}

// SignUp validates the email shape and password length, then after the
// artificial delay marks the session logged in with a fabricated user.
// Invalid input returns a *common.ValidationError.
func (c *Controller) SignUp(ctx context.Context, email string, password []byte) (models.Session, error) {
	if err := c.checkReady(); err != nil {
		return c.Snapshot(), err
	}

	if !ValidEmail(email) {
		return c.Snapshot(), common.NewValidationError(ReasonInvalidEmail, "Please enter a valid email.")
	}
	if !ValidPassword(password) {
		return c.Snapshot(), common.NewValidationError(ReasonPasswordTooShort,
			fmt.Sprintf("Password must have at least %d characters.", MinPasswordLen))
	}

	return c.authenticate(ctx, email)
}

// Logout clears the session. It never fails and may be called repeatedly.
func (c *Controller) Logout() models.Session {
	c.mu.Lock()
	c.user = nil
	if c.state != StateTeardown {
		c.state = StateUnauthenticated
	}
	c.mu.Unlock()
	return c.Snapshot()
}

// Close ends the session lifecycle. Further sign-in attempts return
// ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.state = StateTeardown
}

// IsLoggedIn reports whether a user is authenticated.
func (c *Controller) IsLoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil
}

// CurrentUser returns a copy of the authenticated user.
func (c *Controller) CurrentUser() (*models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil, false
	}
	return cloneUser(c.user), true
}

// State returns the lifecycle step.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a sign-in or sign-up is waiting on its delay.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Snapshot returns the session as a value.
func (c *Controller) Snapshot() models.Session {
	u, ok := c.CurrentUser()
	return models.Session{IsLoggedIn: ok, CurrentUser: u}
}

func (c *Controller) checkReady() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateTeardown {
		return ErrClosed
	}
	if c.busy {
		return ErrBusy
	}
	return nil
}

func (c *Controller) authenticate(ctx context.Context, email string) (models.Session, error) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return c.Snapshot(), ErrBusy
	}
	c.busy = true
	c.mu.Unlock()

	err := c.delay.Wait(ctx)

	c.mu.Lock()
	c.busy = false
	switch {
	case err != nil:
		c.mu.Unlock()
		return c.Snapshot(), err
	case c.state == StateTeardown:
		c.mu.Unlock()
		return c.Snapshot(), ErrClosed
	}
	email = strings.TrimSpace(email)
	c.user = newUser(email)
	c.state = StateAuthenticated
	c.mu.Unlock()

	c.log.Info(ctx, "signed in", "email", email)
	return c.Snapshot(), nil
}

// newUser fabricates the profile shown after login. Only the email comes
// from the user; everything else is placeholder content.
func newUser(email string) *models.User {
	return &models.User{
		ID:            uuid.NewString(),
		Name:          "Student User",
		Email:         email,
		Bio:           "Passionate learner exploring new skills and sharing what I know.",
		SkillsOffered: []string{"Python", "Guitar"},
		SkillsWanted:  []string{"Spanish", "Photography", "Cooking"},
	}
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.SkillsOffered = append([]string(nil), u.SkillsOffered...)
	cp.SkillsWanted = append([]string(nil), u.SkillsWanted...)
	return &cp
}
