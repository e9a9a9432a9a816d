package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/skillswap/internal/client/catalog"
	"github.com/dmitrijs2005/skillswap/internal/client/config"
	"github.com/dmitrijs2005/skillswap/internal/client/latency"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/posting"
	"github.com/dmitrijs2005/skillswap/internal/client/repositories/offers"
	"github.com/dmitrijs2005/skillswap/internal/client/session"
	"github.com/dmitrijs2005/skillswap/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Controller
	catalog catalog.Service
	form    *posting.Form
	delay   latency.Simulator
	log     logging.Logger
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer

	route  Route
	signUp bool
}

// NewApp builds the application from c: a logger at the configured level,
// the catalog store for the configured backend, and the session and form
// sharing one latency simulator.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, level)

	repo, db, err := openCatalog(ctx, c)
	if err != nil {
		log.Error(ctx, "error initializing catalog", "error", err)
		return nil, err
	}

	delay := latency.Fixed(c.Delay)

	a := &App{
		config:  c,
		session: session.NewController(session.DemoVerifier{}, delay, log),
		catalog: catalog.NewService(repo, delay, log),
		form:    posting.NewForm(delay, log),
		delay:   delay,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		route:   RouteLogin,
	}
	return a, nil
}

// openCatalog returns the offer repository of the configured backend. For
// SQLite it also returns the database so the caller can close it.
func openCatalog(ctx context.Context, c *config.Config) (offers.Repository, *sql.DB, error) {
	switch c.CatalogBackend {
	case config.CatalogMemory:
		return offers.NewMemoryRepository(models.SeedOffers), nil, nil
	case config.CatalogSQLite:
		db, err := offers.InitDatabase(ctx, c.CatalogDSN, models.SeedOffers)
		if err != nil {
			return nil, nil, err
		}
		return offers.NewSQLiteRepository(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog backend %q", c.CatalogBackend)
	}
}

// Run starts the REPL and blocks until the user exits or input ends. The
// session is torn down and the catalog store closed afterwards.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Root prints the welcome banner and runs the REPL on the app's reader.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "🌊 Welcome to SkillSwap (type 'help' for commands)")
	a.showLogin()
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close ends the session and releases the catalog store.
func (a *App) Close() {
	a.session.Close()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close catalog", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	if u, ok := a.session.CurrentUser(); ok {
		return fmt.Sprintf("(%s · %s)", u.FirstName(), a.route)
	}
	if a.signUp {
		return "(sign up)"
	}
	return "(sign in)"
}
