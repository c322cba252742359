package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rbpata/sweetshop/internal/shop/nav"
	"github.com/rbpata/sweetshop/internal/shop/session"
	"github.com/rbpata/sweetshop/internal/shop/store"
	"github.com/rbpata/sweetshop/internal/shop/store/drivers/sqlite"
	"github.com/rbpata/sweetshop/internal/shop/ui"
	"github.com/rbpata/sweetshop/pkg/shopsdk"
	"github.com/rbpata/sweetshop/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the session, route guard, API client, and local state
// store together, and dispatches CLI commands as view navigations.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	client   *shopsdk.Client
	session  *session.Session
	notifier *ui.Notifier

	out io.Writer
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	return newApplication(cfg, os.Stdout)
}

func newApplication(cfg Config, out io.Writer) (*Application, error) {
	app := &Application{
		cfg: cfg,
		out: out,
		logger: slogx.New(slogx.Config{
			Service: "sweetshop",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state store: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate local state store: %w", err)
	}
	app.db = db

	app.notifier = ui.NewNotifier(app.out)

	app.client = shopsdk.NewClient(cfg.APIBaseURL)
	app.client.HTTPClient.Timeout = cfg.HTTPTimeout

	app.session = session.New(app.client, db.Credentials(), app.notifier, app.logger)

	// The token always comes from the session; the SDK never stores one.
	app.client.TokenSource = app.session.Token

	// A 401 from any endpoint kills the session and forces the login view.
	app.client.OnUnauthorized = func() {
		app.session.Expire(context.Background())
		app.Navigate(nav.RouteLogin, true)
	}

	return app, nil
}

// Close releases the local state store.
func (app *Application) Close() error {
	return app.db.Close()
}

// Navigate implements nav.Navigator by rendering the target view directly;
// a terminal has no history to manipulate, so replaceHistory is moot here.
func (app *Application) Navigate(target nav.Route, _ bool) {
	switch target {
	case nav.RouteLogin, nav.RouteRegister:
		ui.RenderLoginPrompt(app.out)
	default:
		fmt.Fprintln(app.out, "Run `sweetshop browse` to see the catalog.")
	}
}

// guardState snapshots the session for the route guard.
func (app *Application) guardState() nav.State {
	return nav.State{
		Loading:       app.session.Loading(),
		Authenticated: app.session.IsAuthenticated(),
	}
}

// dispatch routes a view request through the guard. The view function only
// runs when the guard renders the requested route.
func (app *Application) dispatch(route nav.Route, view func() error) error {
	decision := nav.Resolve(route, app.guardState())

	switch decision.Action {
	case nav.ActionWait:
		ui.RenderWaiting(app.out)
		return nil
	case nav.ActionRedirect:
		app.Navigate(decision.Target, decision.ReplaceHistory)
		return nil
	default:
		return view()
	}
}
