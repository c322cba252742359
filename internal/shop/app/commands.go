package app

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/rbpata/sweetshop/internal/shop/nav"
	"github.com/rbpata/sweetshop/pkg/shopsdk"
)

// Run restores the session and dispatches a single CLI command as a view
// navigation. Commands that map to protected views go through the route
// guard; an unauthenticated user is bounced to the login prompt instead.
func (app *Application) Run(ctx context.Context, args []string) error {
	app.session.Init(ctx)

	if len(args) == 0 {
		app.usage()
		return nil
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return app.cmdLogin(ctx, rest)
	case "register":
		return app.cmdRegister(ctx, rest)
	case "logout":
		app.session.Logout(ctx)
		return nil
	case "whoami":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewWhoami() })
	case "browse":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewBrowse(ctx) })
	case "search":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewSearch(ctx, rest) })
	case "buy":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewBuy(ctx, rest) })
	case "restock":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewRestock(ctx, rest) })
	case "add":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewAdd(ctx, rest) })
	case "update":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewUpdate(ctx, rest) })
	case "delete":
		return app.dispatch(nav.RouteDashboard, func() error { return app.viewDelete(ctx, rest) })
	default:
		// Unknown commands behave like unmatched paths: go home.
		return app.dispatch(nav.Route("/"+cmd), func() error { return nil })
	}
}

func (app *Application) usage() {
	fmt.Fprintln(app.out, `Sweet Shop client

Usage: sweetshop <command> [flags]

Commands:
  login -u <user> -p <password>   Authenticate against the shop
  register -u <user> -p <password>
  logout
  whoami                          Show the logged-in user
  browse                          List the catalog
  search [-name] [-category] [-min] [-max]
  buy <id>                        Purchase one unit
  restock <id>                    Restock a sweet (admin)
  add -name -category -price -qty Create a sweet (admin)
  update <id> [flags]             Edit a sweet (admin)
  delete <id>                     Remove a sweet (admin)`)
}

func (app *Application) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return app.dispatch(nav.RouteLogin, func() error {
		return app.session.Login(ctx, *username, *password)
	})
}

func (app *Application) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return app.dispatch(nav.RouteRegister, func() error {
		return app.session.Register(ctx, shopsdk.RegisterRequest{
			Username: *username,
			Password: *password,
		})
	})
}

// parseID reads the required leading positional item ID.
func parseID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("expected a sweet ID")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid sweet ID %q", args[0])
	}
	return id, args[1:], nil
}
