package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/rbpata/sweetshop/internal/shop/store"
	"github.com/rbpata/sweetshop/internal/shop/ui"
	"github.com/rbpata/sweetshop/pkg/shopsdk"
)

func (app *Application) viewWhoami() error {
	user, ok := app.session.CurrentUser()
	if !ok {
		// Unreachable behind the guard; keep a sane fallback anyway.
		ui.RenderLoginPrompt(app.out)
		return nil
	}

	ui.RenderUser(app.out, user)
	return nil
}

func (app *Application) viewBrowse(ctx context.Context) error {
	sweets, err := app.client.ListSweets(ctx)
	if err != nil {
		return app.browseFallback(ctx, err)
	}

	if cerr := app.db.SweetsCache().ReplaceAll(ctx, sweets, time.Now()); cerr != nil {
		app.logger.Warn("failed to refresh catalog cache", "error", cerr)
	}

	ui.RenderSweets(app.out, sweets, time.Time{})
	return nil
}

// browseFallback serves the cached snapshot when the backend could not be
// reached at all. Server-side rejections are surfaced, not masked.
func (app *Application) browseFallback(ctx context.Context, fetchErr error) error {
	var apiErr *shopsdk.APIError
	if errors.As(fetchErr, &apiErr) {
		if !shopsdk.IsUnauthorized(fetchErr) {
			app.notifier.Error(apiErr.Message)
		}
		return fetchErr
	}

	sweets, refreshedAt, err := app.db.SweetsCache().List(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			app.logger.Warn("failed to read catalog cache", "error", err)
		}
		app.notifier.Error("Could not reach the shop and no cached catalog exists")
		return fetchErr
	}

	ui.RenderSweets(app.out, sweets, refreshedAt)
	return nil
}

func (app *Application) viewSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	name := fs.String("name", "", "name substring")
	category := fs.String("category", "", "exact category")
	min := fs.String("min", "", "minimum price")
	max := fs.String("max", "", "maximum price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := shopsdk.SearchFilter{Name: *name, Category: *category}

	if *min != "" {
		v, err := strconv.ParseFloat(*min, 64)
		if err != nil {
			return fmt.Errorf("invalid -min %q", *min)
		}
		filter.PriceMin = &v
	}
	if *max != "" {
		v, err := strconv.ParseFloat(*max, 64)
		if err != nil {
			return fmt.Errorf("invalid -max %q", *max)
		}
		filter.PriceMax = &v
	}

	sweets, err := app.client.SearchSweets(ctx, filter)
	if err != nil {
		app.notifier.Error(shopsdk.ErrorMessage(err, "Search failed"))
		return err
	}

	ui.RenderSweets(app.out, sweets, time.Time{})
	return nil
}

func (app *Application) viewBuy(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if _, err := app.client.PurchaseSweet(ctx, id); err != nil {
		app.notifier.Error(shopsdk.ErrorMessage(err, "Purchase failed"))
		return err
	}

	app.invalidateCatalogCache(ctx)
	app.notifier.Success("Sweet purchased successfully!")
	return nil
}

func (app *Application) viewRestock(ctx context.Context, args []string) error {
	if err := app.requireAdmin(); err != nil {
		return err
	}

	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if _, err := app.client.RestockSweet(ctx, id); err != nil {
		app.notifier.Error(shopsdk.ErrorMessage(err, "Restock failed"))
		return err
	}

	app.invalidateCatalogCache(ctx)
	app.notifier.Success("Sweet restocked successfully!")
	return nil
}

func (app *Application) viewAdd(ctx context.Context, args []string) error {
	if err := app.requireAdmin(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "sweet name")
	category := fs.String("category", "", "category")
	price := fs.Float64("price", 0, "unit price")
	qty := fs.Int("qty", 0, "initial stock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *category == "" {
		return fmt.Errorf("both -name and -category are required")
	}

	if _, err := app.client.AddSweet(ctx, shopsdk.SweetInput{
		Name:     *name,
		Category: *category,
		Price:    *price,
		Quantity: *qty,
	}); err != nil {
		app.notifier.Error(shopsdk.ErrorMessage(err, "Failed to add sweet"))
		return err
	}

	app.invalidateCatalogCache(ctx)
	app.notifier.Success("Sweet added successfully!")
	return nil
}

func (app *Application) viewUpdate(ctx context.Context, args []string) error {
	if err := app.requireAdmin(); err != nil {
		return err
	}

	id, rest, err := parseID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "sweet name")
	category := fs.String("category", "", "category")
	price := fs.Float64("price", 0, "unit price")
	qty := fs.Int("qty", 0, "stock")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	// Only explicitly set flags become part of the partial update.
	var update shopsdk.SweetUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = name
		case "category":
			update.Category = category
		case "price":
			update.Price = price
		case "qty":
			update.Quantity = qty
		}
	})

	if update == (shopsdk.SweetUpdate{}) {
		return fmt.Errorf("nothing to update; pass at least one of -name, -category, -price, -qty")
	}

	resp, err := app.client.UpdateSweet(ctx, id, update)
	if err != nil {
		app.notifier.Error(shopsdk.ErrorMessage(err, "Failed to update sweet"))
		return err
	}

	app.invalidateCatalogCache(ctx)
	app.notifier.Success("Sweet updated successfully!")
	ui.RenderSweets(app.out, []shopsdk.Sweet{resp.Sweet}, time.Time{})
	return nil
}

func (app *Application) viewDelete(ctx context.Context, args []string) error {
	if err := app.requireAdmin(); err != nil {
		return err
	}

	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if _, err := app.client.DeleteSweet(ctx, id); err != nil {
		app.notifier.Error(shopsdk.ErrorMessage(err, "Failed to delete sweet"))
		return err
	}

	app.invalidateCatalogCache(ctx)
	app.notifier.Success("Sweet deleted successfully!")
	return nil
}

// requireAdmin is a friendliness check only; the server independently
// enforces the admin policy on every call.
func (app *Application) requireAdmin() error {
	if app.session.IsAdmin() {
		return nil
	}

	app.notifier.Error("Admin only")
	return fmt.Errorf("admin privileges required")
}

func (app *Application) invalidateCatalogCache(ctx context.Context) {
	if err := app.db.SweetsCache().Clear(ctx); err != nil {
		app.logger.Warn("failed to invalidate catalog cache", "error", err)
	}
}
