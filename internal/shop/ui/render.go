// Package ui renders command output. Everything here is presentational;
// no decisions are made and no state is owned.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rbpata/sweetshop/pkg/shopsdk"
	"github.com/rbpata/sweetshop/pkg/tokenx"
)

// RenderSweets prints the catalog as an aligned table. A non-zero cachedAt
// marks the data as a local snapshot rather than a live fetch.
func RenderSweets(out io.Writer, sweets []shopsdk.Sweet, cachedAt time.Time) {
	if !cachedAt.IsZero() {
		fmt.Fprintf(out, "(cached catalog from %s — backend unreachable)\n", cachedAt.Local().Format(time.RFC822))
	}

	if len(sweets) == 0 {
		fmt.Fprintln(out, "No sweets found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tQUANTITY")
	for _, s := range sweets {
		stock := fmt.Sprintf("%d", s.Quantity)
		if s.Quantity == 0 {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%s\n", s.ID, s.Name, s.Category, s.Price, stock)
	}
	_ = w.Flush()
}

// RenderUser prints the logged-in identity.
func RenderUser(out io.Writer, user tokenx.User) {
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(out, "Logged in as %s (%s)\n", user.Username, role)
}

// RenderLoginPrompt is the login view for a terminal: it tells the user how
// to authenticate.
func RenderLoginPrompt(out io.Writer) {
	fmt.Fprintln(out, "You are not logged in.")
	fmt.Fprintln(out, "  sweetshop login -u <username> -p <password>")
	fmt.Fprintln(out, "  sweetshop register -u <username> -p <password>")
}

// RenderWaiting is the neutral indicator shown while the session is still
// settling.
func RenderWaiting(out io.Writer) {
	fmt.Fprintln(out, "Loading…")
}
