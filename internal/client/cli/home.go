package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/client/catalog"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
)

// List shows the full feed.
func (a *App) List(ctx context.Context) error {
	if err := a.SwitchTab(RouteHome); err != nil {
		return err
	}
	list, err := a.catalog.List(ctx)
	if err != nil {
		notice(a.out, "Error", err.Error())
		return err
	}
	a.renderOffers(list)
	return nil
}

// Search shows the offers matching query. An empty query shows the full feed.
func (a *App) Search(ctx context.Context, query string) error {
	if err := a.SwitchTab(RouteHome); err != nil {
		return err
	}
	list, err := a.catalog.Filter(ctx, query)
	if err != nil {
		notice(a.out, "Error", err.Error())
		return err
	}
	a.renderOffers(list)
	return nil
}

// Refresh reloads the current tab: the feed on home, the profile on the
// profile tab. Both take the artificial delay.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		notice(a.out, "Sign in required", "Please sign in first.")
		return errNotSignedIn
	}
	if a.route == RouteProfile {
		return a.refreshProfile(ctx)
	}

	a.route = RouteHome
	list, err := withLoading(ctx, a.out, "Refreshing", a.catalog.Refresh)
	if err != nil {
		notice(a.out, "Error", err.Error())
		return err
	}
	a.renderOffers(list)
	return nil
}

// Show prints the details of one offer.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.SwitchTab(RouteHome); err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}
	o, err := a.catalog.Get(ctx, id)
	if err != nil {
		a.offerFailed(id, err)
		return err
	}
	fmt.Fprintf(a.out, "%s\nOffered by: %s\n\n%s\n\nCategory: %s\n", o.Skill, o.User, o.Description, o.Category)
	fmt.Fprintf(a.out, "(type 'connect %s' to send a connection request)\n", o.ID)
	return nil
}

// Connect sends the (simulated) connection request for an offer.
func (a *App) Connect(ctx context.Context, id string) error {
	if err := a.SwitchTab(RouteHome); err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(a.out, "Usage: connect <id>")
		return nil
	}
	msg, err := a.catalog.Connect(ctx, id)
	if err != nil {
		a.offerFailed(id, err)
		return err
	}
	notice(a.out, "Success", msg)
	return nil
}

func (a *App) offerFailed(id string, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		notice(a.out, "Not found", fmt.Sprintf("No offer with ID %q.", id))
		return
	}
	notice(a.out, "Error", err.Error())
}

func (a *App) renderOffers(list []models.SkillOffer) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No skills found")
		fmt.Fprintln(a.out, "Try adjusting your search terms or explore all available skills.")
		return
	}
	for _, o := range list {
		fmt.Fprintf(a.out, "[%s] %s (%s)\n    Offered by %s\n    %s\n", o.ID, o.Skill, o.Category, o.User, o.Description)
	}
}
