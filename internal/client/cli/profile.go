package cli

import (
	"context"
	"fmt"
	"strings"
)

// Profile prints the signed-in user's profile.
func (a *App) Profile() error {
	if err := a.SwitchTab(RouteProfile); err != nil {
		return err
	}
	u, ok := a.session.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Loading...")
		return nil
	}

	fmt.Fprintf(a.out, "(%s) %s\n%s\n\n%s\n\n", u.Initials(), u.Name, u.Email, u.Bio)
	fmt.Fprintf(a.out, "Skills I Offer: %s\n", skillList(u.SkillsOffered, "No skills offered yet"))
	fmt.Fprintf(a.out, "Skills I Want to Learn: %s\n", skillList(u.SkillsWanted, "No skills wanted yet"))
	fmt.Fprintf(a.out, "Stats: %d skills shared · %d skills to learn · %d connections\n",
		len(u.SkillsOffered), len(u.SkillsWanted), 0)
	return nil
}

// EditProfile is not implemented yet.
func (a *App) EditProfile() error {
	if err := a.SwitchTab(RouteProfile); err != nil {
		return err
	}
	notice(a.out, "Edit Profile", "Profile editing will be available in a future update!")
	return nil
}

// refreshProfile waits the artificial delay and shows the profile again.
func (a *App) refreshProfile(ctx context.Context) error {
	_, err := withLoading(ctx, a.out, "Refreshing", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.delay.Wait(ctx)
	})
	if err != nil {
		notice(a.out, "Error", err.Error())
		return err
	}
	return a.Profile()
}

func skillList(skills []string, empty string) string {
	if len(skills) == 0 {
		return empty
	}
	return strings.Join(skills, ", ")
}
