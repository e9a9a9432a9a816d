package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/common"
)

var getMultiline = GetMultiline

// Categories prints the category chips with their numbers.
func (a *App) Categories() {
	for i, c := range models.Categories() {
		fmt.Fprintf(a.out, "%d) %s %s [%s]\n", i+1, c.Emoji, c.Label, string(c.ID))
	}
}

// Post walks through the create-offer form: skill name, category chip and
// description, then submits it. On success the form is cleared and the home
// tab is shown; on a validation error the entered fields are kept.
func (a *App) Post(ctx context.Context) error {
	if err := a.SwitchTab(RouteCreate); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Create New Skill: Share your knowledge with others")

	skill, err := getSimpleText(a.reader, "Skill Name *  (e.g. Python Programming, Guitar Lessons, Cooking)", a.out)
	if err != nil {
		return err
	}
	a.form.SetSkill(skill)

	a.Categories()
	choice, err := getSimpleText(a.reader, "Category * (number or name)", a.out)
	if err != nil {
		return err
	}
	a.form.SelectCategory(chipByNumber(choice))

	desc, err := getMultiline(a.reader, "Description *", a.out)
	if err != nil {
		return err
	}
	a.form.SetDescription(desc)

	p, err := withLoading(ctx, a.out, "Posting...", a.form.SubmitDraft)
	if err != nil {
		var verr *common.ValidationError
		if errors.As(err, &verr) {
			notice(a.out, "Incomplete", verr.Message)
		} else {
			notice(a.out, "Error", err.Error())
		}
		return err
	}

	notice(a.out, "Posted", "Your skill has been posted successfully!")
	a.log.Debug(ctx, "posted", "id", p.ID, "category", string(p.Category))
	return a.List(ctx)
}

// chipByNumber maps "1".."9" to the category tag at that position. Any other
// input is returned trimmed, for posting.Form to resolve.
func chipByNumber(s string) string {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	cats := models.Categories()
	if n < 1 || n > len(cats) {
		return s
	}
	return string(cats[n-1].ID)
}
