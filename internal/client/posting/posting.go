// Package posting implements the create-offer form.
//
// Submitting validates the draft, waits the artificial delay and returns a
// receipt. The offer is not added to the catalog: posting is simulated
// until the client has a backend to send it to.
package posting

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/latency"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/google/uuid"
)

// Validation reasons reported by Submit.
const (
	MissingSkillOrDescription = "MissingSkillOrDescription"
	MissingCategory           = "MissingCategory"
	UnknownCategory           = "UnknownCategory"
)

// Posted is the receipt of a successful submission.
type Posted struct {
	ID          string
	Skill       string
	Description string
	Category    models.Category
	PostedAt    time.Time
}

// Draft is the current content of the form fields.
type Draft struct {
	Skill       string
	Description string
	Category    string
}

// Form holds the draft and performs submissions.
type Form struct {
	mu      sync.Mutex
	draft   Draft
	posting bool

	delay latency.Simulator
	log   logging.Logger
	now   func() time.Time
}

func NewForm(delay latency.Simulator, log logging.Logger) *Form {
	return &Form{delay: delay, log: log.With("component", "posting"), now: time.Now}
}

func (f *Form) SetSkill(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Skill = s
}

func (f *Form) SetDescription(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Description = s
}

// SelectCategory sets the selected chip. An empty string clears it.
func (f *Form) SelectCategory(c string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Category = c
}

// Draft returns the current field values.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Reset clears every field.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = Draft{}
}

// Posting reports whether a submission is waiting on its delay.
func (f *Form) Posting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.posting
}

// SubmitDraft submits the current field values.
func (f *Form) SubmitDraft(ctx context.Context) (Posted, error) {
	d := f.Draft()
	return f.Submit(ctx, d.Skill, d.Description, d.Category)
}

// Submit validates the input, waits the delay and resets the form.
//
// Either text field blank after trimming gives a validation error with
// reason MissingSkillOrDescription; no category gives MissingCategory; a tag
// outside the nine categories gives UnknownCategory. On error the draft is
// left as it was.
func (f *Form) Submit(ctx context.Context, skill, description, category string) (Posted, error) {
	if common.IsBlank(skill) || common.IsBlank(description) {
		return Posted{}, common.NewValidationError(MissingSkillOrDescription,
			"Please enter both a skill name and description.")
	}
	if common.IsBlank(category) {
		return Posted{}, common.NewValidationError(MissingCategory, "Please select a category.")
	}
	cat, err := models.ParseCategory(category)
	if err != nil {
		return Posted{}, common.NewValidationError(UnknownCategory, fmt.Sprintf("Unknown category %q.", category))
	}

	f.mu.Lock()
	if f.posting {
		f.mu.Unlock()
		return Posted{}, fmt.Errorf("post already in progress")
	}
	f.posting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.posting = false
		f.mu.Unlock()
	}()

	p := Posted{
		ID:          uuid.NewString(),
		Skill:       strings.TrimSpace(skill),
		Description: strings.TrimSpace(description),
		Category:    cat,
	}
	f.log.Info(ctx, "create post", "title", p.Skill, "description", p.Description, "category", string(p.Category))

	if err := f.delay.Wait(ctx); err != nil {
		return Posted{}, fmt.Errorf("post: %w", err)
	}

	p.PostedAt = f.now()
	f.Reset()
	return p, nil
}
