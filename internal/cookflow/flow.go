// Package cookflow drives a guided cooking session through its stages:
// serving selection, the consolidated ingredient overview, the step
// walkthrough, and completion. A session works on a snapshot of the
// recipe, so edits made while cooking never shift the steps mid-session.
package cookflow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
	"github.com/kbenhamou/souschef/internal/scale"
)

// Serving counts selectable in a session.
const (
	MinServings = 1
	MaxServings = 24
)

// Stage identifies where in the session the cook currently is.
type Stage int

const (
	StageServings Stage = iota
	StageIngredients
	StageSteps
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageServings:
		return "servings"
	case StageIngredients:
		return "ingredients"
	case StageSteps:
		return "steps"
	case StageDone:
		return "done"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Flow is one cooking session. It lives in memory only; abandoning the
// session loses nothing but the session itself.
type Flow struct {
	ID               uuid.UUID
	Recipe           *domain.Recipe
	SelectedServings int
	Stage            Stage
	StepIndex        int

	log *logger.Logger
}

// Start opens a session for the recipe, beginning at serving selection
// with the recipe's own serving count preselected.
func Start(r *domain.Recipe, log *logger.Logger) *Flow {
	f := &Flow{
		ID:               uuid.New(),
		Recipe:           r.Clone(),
		SelectedServings: ClampServings(r.Servings),
		Stage:            StageServings,
		log:              log,
	}
	log.Info("cook session %s started for recipe %s", f.ID, r.ID)
	return f
}

// ClampServings forces n into the selectable range. A non-positive count
// comes out as the minimum.
func ClampServings(n int) int {
	if n < MinServings {
		return MinServings
	}
	if n > MaxServings {
		return MaxServings
	}
	return n
}

// SelectServings records the serving choice. Only valid during serving
// selection; out-of-range values are clamped rather than rejected.
func (f *Flow) SelectServings(n int) error {
	if f.Stage != StageServings {
		return fmt.Errorf("%w: servings are fixed once cooking starts", domain.ErrFlowFinished)
	}
	f.SelectedServings = ClampServings(n)
	return nil
}

// Next advances the session one stage, or one step while walking the
// steps. Advancing past the final step completes the session; advancing a
// completed session returns ErrFlowFinished.
func (f *Flow) Next() error {
	switch f.Stage {
	case StageServings:
		f.Stage = StageIngredients
	case StageIngredients:
		f.Stage = StageSteps
		f.StepIndex = 0
	case StageSteps:
		if f.StepIndex+1 >= len(f.Recipe.Steps) {
			f.Stage = StageDone
			f.log.Info("cook session %s completed", f.ID)
			return nil
		}
		f.StepIndex++
	case StageDone:
		return domain.ErrFlowFinished
	}
	return nil
}

// Back moves the session one step or stage backwards. Backing out of
// serving selection is the caller's cue to leave the session; it reports
// done=true and changes nothing.
func (f *Flow) Back() (done bool) {
	switch f.Stage {
	case StageServings:
		return true
	case StageIngredients:
		f.Stage = StageServings
	case StageSteps:
		if f.StepIndex > 0 {
			f.StepIndex--
			return false
		}
		f.Stage = StageIngredients
	case StageDone:
		f.Stage = StageSteps
		f.StepIndex = len(f.Recipe.Steps) - 1
	}
	return false
}

// Restart rewinds a session to serving selection, keeping the snapshot and
// the serving choice. Used by "cook again" on the completion screen.
func (f *Flow) Restart() {
	f.Stage = StageServings
	f.StepIndex = 0
}

// CurrentStep returns the step being walked, or nil outside the walkthrough.
func (f *Flow) CurrentStep() *domain.Step {
	if f.Stage != StageSteps || f.StepIndex >= len(f.Recipe.Steps) {
		return nil
	}
	return &f.Recipe.Steps[f.StepIndex]
}

// StepIngredients returns the current step's ingredients scaled to the
// selected serving count.
func (f *Flow) StepIngredients() []domain.Ingredient {
	step := f.CurrentStep()
	if step == nil {
		return nil
	}
	return scale.Ingredients(step.Ingredients, f.Recipe.Servings, f.SelectedServings)
}

// ShoppingList returns the consolidated ingredient list scaled to the
// selected serving count.
func (f *Flow) ShoppingList() []scale.Entry {
	return scale.ShoppingList(f.Recipe, f.SelectedServings)
}

// Progress reports the walkthrough position as (current, total), 1-based.
// Outside the walkthrough, current is 0.
func (f *Flow) Progress() (current, total int) {
	total = len(f.Recipe.Steps)
	if f.Stage == StageSteps {
		current = f.StepIndex + 1
	}
	return current, total
}
