package cookflow

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
)

// Param keys of the resume bundle.
const (
	ParamRecipe      = "recipe"
	ParamServings    = "servings"
	ParamCurrentStep = "currentStep"
)

// Resume rebuilds a session from a string-keyed parameter bundle, the form
// session state takes when handed across process boundaries. The recipe
// payload must decode; the numeric parameters are best-effort, falling
// back to the recipe's serving count and the first step.
func Resume(params map[string]string, log *logger.Logger) (*Flow, error) {
	payload, ok := params[ParamRecipe]
	if !ok || payload == "" {
		return nil, fmt.Errorf("%w: missing recipe payload", domain.ErrInvalidPayload)
	}

	var recipe domain.Recipe
	if err := json.Unmarshal([]byte(payload), &recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if len(recipe.Steps) == 0 {
		return nil, fmt.Errorf("%w: recipe has no steps", domain.ErrInvalidPayload)
	}

	servings := parseIntOr(params[ParamServings], recipe.Servings)
	step := parseIntOr(params[ParamCurrentStep], 0)
	if step < 0 || step >= len(recipe.Steps) {
		step = 0
	}

	f := &Flow{
		ID:               uuid.New(),
		Recipe:           recipe.Clone(),
		SelectedServings: ClampServings(servings),
		Stage:            StageSteps,
		StepIndex:        step,
		log:              log,
	}
	log.Info("cook session %s resumed at step %d", f.ID, step+1)
	return f, nil
}

// Params flattens the session into a resume bundle.
func (f *Flow) Params() (map[string]string, error) {
	payload, err := json.Marshal(f.Recipe)
	if err != nil {
		return nil, fmt.Errorf("encoding recipe payload: %w", err)
	}
	return map[string]string{
		ParamRecipe:      string(payload),
		ParamServings:    strconv.Itoa(f.SelectedServings),
		ParamCurrentStep: strconv.Itoa(f.StepIndex),
	}, nil
}

func parseIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
