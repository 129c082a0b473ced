// Package onboarding implements the five-step sign-up flow that produces the
// consumer's User record.
package onboarding

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mechriz/zen-fit/models"
)

type Step int

const (
	StepPersonalInfo Step = iota
	StepPhysicalDetails
	StepFitnessGoals
	StepMentalWellnessGoals
	StepCompleteSetup
)

var stepTitles = []string{
	"Personal Info",
	"Physical Details",
	"Fitness Goals",
	"Mental Wellness Goals",
	"Complete Setup",
}

// TotalSteps is the number of steps in the flow.
var TotalSteps = len(stepTitles)

func (s Step) Title() string {
	if s < 0 || int(s) >= len(stepTitles) {
		return ""
	}
	return stepTitles[s]
}

// StepTitles returns the step names in order.
func StepTitles() []string {
	return slices.Clone(stepTitles)
}

var FitnessGoalOptions = []string{
	"Lose Weight",
	"Build Muscle",
	"Improve Endurance",
	"Increase Flexibility",
	"General Fitness",
	"Sports Performance",
}

var MentalHealthGoalOptions = []string{
	"Stress Management",
	"Anxiety Relief",
	"Better Sleep",
	"Mood Improvement",
	"Self-Confidence",
	"Mindfulness",
}

type Field string

const (
	FieldName   Field = "name"
	FieldEmail  Field = "email"
	FieldAge    Field = "age"
	FieldWeight Field = "weight"
	FieldHeight Field = "height"
)

type GoalKind string

const (
	GoalFitness GoalKind = "fitness"
	GoalMental  GoalKind = "mental"
)

var (
	ErrUnknownField = errors.New("unknown onboarding field")
	ErrUnknownGoal  = errors.New("unknown goal")
	ErrIncomplete   = errors.New("onboarding step incomplete")
)

// ValidationError lists the form fields that could not be parsed.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid onboarding form: " + strings.Join(parts, "; ")
}

// Form is the raw input collected across the steps. Numbers stay text until
// Complete parses them.
type Form struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Age               string   `json:"age"`
	Weight            string   `json:"weight"`
	Height            string   `json:"height"`
	FitnessGoals      []string `json:"fitnessGoals"`
	MentalHealthGoals []string `json:"mentalHealthGoals"`
}

// Wizard tracks the current step and the form being filled in.
type Wizard struct {
	step Step
	form Form
}

func NewWizard() *Wizard {
	return &Wizard{}
}

// FromForm loads a fully submitted form, rejecting goals not on offer.
func FromForm(f Form) (*Wizard, error) {
	w := NewWizard()
	w.form.Name = f.Name
	w.form.Email = f.Email
	w.form.Age = f.Age
	w.form.Weight = f.Weight
	w.form.Height = f.Height
	for _, g := range f.FitnessGoals {
		if !slices.Contains(w.form.FitnessGoals, g) {
			if err := w.ToggleGoal(GoalFitness, g); err != nil {
				return nil, err
			}
		}
	}
	for _, g := range f.MentalHealthGoals {
		if !slices.Contains(w.form.MentalHealthGoals, g) {
			if err := w.ToggleGoal(GoalMental, g); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Form() Form {
	f := w.form
	f.FitnessGoals = slices.Clone(w.form.FitnessGoals)
	f.MentalHealthGoals = slices.Clone(w.form.MentalHealthGoals)
	return f
}

func (w *Wizard) Set(field Field, value string) error {
	switch field {
	case FieldName:
		w.form.Name = value
	case FieldEmail:
		w.form.Email = value
	case FieldAge:
		w.form.Age = value
	case FieldWeight:
		w.form.Weight = value
	case FieldHeight:
		w.form.Height = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ToggleGoal adds goal to the selection, or removes it when already selected.
func (w *Wizard) ToggleGoal(kind GoalKind, goal string) error {
	var options []string
	var selected *[]string
	switch kind {
	case GoalFitness:
		options, selected = FitnessGoalOptions, &w.form.FitnessGoals
	case GoalMental:
		options, selected = MentalHealthGoalOptions, &w.form.MentalHealthGoals
	default:
		return fmt.Errorf("%w: kind %q", ErrUnknownGoal, kind)
	}
	if !slices.Contains(options, goal) {
		return fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
	}
	if i := slices.Index(*selected, goal); i >= 0 {
		*selected = slices.Delete(*selected, i, i+1)
		return nil
	}
	*selected = append(*selected, goal)
	return nil
}

// CanProceed reports whether the current step's required input is present.
func (w *Wizard) CanProceed() bool {
	return w.stepComplete(w.step)
}

func (w *Wizard) stepComplete(s Step) bool {
	f := w.form
	switch s {
	case StepPersonalInfo:
		return f.Name != "" && f.Email != ""
	case StepPhysicalDetails:
		return f.Age != "" && f.Weight != "" && f.Height != ""
	case StepFitnessGoals:
		return len(f.FitnessGoals) > 0
	case StepMentalWellnessGoals:
		return len(f.MentalHealthGoals) > 0
	case StepCompleteSetup:
		return true
	}
	return false
}

// Next advances one step when the current one is complete.
func (w *Wizard) Next() bool {
	if int(w.step) >= TotalSteps-1 || !w.CanProceed() {
		return false
	}
	w.step++
	return true
}

func (w *Wizard) Previous() bool {
	if w.step == StepPersonalInfo {
		return false
	}
	w.step--
	return true
}

func (w *Wizard) IsLast() bool {
	return int(w.step) == TotalSteps-1
}

// Percent is the progress bar value for the current step, rounded.
func (w *Wizard) Percent() int {
	return Percent(w.step, TotalSteps)
}

func Percent(step Step, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(step+1) / float64(total) * 100))
}

// Complete builds the User from the form. Every step must be complete and
// the physical details must be numbers.
func (w *Wizard) Complete(now time.Time) (*models.User, error) {
	for s := StepPersonalInfo; s < StepCompleteSetup; s++ {
		if !w.stepComplete(s) {
			return nil, fmt.Errorf("%w: %s", ErrIncomplete, s.Title())
		}
	}

	invalid := map[string]string{}
	age, err := strconv.Atoi(strings.TrimSpace(w.form.Age))
	if err != nil {
		invalid[string(FieldAge)] = "must be a whole number"
	}
	weight, ok := parseMeasure(w.form.Weight)
	if !ok {
		invalid[string(FieldWeight)] = "must be a number"
	}
	height, ok := parseMeasure(w.form.Height)
	if !ok {
		invalid[string(FieldHeight)] = "must be a number"
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}

	return &models.User{
		ID:                uuid.New().String(),
		Name:              w.form.Name,
		Email:             w.form.Email,
		Age:               age,
		Weight:            weight,
		Height:            height,
		FitnessGoals:      slices.Clone(w.form.FitnessGoals),
		MentalHealthGoals: slices.Clone(w.form.MentalHealthGoals),
		JoinedAt:          now,
	}, nil
}

func parseMeasure(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
