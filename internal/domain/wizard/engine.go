package wizard

import (
	"fmt"

	"venuehub/internal/domain/flow"
)

// Transition tells the caller what a navigation call did.
type Transition int

const (
	// TransitionNext moved to the following step.
	TransitionNext Transition = iota + 1
	// TransitionComplete means the last step was accepted; the caller submits.
	TransitionComplete
	// TransitionPrevious moved to the preceding step.
	TransitionPrevious
	// TransitionExit means retreat was requested on the first step; the caller leaves the wizard.
	TransitionExit
)

func (t Transition) String() string {
	switch t {
	case TransitionNext:
		return "next"
	case TransitionComplete:
		return "complete"
	case TransitionPrevious:
		return "previous"
	case TransitionExit:
		return "exit"
	default:
		return "none"
	}
}

// State is one wizard instance. It is a value: engine operations return a
// new State and never modify the one passed in.
type State struct {
	Category flow.Category
	Flow     flow.Definition
	Index    int
	Answers  map[flow.StepKey]Answer
}

func (s State) clone() State {
	answers := make(map[flow.StepKey]Answer, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	s.Answers = answers
	return s
}

func (s State) valid() bool {
	return len(s.Flow.Steps) > 0 && s.Index >= 0 && s.Index < len(s.Flow.Steps)
}

// Engine drives wizard states. It holds no per-wizard data and is safe for
// concurrent use.
type Engine struct {
	catalog *flow.Catalog
}

func NewEngine(catalog *flow.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog exposes the flow catalog the engine resolves categories against.
func (e *Engine) Catalog() *flow.Catalog { return e.catalog }

// Start resolves the category and returns a fresh state on its first step.
func (e *Engine) Start(category flow.Category) (State, error) {
	def, err := e.catalog.Resolve(category)
	if err != nil {
		return State{}, err
	}
	s := State{
		Category: category,
		Flow:     def,
		Index:    0,
		Answers:  map[flow.StepKey]Answer{},
	}
	enter(s)
	return s, nil
}

// Restore rebuilds a state saved earlier. The flow is resolved again from
// the catalog; answers must fit it.
func (e *Engine) Restore(category flow.Category, index int, answers map[flow.StepKey]Answer) (State, error) {
	def, err := e.catalog.Resolve(category)
	if err != nil {
		return State{}, err
	}
	if index < 0 || index >= def.Len() {
		return State{}, fmt.Errorf("%w: index %d outside flow of %d steps", ErrInvalidState, index, def.Len())
	}

	s := State{Category: category, Flow: def, Index: index, Answers: make(map[flow.StepKey]Answer, len(answers))}
	for k, a := range answers {
		if !def.Contains(k) {
			return State{}, fmt.Errorf("%w: %q", ErrStepNotInFlow, k)
		}
		if a == nil || a.Step() != k {
			return State{}, fmt.Errorf("%w: answer for %q", ErrInvalidAnswerShape, k)
		}
		s.Answers[k] = a.normalize()
	}
	return s, nil
}

// CurrentStep returns the key of the step being shown.
func (e *Engine) CurrentStep(s State) flow.StepKey {
	if !s.valid() {
		return ""
	}
	return s.Flow.Steps[s.Index]
}

// SetAnswer replaces the answer of key. The answer must be the variant that
// belongs to key.
func (e *Engine) SetAnswer(s State, key flow.StepKey, a Answer) (State, error) {
	if !s.valid() {
		return s, ErrInvalidState
	}
	if !s.Flow.Contains(key) {
		return s, fmt.Errorf("%w: %q", ErrStepNotInFlow, key)
	}
	if a == nil {
		return s, fmt.Errorf("%w: missing answer for %q", ErrInvalidAnswerShape, key)
	}
	if a.Step() != key {
		return s, fmt.Errorf("%w: %q payload given for %q", ErrInvalidAnswerShape, a.Step(), key)
	}

	next := s.clone()
	next.Answers[key] = a.normalize()
	return next, nil
}

// Answer returns the stored answer of key, if any.
func (e *Engine) Answer(s State, key flow.StepKey) (Answer, bool) {
	a, ok := s.Answers[key]
	return a, ok
}

// CanAdvance reports whether the current step's rule accepts its answer.
func (e *Engine) CanAdvance(s State) bool {
	if !s.valid() {
		return false
	}
	key := s.Flow.Steps[s.Index]
	def, ok := definitions[key]
	if !ok {
		return false
	}
	return def.Rule(s.Answers[key])
}

// Advance moves forward one step. On the last step it returns the state
// unchanged with TransitionComplete.
func (e *Engine) Advance(s State) (State, Transition, error) {
	if !e.CanAdvance(s) {
		return s, 0, fmt.Errorf("%w: %s", ErrStepNotReady, e.CurrentStep(s))
	}
	if s.Index == len(s.Flow.Steps)-1 {
		return s, TransitionComplete, nil
	}

	next := s.clone()
	next.Index++
	enter(next)
	return next, TransitionNext, nil
}

// Retreat moves back one step. On the first step it returns the state
// unchanged with TransitionExit.
func (e *Engine) Retreat(s State) (State, Transition) {
	if !s.valid() || s.Index == 0 {
		return s, TransitionExit
	}
	next := s.clone()
	next.Index--
	enter(next)
	return next, TransitionPrevious
}

// Progress is Index/(len-1), or 0 for a single-step flow.
func (e *Engine) Progress(s State) float64 {
	n := len(s.Flow.Steps)
	if n <= 1 || !s.valid() {
		return 0
	}
	return float64(s.Index) / float64(n-1)
}

// enter runs the OnEnter hook of the current step. s must own its answers map.
func enter(s State) {
	def, ok := definitions[s.Flow.Steps[s.Index]]
	if ok && def.OnEnter != nil {
		def.OnEnter(s.Answers)
	}
}
