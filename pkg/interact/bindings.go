package interact

import (
	"maps"
	"slices"

	"github.com/matzehuels/seatplan/pkg/errors"
)

// Action is a named editor command a key can be bound to.
type Action string

const (
	ActionCancel          Action = "cancel"
	ActionDeleteSelection Action = "delete-selection"
	ActionSelectAll       Action = "select-all"
	ActionNudgeLeft       Action = "nudge-left"
	ActionNudgeRight      Action = "nudge-right"
	ActionNudgeUp         Action = "nudge-up"
	ActionNudgeDown       Action = "nudge-down"
	ActionRotate          Action = "rotate-selection"
)

// RotateStep is how far ActionRotate turns the selected tables.
const RotateStep = 15.0

// Actions lists every action in documentation order.
var Actions = []Action{
	ActionCancel,
	ActionDeleteSelection,
	ActionSelectAll,
	ActionNudgeLeft,
	ActionNudgeRight,
	ActionNudgeUp,
	ActionNudgeDown,
	ActionRotate,
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if slices.Contains(Actions, a) {
		return a, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown editor action %q", s)
}

// Bindings maps key names to actions. Key names follow the terminal
// convention: "esc", "delete", "ctrl+a", "left", "r".
type Bindings map[string]Action

// DefaultBindings returns the built-in key map.
func DefaultBindings() Bindings {
	return Bindings{
		"esc":       ActionCancel,
		"delete":    ActionDeleteSelection,
		"backspace": ActionDeleteSelection,
		"ctrl+a":    ActionSelectAll,
		"left":      ActionNudgeLeft,
		"right":     ActionNudgeRight,
		"up":        ActionNudgeUp,
		"down":      ActionNudgeDown,
		"r":         ActionRotate,
	}
}

// Merge returns a copy of b with overrides applied. Binding a key to the
// empty action removes it.
func (b Bindings) Merge(overrides map[string]string) (Bindings, error) {
	out := maps.Clone(b)
	if out == nil {
		out = Bindings{}
	}
	for key, name := range overrides {
		if name == "" {
			delete(out, key)
			continue
		}
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		out[key] = a
	}
	return out, nil
}

// Keys returns the keys bound to a, sorted.
func (b Bindings) Keys(a Action) []string {
	var keys []string
	for k, v := range b {
		if v == a {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// HandleKey runs the action bound to key and reports whether one ran.
// While a gesture is active only ActionCancel runs.
func (e *Editor) HandleKey(key string) bool {
	a, ok := e.bindings[key]
	if !ok {
		return false
	}
	return e.Perform(a)
}

// Perform runs action a and reports whether it ran.
func (e *Editor) Perform(a Action) bool {
	if a == ActionCancel {
		if !e.Cancel() {
			e.ClearSelection()
		}
		return true
	}
	if _, idle := e.state.(Idle); !idle {
		return false
	}
	switch a {
	case ActionDeleteSelection:
		e.DeleteSelection()
	case ActionSelectAll:
		e.SelectAll()
	case ActionNudgeLeft:
		_ = e.Nudge(-1, 0)
	case ActionNudgeRight:
		_ = e.Nudge(1, 0)
	case ActionNudgeUp:
		_ = e.Nudge(0, -1)
	case ActionNudgeDown:
		_ = e.Nudge(0, 1)
	case ActionRotate:
		e.rotateSelection(RotateStep)
	default:
		return false
	}
	return true
}
