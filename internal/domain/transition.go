package domain

import (
	"fmt"
	"slices"
)

// transitionRule lists the states an action may start from and the state it produces.
type transitionRule[S ~string] struct {
	from []S
	to   S
}

// checkTransition validates an action against its rule.
// Re-applying an action whose target already holds is a Conflict; any other
// illegal source state is a failed precondition. Actions targeting the
// initial state are never treated as already applied.
func checkTransition[S ~string](entity EntityType, action string, current, initial S, rules map[string]transitionRule[S]) (S, error) {
	rule, ok := rules[action]
	if !ok {
		return current, NewValidationError("action", "unknown action "+action)
	}
	if slices.Contains(rule.from, current) {
		return rule.to, nil
	}
	if current == rule.to && rule.to != initial {
		return current, NewTransitionError(entity, string(current), action, ErrConflict)
	}
	return current, NewTransitionError(entity, string(current), action, ErrPreconditionFailed)
}

// CheckVersion fails with ErrConflict when the caller supplied an expected
// version that no longer matches. A nil expectation always passes.
func CheckVersion(entity EntityType, current int, expected *int) error {
	if expected == nil || *expected == current {
		return nil
	}
	return fmt.Errorf("%s: expected version %d, found %d: %w", entity, *expected, current, ErrConflict)
}
