package rotation

import (
	"errors"
)

// ErrEmptyOrder is returned when rotating over an empty player order
var ErrEmptyOrder = errors.New("player order cannot be empty")

// Next returns the player after current in circular seating order,
// skipping finished players. An unknown (or empty) current starts the
// scan at the first seat. If every player is finished the input is
// returned unchanged; the caller is expected to check completion first.
func Next(order []string, current string, finished map[string]bool) (string, error) {
	if len(order) == 0 {
		return "", ErrEmptyOrder
	}

	idx := indexOf(order, current)

	for i := 1; i <= len(order); i++ {
		candidate := order[(idx+i+len(order))%len(order)]
		if !finished[candidate] {
			return candidate, nil
		}
	}

	return current, nil
}

// Reverse is the exact left-inverse of Next given the same finished
// set: Reverse(Next(order, cur, f), f) == cur for any active cur.
// Rollback restores recorded turn pointers directly; Reverse states
// the invertibility contract those recordings rely on.
func Reverse(order []string, current string, finished map[string]bool) (string, error) {
	if len(order) == 0 {
		return "", ErrEmptyOrder
	}

	idx := indexOf(order, current)
	if idx < 0 {
		idx = 0
	}

	for i := 1; i <= len(order); i++ {
		candidate := order[(idx-i+len(order)*2)%len(order)]
		if !finished[candidate] {
			return candidate, nil
		}
	}

	return current, nil
}

func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}
