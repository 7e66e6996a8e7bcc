package geartrain

import (
	"errors"
	"fmt"
)

// CategoryError reports a categorical input that falls outside its closed
// set of admissible values. It aborts the analysis call it occurs in.
type CategoryError struct {
	// Category names the offending input, e.g. "power source".
	Category string
	// Value is the rejected input value.
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("geartrain: invalid %s %q", e.Category, e.Value)
}

var (
	// ErrTemperatureRange is returned by the bending safety pass for
	// operating temperatures above 120 °C, where the temperature factor
	// Y_θ has no defined value.
	ErrTemperatureRange = errors.New("geartrain: temperature factor undefined above 120 °C")
	// ErrBendingNotRun is returned by the pitting analysis when the gear
	// carries no factors from a bending pass. Pitting reuses K_0, K_v,
	// K_S, K_H, Y_θ and Y_Z from the bending analysis of the same mesh.
	ErrBendingNotRun = errors.New("geartrain: pitting analysis requires a prior bending analysis")
)
