// Package geartrain models a mechanical gear train as a graph of rigid
// components (gears, shafts, an input motor) joined by meshes, resolves the
// static force/torque equilibrium of that graph one component at a time and
// verifies gears against AGMA bending and surface-contact (pitting) stress
// criteria.
//
// Working unit conventions throughout the package:
//   - lengths in millimetres [mm]
//   - forces in newtons [N]
//   - torques in newton-metres [N·m]
//   - angular speeds in radians per second [rad/s]
//   - stresses in megapascals [MPa]
//
// Equilibrium resolution is a strict single-degree-of-freedom propagation
// scheme: each call to (*Gear).Solve resolves at most one unknown torque or
// one unknown mesh force and pushes the result onto the owning shaft. Callers
// walk the train outward from a known driver so that every pass sees exactly
// one unknown.
package geartrain

import "math"

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
)

const (
	pi = math.Pi
	// equilibriumTol is the absolute per-component tolerance below which a
	// force or torque residual counts as balanced.
	equilibriumTol = 1e-3
	// metresPerMillimetre converts moment arms from [mm] to [m] so that
	// moments of [N] forces come out in [N·m].
	metresPerMillimetre = 1e-3
	// newtonsPerTorqueUnit converts a [N·m] torque divided by a [mm]
	// diameter into a [N] tangential force.
	newtonsPerTorqueUnit = 1e3
)
