package geartrain

import (
	"github.com/soypat/geartrain/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Force is a concentrated load applied to a component.
type Force struct {
	// V is the force vector [N].
	V r3.Vec
	// Loc is the point of application [mm].
	Loc r3.Vec
}

// Add returns the vector sum of two forces. The application point of f is
// carried over, locations are never combined.
func (f Force) Add(g Force) Force {
	return Force{V: r3.Add(f.V, g.V), Loc: f.Loc}
}

// Sub returns the vector difference of two forces.
func (f Force) Sub(g Force) Force {
	return Force{V: r3.Sub(f.V, g.V), Loc: f.Loc}
}

// Neg returns the force with reversed direction at the same location.
func (f Force) Neg() Force {
	return Force{V: r3.Scale(-1, f.V), Loc: f.Loc}
}

// Moment returns the moment [N·m] of f about location [mm] projected onto
// axis. Only the components of the cross product along non-zero axis
// components survive the projection.
func (f Force) Moment(location, axis r3.Vec) r3.Vec {
	arm := r3.Scale(metresPerMillimetre, r3.Sub(f.Loc, location))
	return d3.MulElem(r3.Cross(f.V, arm), d3.AbsElem(axis))
}

// Torque is a concentrated moment applied to a component.
type Torque struct {
	// V is the torque vector [N·m].
	V r3.Vec
	// Loc is the point of application [mm].
	Loc r3.Vec
}

// Add returns the vector sum of two torques. The application point of t is
// carried over.
func (t Torque) Add(u Torque) Torque {
	return Torque{V: r3.Add(t.V, u.V), Loc: t.Loc}
}

// Sub returns the vector difference of two torques.
func (t Torque) Sub(u Torque) Torque {
	return Torque{V: r3.Sub(t.V, u.V), Loc: t.Loc}
}

// Neg returns the torque with reversed direction at the same location.
func (t Torque) Neg() Torque {
	return Torque{V: r3.Scale(-1, t.V), Loc: t.Loc}
}
