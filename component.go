package geartrain

import (
	"github.com/rs/zerolog"
	"github.com/soypat/geartrain/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// EquilibriumChecker is implemented by components that can decide whether
// the torques acting on them balance out. The base Component has no torque
// balance of its own and always answers false; Gear overrides it with the
// real moment summation.
type EquilibriumChecker interface {
	CheckTorqueEquilibrium() bool
}

// Component is the base of every rigid member of a gear train. It tracks the
// external forces (EFs) and external torques (ETs) acting on the member in
// insertion order, deduplicated by value so that multiple solver passes over
// the same graph never double count a load.
type Component struct {
	// Name labels the component in narration output.
	Name string
	// Material of the component. May be nil for members that carry loads
	// but are never stress-verified (shafts, motors).
	Material *Material
	// Axis is the unit rotation axis of the component.
	Axis r3.Vec
	// Loc is the position of the component in the frame of its parent [mm].
	Loc r3.Vec
	// RelLoc is the position relative to the owning shaft's midplane [mm].
	RelLoc r3.Vec
	// AbsLoc is the position in the global frame [mm].
	AbsLoc r3.Vec
	// Omega is the angular speed vector [rad/s].
	Omega r3.Vec

	efs   []Force
	efset map[Force]struct{}
	ets   []Torque
	etset map[Torque]struct{}

	log zerolog.Logger
}

func newComponent(name string, mat *Material, axis, loc r3.Vec) Component {
	return Component{
		Name:     name,
		Material: mat,
		Axis:     axis,
		Loc:      loc,
		AbsLoc:   loc,
		efset:    make(map[Force]struct{}),
		etset:    make(map[Torque]struct{}),
		log:      zerolog.Nop(),
	}
}

// SetLogger directs the component's solve narration to l. Narration is a
// collaborator, not part of any result: components are silent by default.
func (c *Component) SetLogger(l zerolog.Logger) {
	c.log = l.With().Str("component", c.Name).Logger()
}

// EFs returns the external forces acting on the component in insertion order.
func (c *Component) EFs() []Force { return c.efs }

// ETs returns the external torques acting on the component in insertion order.
func (c *Component) ETs() []Torque { return c.ets }

// UpdateEFs appends each force not already registered on the component.
// Already known forces are skipped, the collection never shrinks.
func (c *Component) UpdateEFs(efs []Force) {
	for _, ef := range efs {
		if _, ok := c.efset[ef]; ok {
			continue
		}
		c.efset[ef] = struct{}{}
		c.efs = append(c.efs, ef)
	}
}

// UpdateETs appends each torque not already registered on the component.
func (c *Component) UpdateETs(ets []Torque) {
	for _, et := range ets {
		if _, ok := c.etset[et]; ok {
			continue
		}
		c.etset[et] = struct{}{}
		c.ets = append(c.ets, et)
	}
}

// CheckForceEquilibrium sums all external forces and reports whether every
// component of the sum is below the equilibrium tolerance. Diagnostic only,
// the solver never branches on it.
func (c *Component) CheckForceEquilibrium() bool {
	var eq r3.Vec
	for _, ef := range c.efs {
		eq = r3.Add(eq, ef.V)
	}
	balanced := d3.EqualWithin(eq, r3.Vec{}, equilibriumTol)
	if balanced {
		c.log.Debug().Msg("maintains a force equilibrium")
	} else {
		c.log.Debug().
			Float64("residual", d3.SumAbs(eq)).
			Msg("does not maintain a force equilibrium")
	}
	return balanced
}

// CheckTorqueEquilibrium on the base component answers false: with no torque
// balance defined there is nothing meaningful to confirm. A component with
// neither forces nor torques registered is treated as unconstrained, not as
// vacuously balanced.
func (c *Component) CheckTorqueEquilibrium() bool {
	return false
}
