package geartrain

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Shaft is the rigid member gears are mounted on. It accumulates the forces
// and torques its gears push to it during equilibrium resolution, it does not
// own or drive the gears itself.
type Shaft struct {
	Component
	// Length of the shaft between bearings [mm].
	Length float64

	gears []*Gear
}

// NewShaft returns a shaft spinning about axis positioned at loc [mm].
func NewShaft(name string, axis, loc r3.Vec, length float64) *Shaft {
	return &Shaft{
		Component: newComponent(name, nil, axis, loc),
		Length:    length,
	}
}

// Mount fixes gear g on the shaft at the signed offset [mm] from the shaft
// midplane along the shaft axis. The gear inherits the shaft's angular speed.
func (s *Shaft) Mount(g *Gear, offset float64) {
	g.OnShaft = s
	g.RelLoc = r3.Scale(offset, s.Axis)
	g.AbsLoc = r3.Add(s.AbsLoc, g.RelLoc)
	g.Omega = s.Omega
	s.gears = append(s.gears, g)
}

// Gears returns the gears mounted on the shaft in mounting order.
func (s *Shaft) Gears() []*Gear { return s.gears }

// SetSpeed fixes the angular speed [rad/s] of the shaft and of every gear
// mounted on it.
func (s *Shaft) SetSpeed(omega r3.Vec) {
	s.Omega = omega
	for _, g := range s.gears {
		g.Omega = omega
	}
}
