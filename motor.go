package geartrain

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Motor is the rotating input source of a gear train. It converts a rated
// power and speed into a constant torque about its axis and seeds the train
// with it.
type Motor struct {
	Component
	// Power is the rated power [W].
	Power float64
	// Speed is the rated speed [rpm].
	Speed float64
	// T is the constant output torque [N·m] applied at the motor location.
	T Torque
}

// NewMotor returns a motor delivering power [W] at speed n [rpm] about axis,
// positioned at loc [mm].
func NewMotor(name string, power, n float64, axis, loc r3.Vec) *Motor {
	m := &Motor{
		Component: newComponent(name, nil, axis, loc),
		Power:     power,
		Speed:     n,
	}
	m.Omega = r3.Scale(n*pi/30, axis)
	m.T = Torque{V: torqueFromPower(power, m.Omega), Loc: loc}
	return m
}

// Drive couples the motor to shaft s: the shaft and its mounted gears take
// the motor speed and the motor torque is registered on the shaft.
func (m *Motor) Drive(s *Shaft) {
	s.SetSpeed(m.Omega)
	s.UpdateETs([]Torque{m.T})
	m.log.Info().Str("shaft", s.Name).Msg("driving shaft")
}

// torqueFromPower divides power by each non-zero angular speed component,
// leaving zero components at zero torque.
func torqueFromPower(power float64, omega r3.Vec) r3.Vec {
	div := func(o float64) float64 {
		if o == 0 {
			return 0
		}
		return power / o
	}
	return r3.Vec{X: div(omega.X), Y: div(omega.Y), Z: div(omega.Z)}
}
