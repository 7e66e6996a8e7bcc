package geartrain

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is the contact interface between two gears. Both gears keep a
// non-owning reference to the same Mesh; whichever gear resolves the mesh
// writes the tangential/radial/axial force split into it.
type Mesh struct {
	// Name labels the mesh in narration output.
	Name string
	// Driving is the power-input gear of the pair.
	Driving *Gear
	// Driven is the power-output gear of the pair.
	Driven *Gear
	// Radiality holds one or two unit vectors pointing from the gear
	// center towards the contact point. Cylindrical meshes carry one,
	// bevel-like meshes carry one per gear.
	Radiality []r3.Vec
	// Type distinguishes external from internal gear pairs.
	Type MeshType
	// Ratio is the gear ratio m_G = z_driven / z_driving.
	Ratio float64
	// Loc is the contact point in the global frame [mm].
	Loc r3.Vec

	// Resolved force state, written by the solver of one of the two
	// gears. F is always the vector sum Ft+Fr+Fa after resolution.
	Ft, Fr, Fa, F Force
}

// NewMesh pairs a driving and a driven gear at the contact point loc and
// registers the mesh on both. The gear ratio is derived from the tooth
// counts.
func NewMesh(name string, driving, driven *Gear, typ MeshType, radiality []r3.Vec, loc r3.Vec) *Mesh {
	m := &Mesh{
		Name:      name,
		Driving:   driving,
		Driven:    driven,
		Radiality: radiality,
		Type:      typ,
		Ratio:     float64(driven.Teeth) / float64(driving.Teeth),
		Loc:       loc,
		Ft:        Force{Loc: loc},
		Fr:        Force{Loc: loc},
		Fa:        Force{Loc: loc},
		F:         Force{Loc: loc},
	}
	driving.addMesh(m)
	driven.addMesh(m)
	return m
}

// Resolved reports whether the resultant mesh force has been computed.
func (m *Mesh) Resolved() bool {
	return m.F.V != (r3.Vec{})
}

// PropagateSpeed sets the driven shaft's angular speed from the driving gear
// speed scaled down by the gear ratio. External meshes reverse the sense of
// rotation, internal meshes keep it.
func (m *Mesh) PropagateSpeed() {
	if m.Driven.OnShaft == nil {
		return
	}
	scale := 1 / m.Ratio
	if m.Type == MeshExternal {
		scale = -scale
	}
	m.Driven.OnShaft.SetSpeed(r3.Scale(scale, m.Driving.Omega))
}
