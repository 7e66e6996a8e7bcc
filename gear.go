package geartrain

import (
	"math"

	"github.com/soypat/geartrain/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// GearConfig collects the given parameters of a spur or helical gear.
// Angles are in degrees, lengths in millimetres.
type GearConfig struct {
	// Name labels the gear in narration output.
	Name string
	// Axis is the unit rotation axis of the gear.
	Axis r3.Vec
	// Module is the normal module m_n [mm].
	Module float64
	// Teeth is the number of teeth z.
	Teeth int
	// HelixDeg is the helix angle ψ [degrees]. Zero for spur gears.
	HelixDeg float64
	// PressureDeg is the normal pressure angle φ_n [degrees].
	PressureDeg float64
	// Quality is the AGMA transmission accuracy grade Q_v.
	Quality float64
	// FaceWidth is the tooth face width [mm].
	FaceWidth float64
	// Material of the gear.
	Material Material

	// ConeDeg is the pitch cone angle γ [degrees] for bevel-like gears
	// resolved through a dual-radiality mesh. Ignored otherwise.
	ConeDeg float64
	// AvgDiameter is the average pitch diameter [mm] the tangential force
	// of a dual-radiality mesh acts on. Ignored otherwise.
	AvgDiameter float64
}

// Gear is a spur or helical gear. Its full geometric parameter set is derived
// once at construction and immutable afterwards; the analysis factor fields
// are overwritten by each verification pass.
type Gear struct {
	Component

	// Given parameters.

	// Mn is the normal module [mm].
	Mn float64
	// Teeth is the number of teeth z.
	Teeth int
	// Psi is the helix angle ψ [rad].
	Psi float64
	// PhiN is the normal pressure angle φ_n [rad].
	PhiN float64
	// Qv is the transmission accuracy grade.
	Qv float64
	// FW is the tooth face width [mm].
	FW float64
	// Gamma is the pitch cone angle γ [rad] for bevel-like gears.
	Gamma float64
	// AvgD is the average pitch diameter [mm] for bevel-like gears.
	AvgD float64

	// Derived geometry.

	// Pn is the normal circular pitch [mm].
	Pn float64
	// Pt is the transverse circular pitch [mm].
	Pt float64
	// Px is the axial pitch [mm], zero for spur gears.
	Px float64
	// Mt is the transverse module [mm].
	Mt float64
	// D is the pitch diameter [mm].
	D float64
	// PhiT is the transverse pressure angle [rad].
	PhiT float64
	// Zp is the virtual number of teeth.
	Zp int
	// PhiB is the base helix angle [rad].
	PhiB float64
	// Ha is the addendum height [mm].
	Ha float64
	// Hf is the dedendum height [mm].
	Hf float64
	// H is the whole tooth height [mm].
	H float64
	// Da is the addendum diameter [mm].
	Da float64
	// Df is the dedendum diameter [mm].
	Df float64

	// OnShaft is the shaft the gear is mounted on.
	OnShaft *Shaft

	meshes []*Mesh

	// Bending analysis outputs, overwritten by AnalyzeBending.
	K0, TR, MB, KB, Kv         float64
	Ce, Cmc, Cpf, Cpm, Cma, KH float64
	Y, KS, Jp, Jpp, YJ         float64
	SigmaBending               float64
	SigmaFP, YN, YTheta, YZ    float64
	BendingSF                  float64

	// Pitting analysis outputs, overwritten by AnalyzePitting.
	ZE, MN, ZI   float64
	SigmaPitting float64
	SigmaHP      float64
	ZN, ZW       float64
	WearSF       float64
}

// NewGear derives the full geometric parameter set of a gear from its given
// parameters.
func NewGear(cfg GearConfig) *Gear {
	g := &Gear{
		Component: newComponent(cfg.Name, &cfg.Material, cfg.Axis, r3.Vec{}),
		Mn:        cfg.Module,
		Teeth:     cfg.Teeth,
		Psi:       cfg.HelixDeg * pi / 180,
		PhiN:      cfg.PressureDeg * pi / 180,
		Qv:        cfg.Quality,
		FW:        cfg.FaceWidth,
		Gamma:     cfg.ConeDeg * pi / 180,
		AvgD:      cfg.AvgDiameter,
	}
	g.Pn = g.Mn * pi
	g.Pt = g.Pn / math.Cos(g.Psi)
	if cfg.HelixDeg != 0 {
		g.Px = g.Pt / math.Tan(g.Psi)
	}
	g.Mt = g.Mn / math.Cos(g.Psi)
	g.D = g.Mt * float64(g.Teeth)
	g.PhiT = math.Atan(math.Tan(g.PhiN) / math.Cos(g.Psi))
	g.Zp = int(math.Ceil(float64(g.Teeth) / cube(math.Cos(g.Psi))))
	g.PhiB = math.Atan(math.Tan(g.Psi) * math.Cos(g.PhiN))
	g.Ha = g.Mn
	g.Hf = 1.25 * g.Mn
	g.H = g.Ha + g.Hf
	g.Da = g.D + 2*g.Ha
	g.Df = g.D - 2*g.Hf
	return g
}

// Meshes returns the meshes registered on the gear in registration order.
func (g *Gear) Meshes() []*Mesh { return g.meshes }

func (g *Gear) addMesh(m *Mesh) {
	g.meshes = append(g.meshes, m)
}

// CheckTorqueEquilibrium sums the registered external torques and the
// moments of the registered external forces about the gear location along
// the gear axis. It answers true when every component of the residual is
// within the equilibrium tolerance. A gear with neither forces nor torques
// registered is unconstrained and answers false.
func (g *Gear) CheckTorqueEquilibrium() bool {
	g.log.Debug().Msg("checking torque equilibrium")
	if len(g.efs) == 0 && len(g.ets) == 0 {
		return false
	}
	eq := g.torqueResidual()
	balanced := d3.EqualWithin(eq, r3.Vec{}, equilibriumTol)
	if balanced {
		g.log.Debug().Msg("maintains a torque equilibrium")
	} else {
		g.log.Debug().Msg("does not maintain a torque equilibrium")
	}
	return balanced
}

func (g *Gear) torqueResidual() r3.Vec {
	var eq r3.Vec
	for _, et := range g.ets {
		eq = r3.Add(eq, et.V)
	}
	for _, ef := range g.efs {
		eq = r3.Add(eq, ef.Moment(g.AbsLoc, g.Axis))
	}
	return eq
}

func cube(x float64) float64 { return x * x * x }
