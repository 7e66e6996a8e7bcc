package geartrain

import (
	"math"

	"github.com/soypat/geartrain/internal/d3"
)

// PittingParams collects the service inputs of an AGMA surface durability
// (pitting) verification.
type PittingParams struct {
	// ZR is the surface condition factor.
	ZR float64
	// SigmaHP is the allowable contact stress number [MPa].
	SigmaHP float64
	// BZN and EZN are the coefficient and exponent of the stress cycle
	// life factor Z_N = BZN·N^EZN.
	BZN, EZN float64
	// Cycles is the number of load cycles N.
	Cycles float64
}

// AnalyzePitting verifies the gear teeth against surface fatigue for the
// loads resolved on mesh. The pitting pipeline reuses the overload, dynamic,
// size, load distribution, temperature and reliability factors of the
// bending pipeline, so AnalyzeBending must have run on the same mesh first.
func (g *Gear) AnalyzePitting(mesh *Mesh, p PittingParams) error {
	if g.K0 == 0 || g.YTheta == 0 || g.YZ == 0 {
		return ErrBendingNotRun
	}
	g.log.Info().Str("mesh", mesh.Name).Msg("gear tooth pitting analysis")
	if err := g.pittingStress(mesh, p.ZR); err != nil {
		return err
	}
	g.log.Info().Float64("sigma_pitting_MPa", g.SigmaPitting).Msg("maximum contact stress")
	g.wearSafety(mesh, p)
	g.log.Info().Float64("wear_SF", g.WearSF).Msg("wear safety factor")
	return nil
}

// pittingStress evaluates the elastic coefficient, the surface strength
// geometry and the maximum contact stress.
func (g *Gear) pittingStress(mesh *Mesh, zr float64) error {
	i, err := materialIndex(mesh.Driving.Material.Name, "pinion material")
	if err != nil {
		return err
	}
	j, err := materialIndex(mesh.Driven.Material.Name, "gear material")
	if err != nil {
		return err
	}
	g.ZE = zeTable.At(i, j)

	// Surface strength geometry from the contact line lengths.
	pinion, wheel := mesh.Driving, mesh.Driven
	f2 := (pinion.D + wheel.D) * math.Sin(g.PhiT) / 2
	za := math.Min(math.Hypot(pinion.D/2, pinion.Ha), f2)
	zb := math.Min(math.Hypot(wheel.D/2, wheel.Ha), f2)
	z := za + zb - f2
	g.MN = g.Pn * math.Cos(g.PhiN) / (0.95 * z)
	switch mesh.Type {
	case MeshExternal:
		g.ZI = math.Cos(g.PhiT) * math.Sin(g.PhiT) * mesh.Ratio / (2 * g.MN * (mesh.Ratio + 1))
	case MeshInternal:
		g.ZI = math.Cos(g.PhiT) * math.Sin(g.PhiT) * mesh.Ratio / (2 * g.MN * (mesh.Ratio - 1))
	default:
		return &CategoryError{Category: "mesh type", Value: string(mesh.Type)}
	}

	g.SigmaPitting = g.ZE * math.Sqrt(d3.SumAbs(mesh.Ft.V)*g.K0*g.Kv*g.KS*g.KH*zr/(g.FW*g.D*g.ZI))
	return nil
}

// wearSafety evaluates the life and hardness ratio corrections and the wear
// safety factor from the stress computed by pittingStress.
func (g *Gear) wearSafety(mesh *Mesh, p PittingParams) {
	g.SigmaHP = p.SigmaHP
	g.ZN = p.BZN * math.Pow(p.Cycles, p.EZN)
	hbRatio := mesh.Driving.Material.HB / mesh.Driven.Material.HB
	var ap float64
	switch {
	case hbRatio < 1.2:
		ap = 0
	case hbRatio <= 1.7:
		ap = (8.98*hbRatio - 8.29) * 1e-3
	default:
		ap = 0.00698
	}
	g.ZW = 1 + ap*(mesh.Ratio-1)
	g.WearSF = g.SigmaHP * g.ZN * g.ZW / (g.SigmaPitting * g.YTheta * g.YZ)
}
