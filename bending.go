package geartrain

import (
	"math"

	"github.com/soypat/geartrain/internal/d3"
)

// BendingParams collects the service inputs of an AGMA tooth bending
// verification.
type BendingParams struct {
	// PowerSource and DrivenMachine select the overload factor K_0.
	PowerSource   PowerSource
	DrivenMachine DrivenMachine
	// ShaftDiameter is the diameter of the shaft under the gear [mm],
	// setting the rim thickness.
	ShaftDiameter float64
	// Ce is the mesh alignment correction factor of the load distribution
	// factor. Unity unless the gearing is adjusted at assembly.
	Ce float64
	// TeethCondition selects the lead correction coefficient C_mc.
	TeethCondition TeethCondition
	// ShaftLength is the bearing span of the shaft [mm].
	ShaftLength float64
	// Gearing selects the mesh alignment coefficients for C_ma.
	Gearing GearingCondition

	// SigmaFP is the allowable bending stress number [MPa].
	SigmaFP float64
	// BYN and EYN are the coefficient and exponent of the stress cycle
	// life factor Y_N = BYN·N^EYN.
	BYN, EYN float64
	// Cycles is the number of load cycles N.
	Cycles float64
	// Temperature is the operating temperature [°C]. The temperature
	// factor is only defined up to 120 °C.
	Temperature float64
	// Reliability is the target reliability, e.g. 0.99.
	Reliability float64
}

// AnalyzeBending verifies the gear teeth against bending fatigue for the
// loads resolved on mesh. It computes the maximum bending stress and the
// bending safety factor, storing every intermediate AGMA factor on the gear.
// The mesh must have been resolved by a prior Solve pass.
func (g *Gear) AnalyzeBending(mesh *Mesh, p BendingParams) error {
	g.log.Info().Str("mesh", mesh.Name).Msg("gear tooth bending analysis")
	if err := g.bendingStress(mesh, p); err != nil {
		return err
	}
	g.log.Info().Float64("sigma_bending_MPa", g.SigmaBending).Msg("maximum bending stress")
	if err := g.bendingSafety(p); err != nil {
		return err
	}
	g.log.Info().Float64("bending_SF", g.BendingSF).Msg("bending safety factor")
	return nil
}

// bendingStress evaluates the AGMA bending stress factor chain and the
// maximum tooth bending stress for fatigue.
func (g *Gear) bendingStress(mesh *Mesh, p BendingParams) error {
	fw := math.Min(mesh.Driving.FW, mesh.Driven.FW)

	// Overload factor.
	k0, err := overloadFactor(p.PowerSource, p.DrivenMachine)
	if err != nil {
		return err
	}
	g.K0 = k0

	// Rim thickness factor.
	g.TR = (g.Df - p.ShaftDiameter) / 2
	g.MB = g.TR / g.H
	if g.MB < 1.2 {
		g.KB = 1.6 * math.Log(2.242/g.MB)
	} else {
		g.KB = 1
	}

	// Dynamic factor from the pitch line velocity [m/s].
	v := d3.SumAbs(g.Omega) * g.D * metresPerMillimetre
	b := 0.25 * math.Pow(12-g.Qv, 2.0/3.0)
	a := 50 + 56*(1-b)
	g.Kv = math.Pow((a+math.Sqrt(200*v))/a, b)

	// Load distribution factor.
	g.Ce = p.Ce
	cmc, err := p.TeethCondition.cmc()
	if err != nil {
		return err
	}
	g.Cmc = cmc
	fwIn := fw * InchesPerMillimetre
	switch {
	case fwIn <= 1:
		g.Cpf = fw/10/g.D - 0.025
	case fwIn <= 17:
		g.Cpf = fw/10/g.D - 0.0375 + 0.0125*fwIn
	default:
		g.Cpf = fw/10/g.D - 0.1109 + 0.0207*fwIn - 0.000228*fwIn*fwIn
	}
	s1 := math.Abs(p.ShaftLength/2 - d3.SumAbs(g.RelLoc))
	if s1/p.ShaftLength < 0.175 {
		g.Cpm = 1
	} else {
		g.Cpm = 1.1
	}
	ca, cb, cc, err := p.Gearing.coefficients()
	if err != nil {
		return err
	}
	g.Cma = ca + cb*fwIn + cc*fwIn*fwIn
	g.KH = 1 + g.Cmc*(g.Cpf*g.Cpm+g.Cma*g.Ce)

	// Size factor from the Lewis form factor at the virtual tooth count.
	g.Y = lewisY.At(float64(g.Zp))
	g.KS = 0.843 * math.Pow(fw*g.Mt*math.Sqrt(g.Y), 0.0535)

	// Bending strength geometry factor from the two digitized charts.
	psiDeg := math.Abs(g.Psi * 180 / pi)
	g.Jp = jPrimeChart.At(psiDeg, float64(g.Teeth))
	g.Jpp = jModChart.At(psiDeg, float64(g.Teeth))
	g.YJ = g.Jp * g.Jpp

	g.SigmaBending = d3.SumAbs(mesh.Ft.V) * g.K0 * g.KB * g.Kv * g.KH * g.KS / (fw * g.Mt * g.YJ)
	return nil
}

// bendingSafety evaluates the life, temperature and reliability corrections
// and the bending safety factor from the stress computed by bendingStress.
func (g *Gear) bendingSafety(p BendingParams) error {
	g.SigmaFP = p.SigmaFP
	g.YN = p.BYN * math.Pow(p.Cycles, p.EYN)
	if p.Temperature > 120 {
		return ErrTemperatureRange
	}
	g.YTheta = 1
	g.YZ = reliabilityFactor(p.Reliability)
	g.BendingSF = g.SigmaFP * g.YN / (g.SigmaBending * g.YTheta * g.YZ)
	return nil
}
