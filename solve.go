package geartrain

import (
	"math"

	"github.com/soypat/geartrain/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// SolveStatus is the outcome of one equilibrium resolution pass over a gear.
// None of the statuses is an error: an unsolvable or unconfigured pass is
// expected control flow and leaves the component graph untouched.
type SolveStatus uint8

const (
	// SolveUnconfigured means the gear has no meshes registered and there
	// is nothing to resolve.
	SolveUnconfigured SolveStatus = iota
	// SolveBalanced means the gear already satisfied torque equilibrium
	// and the pass was a no-op.
	SolveBalanced
	// SolveNotSolvable means the pass could not make progress: either more
	// than one unknown remained, or every load was known and the residual
	// still did not close.
	SolveNotSolvable
	// SolvedTorque means the pass resolved the missing net torque and
	// pushed it to the owning shaft.
	SolvedTorque
	// SolvedForces means the pass resolved the force split of the single
	// pending mesh and pushed the gear loads to the owning shaft.
	SolvedForces
)

func (s SolveStatus) String() string {
	switch s {
	case SolveUnconfigured:
		return "unconfigured"
	case SolveBalanced:
		return "balanced"
	case SolveNotSolvable:
		return "not solvable"
	case SolvedTorque:
		return "solved torque"
	case SolvedForces:
		return "solved forces"
	}
	return "unknown"
}

// Solve balances the gear against its meshes and shaft, resolving at most one
// unknown per pass:
//
//   - an unknown net torque when no external torques are registered, or
//   - the unknown force split of the single mesh whose resultant is still
//     zero.
//
// Forces of already resolved meshes are registered on the gear before a
// branch is taken, with flipped sign when the gear is the driving member of
// the mesh. A pass that reports SolveNotSolvable mutates nothing, whether
// more than one unknown is outstanding or every load is known but the
// residual does not close; callers then come back after neighbouring
// components have been solved.
func (g *Gear) Solve() SolveStatus {
	if len(g.meshes) == 0 {
		g.log.Info().Msg("no meshes to solve, configure the train first")
		return SolveUnconfigured
	}
	if g.CheckTorqueEquilibrium() {
		g.log.Info().Msg("nothing to be solved")
		return SolveBalanced
	}
	g.log.Debug().Msg("checking solvability")
	unknownTorques := 0
	unknownForces := 0
	var pending *Mesh
	var known []Force
	if len(g.ets) == 0 {
		unknownTorques++
	}
	for _, m := range g.meshes {
		if !m.Resolved() {
			unknownForces++
			pending = m
			continue
		}
		sign := 1.0
		if m.Driving == g {
			sign = -1
		}
		known = append(known, Force{V: r3.Scale(sign, m.F.V), Loc: m.F.Loc})
	}
	if unknownTorques+unknownForces > 1 {
		g.log.Info().
			Int("unknown_torques", unknownTorques).
			Int("unknown_forces", unknownForces).
			Msg("equilibrium cannot be solved this pass")
		return SolveNotSolvable
	}
	switch {
	case unknownTorques == 1:
		g.UpdateEFs(known)
		g.log.Info().Msg("solving torque equilibrium")
		g.calculateTorque()
		g.OnShaft.UpdateETs(g.ets)
		// Post-condition check, diagnostic only.
		g.CheckTorqueEquilibrium()
		return SolvedTorque
	case unknownForces == 1:
		g.UpdateEFs(known)
		g.log.Info().Str("mesh", pending.Name).Msg("solving mesh forces")
		g.calculateForces(pending)
		g.OnShaft.UpdateEFs(g.efs)
		g.CheckTorqueEquilibrium()
		return SolvedForces
	}
	// No unknown left yet the pass started unbalanced: the resolved mesh
	// forces not yet registered here may close the residual. Commit them
	// only when they do, so a not-solvable outcome stays mutation free.
	eq := g.torqueResidual()
	for _, ef := range known {
		if _, ok := g.efset[ef]; ok {
			continue
		}
		eq = r3.Add(eq, ef.Moment(g.AbsLoc, g.Axis))
	}
	if d3.EqualWithin(eq, r3.Vec{}, equilibriumTol) {
		g.UpdateEFs(known)
		return SolveBalanced
	}
	g.log.Info().Msg("all loads known but equilibrium does not close")
	return SolveNotSolvable
}

// calculateTorque resolves the net reaction torque consistent with torque
// balance about the gear axis and registers it as an external torque.
func (g *Gear) calculateTorque() {
	et := Torque{Loc: g.AbsLoc}
	for _, ef := range g.efs {
		et.V = r3.Sub(et.V, ef.Moment(g.AbsLoc, g.Axis))
	}
	g.UpdateETs([]Torque{et})
}

// calculateForces resolves the tangential/radial/axial force split of mesh
// from the known net torque on the gear, stores the split on the mesh and
// registers the resultant on the gear.
func (g *Gear) calculateForces(mesh *Mesh) {
	// Net torque still unbalanced by the registered forces.
	et := g.ets[0].V
	for _, ef := range g.efs {
		et = r3.Sub(et, ef.Moment(g.AbsLoc, g.Axis))
	}
	sign := 1.0
	if mesh.Driving == g {
		sign = -1
	}
	if len(mesh.Radiality) == 1 {
		// Cylindrical mesh: single contact direction.
		radiality := mesh.Radiality[0]
		ft := r3.Scale(newtonsPerTorqueUnit, r3.Cross(et, r3.Scale(2/g.D, radiality)))
		mesh.Ft.V = r3.Scale(sign, ft)
		fr := r3.Scale(sign*r3.Norm(ft)*math.Tan(g.PhiN)/math.Cos(g.Psi), radiality)
		mesh.Fr.V = r3.Scale(sign, fr)
		axialDir := d3.Sign(d3.Sum(g.OnShaft.Axis)) * d3.Sign(g.Psi)
		fa := r3.Scale(axialDir, d3.AbsElem(r3.Cross(radiality, r3.Scale(math.Tan(math.Abs(g.Psi)), ft))))
		mesh.Fa.V = r3.Scale(-1, fa)
		g.UpdateEFs([]Force{{V: r3.Add(r3.Add(ft, fr), fa), Loc: mesh.Loc}})
	} else {
		// Bevel-like mesh: contact direction depends on which side of
		// the mesh is being resolved.
		radiality := mesh.Radiality[0]
		if sign == 1 {
			radiality = mesh.Radiality[1]
		}
		ft := r3.Scale(newtonsPerTorqueUnit, r3.Cross(et, r3.Scale(2/g.AvgD, radiality)))
		mesh.Ft.V = r3.Scale(sign, ft)
		fr := r3.Scale(sign*r3.Norm(ft)*math.Tan(g.PhiN)*math.Cos(g.Gamma), radiality)
		mesh.Fr.V = r3.Scale(sign, fr)
		fa := r3.Scale(sign, r3.Cross(radiality, r3.Scale(math.Tan(math.Abs(g.PhiN))*math.Sin(g.Gamma), ft)))
		mesh.Fa.V = r3.Scale(-1, fa)
		g.UpdateEFs([]Force{{V: r3.Add(r3.Add(ft, fr), fa), Loc: mesh.Loc}})
	}
	mesh.F.V = r3.Add(r3.Add(mesh.Ft.V, mesh.Fr.V), mesh.Fa.V)
}
