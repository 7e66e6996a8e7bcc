package geartrain

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// reducer is a single stage 3:1 helical reducer driven by a 5 kW motor at
// 1500 rpm, the shared scenario of the solver and analysis tests.
type reducer struct {
	motor             *Motor
	inShaft, outShaft *Shaft
	pinion, wheel     *Gear
	mesh              *Mesh
}

func newReducer() *reducer {
	axis := r3.Vec{Z: 1}
	steel := Material{Name: MaterialSteel, HB: 250}
	r := &reducer{}
	r.motor = NewMotor("motor", 5e3, 1500, axis, r3.Vec{})
	r.pinion = NewGear(GearConfig{
		Name: "pinion", Axis: axis,
		Module: 2, Teeth: 20, HelixDeg: 15, PressureDeg: 20,
		Quality: 7, FaceWidth: 25, Material: steel,
	})
	r.wheel = NewGear(GearConfig{
		Name: "wheel", Axis: axis,
		Module: 2, Teeth: 60, HelixDeg: 15, PressureDeg: 20,
		Quality: 7, FaceWidth: 25, Material: steel,
	})
	r.inShaft = NewShaft("input shaft", axis, r3.Vec{}, 100)
	// Output shaft at the exact center distance of the stage.
	r.outShaft = NewShaft("output shaft", axis, r3.Vec{X: (r.pinion.D + r.wheel.D) / 2}, 120)
	r.inShaft.Mount(r.pinion, 10)
	r.outShaft.Mount(r.wheel, -15)
	r.mesh = NewMesh("stage 1", r.pinion, r.wheel,
		MeshExternal, []r3.Vec{{X: 1}}, r3.Vec{X: r.pinion.D / 2})
	return r
}

// solve drives the reducer and resolves both gears.
func (r *reducer) solve(t *testing.T) {
	t.Helper()
	r.motor.Drive(r.inShaft)
	r.mesh.PropagateSpeed()
	r.pinion.UpdateETs(r.inShaft.ETs())
	if status := r.pinion.Solve(); status != SolvedForces {
		t.Fatalf("pinion pass: %v, want %v", status, SolvedForces)
	}
	if status := r.wheel.Solve(); status != SolvedTorque {
		t.Fatalf("wheel pass: %v, want %v", status, SolvedTorque)
	}
}

func TestSolveUnconfigured(t *testing.T) {
	g := NewGear(GearConfig{
		Name: "lone", Axis: r3.Vec{Z: 1},
		Module: 2, Teeth: 20, PressureDeg: 20,
	})
	g.UpdateETs([]Torque{{V: r3.Vec{Z: 10}}})
	if status := g.Solve(); status != SolveUnconfigured {
		t.Fatalf("status %v, want %v", status, SolveUnconfigured)
	}
	if len(g.EFs()) != 0 || len(g.ETs()) != 1 {
		t.Error("unconfigured solve must not mutate the gear")
	}
}

func TestSolveNotSolvable(t *testing.T) {
	// Two unresolved meshes and no known torque: three unknowns, no
	// progress possible and no mutation allowed.
	r := newReducer()
	idler := NewGear(GearConfig{
		Name: "idler", Axis: r3.Vec{Z: 1},
		Module: 2, Teeth: 20, HelixDeg: 15, PressureDeg: 20,
		Quality: 7, FaceWidth: 25,
	})
	r.inShaft.Mount(idler, -10)
	NewMesh("stage 1b", r.pinion, idler,
		MeshExternal, []r3.Vec{{X: -1}}, r3.Vec{X: -r.pinion.D / 2})

	if status := r.pinion.Solve(); status != SolveNotSolvable {
		t.Fatalf("status %v, want %v", status, SolveNotSolvable)
	}
	if len(r.pinion.EFs()) != 0 || len(r.pinion.ETs()) != 0 {
		t.Error("unsolvable pass must leave the gear unmutated")
	}
	if r.mesh.Resolved() {
		t.Error("unsolvable pass must leave mesh forces unmutated")
	}
	if len(r.inShaft.EFs()) != 0 || len(r.inShaft.ETs()) != 0 {
		t.Error("unsolvable pass must leave the shaft unmutated")
	}
}

func TestSolveBalancedIsNoOp(t *testing.T) {
	r := newReducer()
	r.solve(t)
	efs, ets := len(r.pinion.EFs()), len(r.pinion.ETs())
	if status := r.pinion.Solve(); status != SolveBalanced {
		t.Fatalf("status %v, want %v", status, SolveBalanced)
	}
	if len(r.pinion.EFs()) != efs || len(r.pinion.ETs()) != ets {
		t.Error("balanced pass must not mutate the gear")
	}
}

func TestSolveReducer(t *testing.T) {
	r := newReducer()
	r.solve(t)

	// Motor torque about +z.
	torque := 5e3 / (1500 * math.Pi / 30)

	// Tangential force magnitude F_t = 2·T/d with the [N·m]/[mm] unit
	// conversion, pushing the driven wheel along +y at the contact point.
	wantFt := 2 * torque / r.pinion.D * 1e3
	if !scalar.EqualWithinAbs(r3.Norm(r.mesh.Ft.V), wantFt, 1e-9) {
		t.Errorf("|F_t| = %v, want %v", r3.Norm(r.mesh.Ft.V), wantFt)
	}
	if r.mesh.Ft.V.Y >= 0 {
		t.Errorf("driving side tangential force %v should oppose +y", r.mesh.Ft.V)
	}

	// Radial force points along the mesh radiality, axial along the shaft.
	wantFr := wantFt * math.Tan(r.pinion.PhiN) / math.Cos(r.pinion.Psi)
	if !scalar.EqualWithinAbs(r3.Norm(r.mesh.Fr.V), wantFr, 1e-9) {
		t.Errorf("|F_r| = %v, want %v", r3.Norm(r.mesh.Fr.V), wantFr)
	}
	wantFa := wantFt * math.Tan(r.pinion.Psi)
	if !scalar.EqualWithinAbs(r3.Norm(r.mesh.Fa.V), wantFa, 1e-9) {
		t.Errorf("|F_a| = %v, want %v", r3.Norm(r.mesh.Fa.V), wantFa)
	}

	// The resultant is the vector sum of the split.
	sum := r3.Add(r3.Add(r.mesh.Ft.V, r.mesh.Fr.V), r.mesh.Fa.V)
	if !vecEqual(r.mesh.F.V, sum, 1e-9) {
		t.Errorf("mesh resultant %v, want %v", r.mesh.F.V, sum)
	}

	// The wheel reaction torque is the input torque scaled by the ratio.
	if n := len(r.wheel.ETs()); n != 1 {
		t.Fatalf("wheel has %d torques, want 1", n)
	}
	gotT := r.wheel.ETs()[0].V.Z
	if !scalar.EqualWithinAbs(gotT, r.mesh.Ratio*torque, 1e-6) {
		t.Errorf("wheel torque %v, want %v", gotT, r.mesh.Ratio*torque)
	}

	// Both gears end in torque equilibrium and both shafts received the
	// resolved loads.
	if !r.pinion.CheckTorqueEquilibrium() {
		t.Error("pinion should balance after solving")
	}
	if !r.wheel.CheckTorqueEquilibrium() {
		t.Error("wheel should balance after solving")
	}
	if len(r.inShaft.EFs()) == 0 {
		t.Error("pinion must push its forces to the input shaft")
	}
	if len(r.outShaft.ETs()) == 0 {
		t.Error("wheel must push its torque to the output shaft")
	}

	// Speed propagated to the output shaft scaled by the ratio, reversed
	// by the external mesh.
	wantOmega := -(1500 * math.Pi / 30) / r.mesh.Ratio
	if !scalar.EqualWithinAbs(r.wheel.Omega.Z, wantOmega, 1e-9) {
		t.Errorf("wheel speed %v, want %v", r.wheel.Omega.Z, wantOmega)
	}
}

// bevelPair is a 1:1 miter pair on perpendicular shafts resolved through a
// dual-radiality mesh.
type bevelPair struct {
	motor              *Motor
	inShaft, crossAxle *Shaft
	pinion, wheel      *Gear
	mesh               *Mesh
}

func newBevelPair() *bevelPair {
	b := &bevelPair{}
	b.motor = NewMotor("motor", 5e3, 1500, r3.Vec{Z: 1}, r3.Vec{})
	b.pinion = NewGear(GearConfig{
		Name: "bevel pinion", Axis: r3.Vec{Z: 1},
		Module: 2, Teeth: 20, PressureDeg: 20,
		Quality: 7, FaceWidth: 25,
		ConeDeg: 45, AvgDiameter: 50,
	})
	b.wheel = NewGear(GearConfig{
		Name: "bevel wheel", Axis: r3.Vec{X: 1},
		Module: 2, Teeth: 20, PressureDeg: 20,
		Quality: 7, FaceWidth: 25,
		ConeDeg: 45, AvgDiameter: 50,
	})
	b.inShaft = NewShaft("input shaft", r3.Vec{Z: 1}, r3.Vec{}, 100)
	b.crossAxle = NewShaft("cross axle", r3.Vec{X: 1}, r3.Vec{X: 25, Z: 25}, 100)
	b.inShaft.Mount(b.pinion, 10)
	b.crossAxle.Mount(b.wheel, -25)
	b.mesh = NewMesh("miter stage", b.pinion, b.wheel,
		MeshExternal, []r3.Vec{{X: 1}, {Z: 1}}, r3.Vec{X: 25})
	return b
}

func TestSolveBevelDrivingSide(t *testing.T) {
	b := newBevelPair()
	b.motor.Drive(b.inShaft)
	b.pinion.UpdateETs(b.inShaft.ETs())
	if status := b.pinion.Solve(); status != SolvedForces {
		t.Fatalf("pinion pass: %v, want %v", status, SolvedForces)
	}

	// Tangential force from the torque at the average pitch radius.
	torque := 5e3 / (1500 * math.Pi / 30)
	wantFt := 2 * torque / b.pinion.AvgD * 1e3
	if !scalar.EqualWithinAbs(r3.Norm(b.mesh.Ft.V), wantFt, 1e-9) {
		t.Errorf("|F_t| = %v, want %v", r3.Norm(b.mesh.Ft.V), wantFt)
	}
	if b.mesh.Ft.V.Y >= 0 {
		t.Errorf("driving side tangential force %v should oppose +y", b.mesh.Ft.V)
	}

	// The driving side resolves along the first radiality vector: the
	// radial split acts along +x, the axial split along the input axis.
	gamma := b.pinion.Gamma
	wantFr := wantFt * math.Tan(b.pinion.PhiN) * math.Cos(gamma)
	if !scalar.EqualWithinAbs(r3.Norm(b.mesh.Fr.V), wantFr, 1e-9) {
		t.Errorf("|F_r| = %v, want %v", r3.Norm(b.mesh.Fr.V), wantFr)
	}
	if b.mesh.Fr.V.X <= 0 || b.mesh.Fr.V.Z != 0 {
		t.Errorf("radial force %v should act along +x", b.mesh.Fr.V)
	}
	wantFa := wantFt * math.Tan(b.pinion.PhiN) * math.Sin(gamma)
	if !scalar.EqualWithinAbs(r3.Norm(b.mesh.Fa.V), wantFa, 1e-9) {
		t.Errorf("|F_a| = %v, want %v", r3.Norm(b.mesh.Fa.V), wantFa)
	}
	if b.mesh.Fa.V.Z <= 0 {
		t.Errorf("axial force %v should act along +z", b.mesh.Fa.V)
	}

	sum := r3.Add(r3.Add(b.mesh.Ft.V, b.mesh.Fr.V), b.mesh.Fa.V)
	if !vecEqual(b.mesh.F.V, sum, 1e-9) {
		t.Errorf("mesh resultant %v, want %v", b.mesh.F.V, sum)
	}
	if len(b.inShaft.EFs()) == 0 {
		t.Error("pinion must push its forces to the input shaft")
	}
}

func TestSolveBevelDrivenSide(t *testing.T) {
	// Resolving from the output side picks the second radiality vector.
	b := newBevelPair()
	b.wheel.UpdateETs([]Torque{{V: r3.Vec{X: 30}, Loc: b.wheel.AbsLoc}})
	if status := b.wheel.Solve(); status != SolvedForces {
		t.Fatalf("wheel pass: %v, want %v", status, SolvedForces)
	}

	wantFt := 2 * 30.0 / b.wheel.AvgD * 1e3
	if !scalar.EqualWithinAbs(r3.Norm(b.mesh.Ft.V), wantFt, 1e-9) {
		t.Errorf("|F_t| = %v, want %v", r3.Norm(b.mesh.Ft.V), wantFt)
	}
	if b.mesh.Fr.V.Z <= 0 || b.mesh.Fr.V.X != 0 {
		t.Errorf("radial force %v should act along +z on the driven side", b.mesh.Fr.V)
	}
	wantFr := wantFt * math.Tan(b.wheel.PhiN) * math.Cos(b.wheel.Gamma)
	if !scalar.EqualWithinAbs(r3.Norm(b.mesh.Fr.V), wantFr, 1e-9) {
		t.Errorf("|F_r| = %v, want %v", r3.Norm(b.mesh.Fr.V), wantFr)
	}
	wantFa := wantFt * math.Tan(b.wheel.PhiN) * math.Sin(b.wheel.Gamma)
	if !scalar.EqualWithinAbs(r3.Norm(b.mesh.Fa.V), wantFa, 1e-9) {
		t.Errorf("|F_a| = %v, want %v", r3.Norm(b.mesh.Fa.V), wantFa)
	}
	if b.mesh.Fa.V.X >= 0 {
		t.Errorf("axial force %v should oppose the axle axis", b.mesh.Fa.V)
	}

	sum := r3.Add(r3.Add(b.mesh.Ft.V, b.mesh.Fr.V), b.mesh.Fa.V)
	if !vecEqual(b.mesh.F.V, sum, 1e-9) {
		t.Errorf("mesh resultant %v, want %v", b.mesh.F.V, sum)
	}
	if len(b.crossAxle.EFs()) == 0 {
		t.Error("wheel must push its forces to its axle")
	}
}

func TestSolveKnownLoadsCloseResidual(t *testing.T) {
	// The wheel already carries its reaction torque when its only mesh is
	// resolved: zero unknowns, and registering the mesh force balances it.
	r := newReducer()
	r.motor.Drive(r.inShaft)
	r.mesh.PropagateSpeed()
	r.pinion.UpdateETs(r.inShaft.ETs())
	if status := r.pinion.Solve(); status != SolvedForces {
		t.Fatalf("pinion pass: %v", status)
	}
	torque := 5e3 / (1500 * math.Pi / 30)
	r.wheel.UpdateETs([]Torque{{V: r3.Vec{Z: r.mesh.Ratio * torque}, Loc: r.wheel.AbsLoc}})

	if status := r.wheel.Solve(); status != SolveBalanced {
		t.Fatalf("wheel pass: %v, want %v", status, SolveBalanced)
	}
	if len(r.wheel.EFs()) != 1 {
		t.Error("closing pass must register the resolved mesh force")
	}
}

func TestSolveKnownLoadsResidualOpen(t *testing.T) {
	// A wrong torque on the wheel leaves zero unknowns but no closing
	// equilibrium: the pass must report not solvable and mutate nothing.
	r := newReducer()
	r.motor.Drive(r.inShaft)
	r.mesh.PropagateSpeed()
	r.pinion.UpdateETs(r.inShaft.ETs())
	if status := r.pinion.Solve(); status != SolvedForces {
		t.Fatalf("pinion pass: %v", status)
	}
	r.wheel.UpdateETs([]Torque{{V: r3.Vec{Z: 10}, Loc: r.wheel.AbsLoc}})

	if status := r.wheel.Solve(); status != SolveNotSolvable {
		t.Fatalf("wheel pass: %v, want %v", status, SolveNotSolvable)
	}
	if len(r.wheel.EFs()) != 0 {
		t.Error("failed closing pass must leave the gear unmutated")
	}
	if len(r.outShaft.EFs()) != 0 || len(r.outShaft.ETs()) != 0 {
		t.Error("failed closing pass must leave the shaft unmutated")
	}
}

func TestSolveRepeatedPassesDoNotDoubleCount(t *testing.T) {
	r := newReducer()
	r.solve(t)
	efs, ets := len(r.wheel.EFs()), len(r.wheel.ETs())
	r.wheel.Solve()
	r.wheel.Solve()
	if len(r.wheel.EFs()) != efs || len(r.wheel.ETs()) != ets {
		t.Error("repeated solve passes must not accumulate loads")
	}
}

func TestMotorTorque(t *testing.T) {
	m := NewMotor("m", 3e3, 300, r3.Vec{Z: 1}, r3.Vec{})
	omega := 300 * math.Pi / 30
	if !scalar.EqualWithinAbs(m.Omega.Z, omega, 1e-12) {
		t.Errorf("omega %v, want %v", m.Omega.Z, omega)
	}
	if !scalar.EqualWithinAbs(m.T.V.Z, 3e3/omega, 1e-12) {
		t.Errorf("torque %v, want %v", m.T.V.Z, 3e3/omega)
	}
	// Zero speed components carry zero torque rather than dividing by zero.
	if m.T.V.X != 0 || m.T.V.Y != 0 {
		t.Errorf("torque %v should only act about the motor axis", m.T.V)
	}
}
