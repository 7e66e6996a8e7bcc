package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soypat/geartrain"
)

// Analysis couples a gear and one of its meshes with the verification
// parameters requested for it.
type Analysis struct {
	Gear    *geartrain.Gear
	Mesh    *geartrain.Mesh
	Bending *geartrain.BendingParams
	Pitting *geartrain.PittingParams
}

// Train is a materialized gear train: the motor, the component graph in
// declaration order and the requested verifications.
type Train struct {
	Motor *geartrain.Motor
	// DriveShaft is the shaft the motor drives.
	DriveShaft *geartrain.Shaft
	Shafts     []*geartrain.Shaft
	Gears      []*geartrain.Gear
	Meshes     []*geartrain.Mesh
	Analyses   []Analysis

	shafts map[string]*geartrain.Shaft
	gears  map[string]*geartrain.Gear
	meshes map[string]*geartrain.Mesh
}

// Gear returns the gear declared under name, or nil.
func (t *Train) Gear(name string) *geartrain.Gear { return t.gears[name] }

// Mesh returns the mesh declared under name, or nil.
func (t *Train) Mesh(name string) *geartrain.Mesh { return t.meshes[name] }

// SetLogger directs the narration of every component of the train to l.
func (t *Train) SetLogger(l zerolog.Logger) {
	t.Motor.SetLogger(l)
	for _, s := range t.Shafts {
		s.SetLogger(l)
	}
	for _, g := range t.Gears {
		g.SetLogger(l)
	}
}

// Solve seeds the train with the motor torque and resolves gear equilibria
// in declaration order. Before each pass the gear pulls the torques its
// shaft has accumulated, so resolved values propagate across shafts of
// compound trains. The per-gear statuses are returned in order.
func (t *Train) Solve() []geartrain.SolveStatus {
	t.Motor.Drive(t.DriveShaft)
	for _, m := range t.Meshes {
		m.PropagateSpeed()
	}
	statuses := make([]geartrain.SolveStatus, len(t.Gears))
	for i, g := range t.Gears {
		g.UpdateETs(g.OnShaft.ETs())
		statuses[i] = g.Solve()
	}
	return statuses
}

// Analyze runs every requested verification. The first failure aborts the
// run.
func (t *Train) Analyze() error {
	for _, a := range t.Analyses {
		if a.Bending != nil {
			if err := a.Gear.AnalyzeBending(a.Mesh, *a.Bending); err != nil {
				return fmt.Errorf("bending analysis of %s: %w", a.Gear.Name, err)
			}
		}
		if a.Pitting != nil {
			if err := a.Gear.AnalyzePitting(a.Mesh, *a.Pitting); err != nil {
				return fmt.Errorf("pitting analysis of %s: %w", a.Gear.Name, err)
			}
		}
	}
	return nil
}
