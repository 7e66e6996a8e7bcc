package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/geartrain"
)

const reducerYAML = `
motor:
  name: motor
  power: 5000
  speed: 1500
  axis: [0, 0, 1]
  shaft: input shaft

shafts:
  - name: input shaft
    axis: [0, 0, 1]
    loc: [0, 0, 0]
    length: 100
  - name: output shaft
    axis: [0, 0, 1]
    loc: [82.8221, 0, 0]
    length: 120

gears:
  - name: pinion
    shaft: input shaft
    module: 2
    teeth: 20
    helix: 15
    pressure: 20
    quality: 7
    face_width: 25
    material: {name: Steel, hb: 250}
  - name: wheel
    shaft: output shaft
    module: 2
    teeth: 60
    helix: 15
    pressure: 20
    quality: 7
    face_width: 25
    material: {name: Steel, hb: 250}

meshes:
  - name: stage 1
    driving: pinion
    driven: wheel
    type: External
    radiality: [[1, 0, 0]]
    loc: [20.7055, 0, 0]

analyses:
  - gear: pinion
    mesh: stage 1
    bending:
      power_source: Uniform
      driven_machine: Uniform
      shaft_diameter: 20
      ce: 1
      teeth_condition: uncrowned teeth
      shaft_length: 100
      gearing: Commercial, enclosed units
      sigma_fp: 380
      b_yn: 1.3558
      e_yn: -0.0178
      cycles: 1e8
      temperature: 80
      reliability: 0.99
    pitting:
      z_r: 1
      sigma_hp: 1100
      b_zn: 1.4488
      e_zn: -0.023
      cycles: 1e8
`

func TestParseBuildSolveAnalyze(t *testing.T) {
	cfg, err := Parse([]byte(reducerYAML))
	if err != nil {
		t.Fatal(err)
	}
	train, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if train.Gear("pinion") == nil || train.Gear("wheel") == nil {
		t.Fatal("gear lookup failed after build")
	}
	if train.Mesh("stage 1") == nil {
		t.Fatal("mesh lookup failed after build")
	}

	statuses := train.Solve()
	want := []geartrain.SolveStatus{geartrain.SolvedForces, geartrain.SolvedTorque}
	if len(statuses) != len(want) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(want))
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("status[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}

	if err := train.Analyze(); err != nil {
		t.Fatal(err)
	}
	p := train.Gear("pinion")
	if p.BendingSF <= 0 || p.WearSF <= 0 {
		t.Errorf("bending SF %v, wear SF %v, want both positive", p.BendingSF, p.WearSF)
	}
	if w := train.Gear("wheel"); w.Omega.Z >= 0 {
		t.Errorf("wheel speed %v, want reversed by the external mesh", w.Omega)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reducer.yml")
	if err := os.WriteFile(path, []byte(reducerYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Build(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("want error for a missing file")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("motor: [")); err == nil {
		t.Error("want decode error")
	}
}

func TestBuildUnknownReferences(t *testing.T) {
	for _, test := range []struct {
		name, old, new string
	}{
		{"gear shaft", "shaft: input shaft\n    module: 2\n    teeth: 20", "shaft: ghost shaft\n    module: 2\n    teeth: 20"},
		{"mesh driving gear", "driving: pinion", "driving: ghost gear"},
		{"mesh driven gear", "driven: wheel", "driven: ghost gear"},
		{"motor shaft", "shaft: input shaft\n\nshafts:", "shaft: ghost shaft\n\nshafts:"},
		{"analysis gear", "- gear: pinion", "- gear: ghost gear"},
		{"analysis mesh", "mesh: stage 1\n    bending:", "mesh: ghost mesh\n    bending:"},
	} {
		doc := strings.Replace(reducerYAML, test.old, test.new, 1)
		if doc == reducerYAML {
			t.Fatalf("%s: fixture edit did not apply", test.name)
		}
		cfg, err := Parse([]byte(doc))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cfg.Build(); err == nil {
			t.Errorf("%s: want build error", test.name)
		}
	}
}

func TestBuildDuplicateGear(t *testing.T) {
	doc := strings.Replace(reducerYAML, "name: wheel", "name: pinion", 1)
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Build(); err == nil {
		t.Error("want error for duplicate gear name")
	}
}

func TestBuildInvalidCategories(t *testing.T) {
	for _, test := range []struct {
		category, old, new string
	}{
		{"mesh type", "type: External", "type: Sideways"},
		{"power source", "power_source: Uniform", "power_source: Perpetual"},
		{"teeth condition", "teeth_condition: uncrowned teeth", "teeth_condition: serrated"},
		{"gearing condition", "gearing: Commercial, enclosed units", "gearing: Submerged"},
	} {
		doc := strings.Replace(reducerYAML, test.old, test.new, 1)
		if doc == reducerYAML {
			t.Fatalf("%s: fixture edit did not apply", test.category)
		}
		cfg, err := Parse([]byte(doc))
		if err != nil {
			t.Fatal(err)
		}
		_, err = cfg.Build()
		var cerr *geartrain.CategoryError
		if !errors.As(err, &cerr) {
			t.Fatalf("%s: got %v, want category error", test.category, err)
		}
		if cerr.Category != test.category {
			t.Errorf("category %q, want %q", cerr.Category, test.category)
		}
	}
}
