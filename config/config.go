// Package config loads gear train definitions from YAML files and builds the
// component graph they describe.
package config

import (
	"fmt"
	"os"

	"github.com/soypat/geartrain"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Config is the YAML description of a gear train and the verifications to
// run on it.
type Config struct {
	Motor    MotorConfig      `yaml:"motor"`
	Shafts   []ShaftConfig    `yaml:"shafts"`
	Gears    []GearConfig     `yaml:"gears"`
	Meshes   []MeshConfig     `yaml:"meshes"`
	Analyses []AnalysisConfig `yaml:"analyses"`
}

type MotorConfig struct {
	Name  string     `yaml:"name"`
	Power float64    `yaml:"power"`
	Speed float64    `yaml:"speed"`
	Axis  [3]float64 `yaml:"axis"`
	Loc   [3]float64 `yaml:"loc"`
	// Shaft names the shaft the motor drives.
	Shaft string `yaml:"shaft"`
}

type ShaftConfig struct {
	Name   string     `yaml:"name"`
	Axis   [3]float64 `yaml:"axis"`
	Loc    [3]float64 `yaml:"loc"`
	Length float64    `yaml:"length"`
}

type GearConfig struct {
	Name      string         `yaml:"name"`
	Shaft     string         `yaml:"shaft"`
	Offset    float64        `yaml:"offset"`
	Module    float64        `yaml:"module"`
	Teeth     int            `yaml:"teeth"`
	Helix     float64        `yaml:"helix"`
	Pressure  float64        `yaml:"pressure"`
	Quality   float64        `yaml:"quality"`
	FaceWidth float64        `yaml:"face_width"`
	Material  MaterialConfig `yaml:"material"`
	// Cone and AvgDiameter describe bevel-like gears resolved through a
	// dual-radiality mesh. Zero otherwise.
	Cone        float64 `yaml:"cone"`
	AvgDiameter float64 `yaml:"avg_diameter"`
}

type MaterialConfig struct {
	Name string  `yaml:"name"`
	HB   float64 `yaml:"hb"`
}

type MeshConfig struct {
	Name      string       `yaml:"name"`
	Driving   string       `yaml:"driving"`
	Driven    string       `yaml:"driven"`
	Type      string       `yaml:"type"`
	Radiality [][3]float64 `yaml:"radiality"`
	Loc       [3]float64   `yaml:"loc"`
}

type AnalysisConfig struct {
	Gear    string         `yaml:"gear"`
	Mesh    string         `yaml:"mesh"`
	Bending *BendingConfig `yaml:"bending"`
	Pitting *PittingConfig `yaml:"pitting"`
}

type BendingConfig struct {
	PowerSource   string  `yaml:"power_source"`
	DrivenMachine string  `yaml:"driven_machine"`
	ShaftDiameter float64 `yaml:"shaft_diameter"`
	Ce            float64 `yaml:"ce"`
	Teeth         string  `yaml:"teeth_condition"`
	ShaftLength   float64 `yaml:"shaft_length"`
	Gearing       string  `yaml:"gearing"`
	SigmaFP       float64 `yaml:"sigma_fp"`
	BYN           float64 `yaml:"b_yn"`
	EYN           float64 `yaml:"e_yn"`
	Cycles        float64 `yaml:"cycles"`
	Temperature   float64 `yaml:"temperature"`
	Reliability   float64 `yaml:"reliability"`
}

type PittingConfig struct {
	ZR      float64 `yaml:"z_r"`
	SigmaHP float64 `yaml:"sigma_hp"`
	BZN     float64 `yaml:"b_zn"`
	EZN     float64 `yaml:"e_zn"`
	Cycles  float64 `yaml:"cycles"`
}

// Load reads and decodes a train definition from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a train definition from raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

// Build materializes the component graph the configuration describes. Name
// references are resolved and categorical inputs validated before any
// component is built.
func (c *Config) Build() (*Train, error) {
	t := &Train{
		shafts: make(map[string]*geartrain.Shaft, len(c.Shafts)),
		gears:  make(map[string]*geartrain.Gear, len(c.Gears)),
		meshes: make(map[string]*geartrain.Mesh, len(c.Meshes)),
	}
	for _, sc := range c.Shafts {
		if _, ok := t.shafts[sc.Name]; ok {
			return nil, fmt.Errorf("config: duplicate shaft %q", sc.Name)
		}
		s := geartrain.NewShaft(sc.Name, vec(sc.Axis), vec(sc.Loc), sc.Length)
		t.shafts[sc.Name] = s
		t.Shafts = append(t.Shafts, s)
	}
	for _, gc := range c.Gears {
		s, ok := t.shafts[gc.Shaft]
		if !ok {
			return nil, fmt.Errorf("config: gear %q mounted on unknown shaft %q", gc.Name, gc.Shaft)
		}
		if _, ok := t.gears[gc.Name]; ok {
			return nil, fmt.Errorf("config: duplicate gear %q", gc.Name)
		}
		g := geartrain.NewGear(geartrain.GearConfig{
			Name:        gc.Name,
			Axis:        s.Axis,
			Module:      gc.Module,
			Teeth:       gc.Teeth,
			HelixDeg:    gc.Helix,
			PressureDeg: gc.Pressure,
			Quality:     gc.Quality,
			FaceWidth:   gc.FaceWidth,
			ConeDeg:     gc.Cone,
			AvgDiameter: gc.AvgDiameter,
			Material: geartrain.Material{
				Name: gc.Material.Name,
				HB:   gc.Material.HB,
			},
		})
		s.Mount(g, gc.Offset)
		t.gears[gc.Name] = g
		t.Gears = append(t.Gears, g)
	}
	for _, mc := range c.Meshes {
		driving, ok := t.gears[mc.Driving]
		if !ok {
			return nil, fmt.Errorf("config: mesh %q driving gear %q unknown", mc.Name, mc.Driving)
		}
		driven, ok := t.gears[mc.Driven]
		if !ok {
			return nil, fmt.Errorf("config: mesh %q driven gear %q unknown", mc.Name, mc.Driven)
		}
		typ := geartrain.MeshType(mc.Type)
		if err := typ.Valid(); err != nil {
			return nil, err
		}
		if n := len(mc.Radiality); n < 1 || n > 2 {
			return nil, fmt.Errorf("config: mesh %q needs one or two radiality vectors, got %d", mc.Name, n)
		}
		radiality := make([]r3.Vec, len(mc.Radiality))
		for i, r := range mc.Radiality {
			radiality[i] = vec(r)
		}
		m := geartrain.NewMesh(mc.Name, driving, driven, typ, radiality, vec(mc.Loc))
		t.meshes[mc.Name] = m
		t.Meshes = append(t.Meshes, m)
	}
	driveShaft, ok := t.shafts[c.Motor.Shaft]
	if !ok {
		return nil, fmt.Errorf("config: motor drives unknown shaft %q", c.Motor.Shaft)
	}
	t.Motor = geartrain.NewMotor(c.Motor.Name, c.Motor.Power, c.Motor.Speed, vec(c.Motor.Axis), vec(c.Motor.Loc))
	t.DriveShaft = driveShaft
	for _, ac := range c.Analyses {
		a, err := t.buildAnalysis(ac)
		if err != nil {
			return nil, err
		}
		t.Analyses = append(t.Analyses, a)
	}
	return t, nil
}

func (t *Train) buildAnalysis(ac AnalysisConfig) (Analysis, error) {
	g, ok := t.gears[ac.Gear]
	if !ok {
		return Analysis{}, fmt.Errorf("config: analysis of unknown gear %q", ac.Gear)
	}
	m, ok := t.meshes[ac.Mesh]
	if !ok {
		return Analysis{}, fmt.Errorf("config: analysis of gear %q on unknown mesh %q", ac.Gear, ac.Mesh)
	}
	a := Analysis{Gear: g, Mesh: m}
	if ac.Bending != nil {
		b := geartrain.BendingParams{
			PowerSource:    geartrain.PowerSource(ac.Bending.PowerSource),
			DrivenMachine:  geartrain.DrivenMachine(ac.Bending.DrivenMachine),
			ShaftDiameter:  ac.Bending.ShaftDiameter,
			Ce:             ac.Bending.Ce,
			TeethCondition: geartrain.TeethCondition(ac.Bending.Teeth),
			ShaftLength:    ac.Bending.ShaftLength,
			Gearing:        geartrain.GearingCondition(ac.Bending.Gearing),
			SigmaFP:        ac.Bending.SigmaFP,
			BYN:            ac.Bending.BYN,
			EYN:            ac.Bending.EYN,
			Cycles:         ac.Bending.Cycles,
			Temperature:    ac.Bending.Temperature,
			Reliability:    ac.Bending.Reliability,
		}
		for _, err := range []error{
			b.PowerSource.Valid(),
			b.DrivenMachine.Valid(),
			b.TeethCondition.Valid(),
			b.Gearing.Valid(),
		} {
			if err != nil {
				return Analysis{}, err
			}
		}
		a.Bending = &b
	}
	if ac.Pitting != nil {
		a.Pitting = &geartrain.PittingParams{
			ZR:      ac.Pitting.ZR,
			SigmaHP: ac.Pitting.SigmaHP,
			BZN:     ac.Pitting.BZN,
			EZN:     ac.Pitting.EZN,
			Cycles:  ac.Pitting.Cycles,
		}
	}
	return a, nil
}
