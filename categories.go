package geartrain

// Categorical analysis inputs. Each category is a closed string enumeration:
// any value outside the set makes the consuming pipeline fail with a
// *CategoryError naming the category and the rejected value.

// PowerSource classifies the uniformity of the driving machine for the
// overload factor K_0.
type PowerSource string

const (
	PowerUniform     PowerSource = "Uniform"
	PowerLightShock  PowerSource = "Light shock"
	PowerMediumShock PowerSource = "Medium shock"
)

func (p PowerSource) index() (int, error) {
	switch p {
	case PowerUniform:
		return 0, nil
	case PowerLightShock:
		return 1, nil
	case PowerMediumShock:
		return 2, nil
	}
	return 0, &CategoryError{Category: "power source", Value: string(p)}
}

// Valid reports whether p is one of the admissible power source classes.
func (p PowerSource) Valid() error {
	_, err := p.index()
	return err
}

// DrivenMachine classifies the shock level of the driven machine for the
// overload factor K_0.
type DrivenMachine string

const (
	DrivenUniform       DrivenMachine = "Uniform"
	DrivenModerateShock DrivenMachine = "Moderate shock"
	DrivenHeavyShock    DrivenMachine = "Heavy shock"
)

func (d DrivenMachine) index() (int, error) {
	switch d {
	case DrivenUniform:
		return 0, nil
	case DrivenModerateShock:
		return 1, nil
	case DrivenHeavyShock:
		return 2, nil
	}
	return 0, &CategoryError{Category: "driven machine", Value: string(d)}
}

// Valid reports whether d is one of the admissible driven machine classes.
func (d DrivenMachine) Valid() error {
	_, err := d.index()
	return err
}

// TeethCondition selects the lead correction coefficient C_mc of the load
// distribution factor.
type TeethCondition string

const (
	TeethUncrowned TeethCondition = "uncrowned teeth"
	TeethCrowned   TeethCondition = "crowned teeth"
)

func (t TeethCondition) cmc() (float64, error) {
	switch t {
	case TeethUncrowned:
		return 1, nil
	case TeethCrowned:
		return 0.8, nil
	}
	return 0, &CategoryError{Category: "teeth condition", Value: string(t)}
}

// Valid reports whether t is one of the admissible teeth conditions.
func (t TeethCondition) Valid() error {
	_, err := t.cmc()
	return err
}

// GearingCondition selects the mesh alignment coefficients (A, B, C) that
// build the C_ma term of the load distribution factor.
type GearingCondition string

const (
	GearingOpen           GearingCondition = "Open gearing"
	GearingCommercial     GearingCondition = "Commercial, enclosed units"
	GearingPrecision      GearingCondition = "Precision, enclosed units"
	GearingExtraPrecision GearingCondition = "Extraprecision enclosed gear units"
)

func (g GearingCondition) coefficients() (a, b, c float64, err error) {
	switch g {
	case GearingOpen:
		return 0.247, 0.0167, -0.765e-4, nil
	case GearingCommercial:
		return 0.127, 0.0158, -0.93e-4, nil
	case GearingPrecision:
		return 0.0675, 0.0128, -0.926e-4, nil
	case GearingExtraPrecision:
		return 0.0036, 0.0102, -0.822e-4, nil
	}
	return 0, 0, 0, &CategoryError{Category: "gearing condition", Value: string(g)}
}

// Valid reports whether g is one of the admissible gearing conditions.
func (g GearingCondition) Valid() error {
	_, _, _, err := g.coefficients()
	return err
}

// MeshType distinguishes external gear pairs from internal (ring gear)
// pairs. The sign of the surface strength geometry denominator depends on it.
type MeshType string

const (
	MeshExternal MeshType = "External"
	MeshInternal MeshType = "Internal"
)

// Valid reports whether m is an admissible mesh type.
func (m MeshType) Valid() error {
	switch m {
	case MeshExternal, MeshInternal:
		return nil
	}
	return &CategoryError{Category: "mesh type", Value: string(m)}
}
