package geartrain

// Material holds the material properties the pitting pipeline consumes. Name
// must be one of the six materials covered by the elastic coefficient table.
type Material struct {
	// Name of the material, e.g. MaterialSteel.
	Name string
	// HB is the Brinell hardness of the material surface.
	HB float64
}

// Materials covered by the elastic coefficient Z_E table. The row/column
// order of the table follows the order below.
const (
	MaterialSteel          = "Steel"
	MaterialMalleableIron  = "Malleable iron"
	MaterialNodularIron    = "Nodular iron"
	MaterialCastIron       = "Cast iron"
	MaterialAluminumBronze = "Aluminum bronze"
	MaterialTinBronze      = "Tin bronze"
)

var materialOrder = []string{
	MaterialSteel,
	MaterialMalleableIron,
	MaterialNodularIron,
	MaterialCastIron,
	MaterialAluminumBronze,
	MaterialTinBronze,
}

func materialIndex(name, category string) (int, error) {
	for i, m := range materialOrder {
		if m == name {
			return i, nil
		}
	}
	return 0, &CategoryError{Category: category, Value: name}
}
