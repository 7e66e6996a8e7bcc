package geartrain

import (
	"github.com/soypat/geartrain/chart"
	"gonum.org/v1/gonum/mat"
)

// Empirical AGMA design data, digitized from the standard charts and tables.
// All of it is immutable, loaded once and shared by every Gear.

// k0Table is the overload factor K_0 indexed by [power source][driven
// machine].
var k0Table = [3][3]float64{
	{1, 1.25, 1.75},
	{1.25, 1.5, 2},
	{1.5, 1.75, 2.25},
}

func overloadFactor(p PowerSource, d DrivenMachine) (float64, error) {
	i, err := p.index()
	if err != nil {
		return 0, err
	}
	j, err := d.index()
	if err != nil {
		return 0, err
	}
	return k0Table[i][j], nil
}

// lewisY is the Lewis form factor Y over the virtual number of teeth, used
// by the size factor K_S.
var lewisY = mustCurve(
	[]float64{
		12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22,
		24, 26, 28, 30,
		34, 38, 43, 50, 60, 75, 100, 150, 300, 400,
	},
	[]float64{
		0.245, 0.261, 0.277, 0.29, 0.296, 0.303, 0.309, 0.314, 0.322, 0.328, 0.331,
		0.337, 0.346, 0.353, 0.359,
		0.371, 0.384, 0.397, 0.409, 0.422, 0.435, 0.447, 0.46, 0.472, 0.48,
	},
)

// jPrimeChart is the bending strength geometry factor J' over helix angle
// [degrees] and tooth count.
var jPrimeChart = mustSurface(
	[]float64{
		5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34,
	},
	[]float64{20, 30, 60, 150, 500},
	[][]float64{
		{0.465, 0.475, 0.48, 0.487, 0.492, 0.495, 0.497, 0.5, 0.502, 0.505, 0.506, 0.507, 0.508, 0.507, 0.506, 0.505, 0.502, 0.5, 0.497, 0.494, 0.49, 0.486, 0.48, 0.476, 0.471, 0.465, 0.458, 0.452, 0.445, 0.439},
		{0.525, 0.53, 0.535, 0.54, 0.542, 0.547, 0.55, 0.552, 0.553, 0.554, 0.555, 0.556, 0.555, 0.554, 0.552, 0.551, 0.549, 0.545, 0.54, 0.537, 0.532, 0.527, 0.52, 0.515, 0.507, 0.5, 0.492, 0.484, 0.476, 0.47},
		{0.58, 0.585, 0.595, 0.6, 0.602, 0.605, 0.61, 0.612, 0.614, 0.615, 0.615, 0.615, 0.614, 0.611, 0.608, 0.605, 0.6, 0.595, 0.59, 0.582, 0.577, 0.571, 0.56, 0.555, 0.545, 0.537, 0.527, 0.517, 0.507, 0.495},
		{0.62, 0.63, 0.635, 0.64, 0.645, 0.647, 0.652, 0.655, 0.657, 0.657, 0.656, 0.655, 0.654, 0.65, 0.645, 0.64, 0.635, 0.63, 0.622, 0.617, 0.61, 0.6, 0.592, 0.582, 0.575, 0.56, 0.552, 0.541, 0.53, 0.518},
		{0.65, 0.655, 0.66, 0.665, 0.67, 0.675, 0.677, 0.68, 0.681, 0.681, 0.681, 0.681, 0.679, 0.676, 0.673, 0.667, 0.66, 0.655, 0.647, 0.64, 0.631, 0.62, 0.613, 0.602, 0.592, 0.58, 0.57, 0.557, 0.545, 0.532},
	},
)

// jModChart is the geometry factor multiplier J” correcting J' for the
// tooth count of the mating gear.
var jModChart = mustSurface(
	[]float64{5, 10, 15, 20, 25, 30, 35},
	[]float64{20, 30, 50, 75, 150, 500},
	[][]float64{
		{0.927, 0.929, 0.93, 0.932, 0.938, 0.943, 0.953},
		{0.952, 0.954, 0.957, 0.959, 0.961, 0.965, 0.973},
		{0.98, 0.981, 0.981, 0.982, 0.983, 0.987, 0.992},
		{1, 1, 1, 1, 1, 1, 1},
		{1.02, 1.02, 1.02, 1.019, 1.017, 1.013, 1.01},
		{1.038, 1.037, 1.035, 1.032, 1.03, 1.026, 1.02},
	},
)

// Reliability factor Y_Z table, in order of increasing reliability.
var (
	reliabilityRef   = []float64{0.5, 0.9, 0.99, 0.999, 0.9999}
	yzRef            = []float64{0.7, 0.85, 1, 1.25, 1.5}
	reliabilityCurve = mustCurve(reliabilityRef, yzRef)
)

// reliabilityFactor returns Y_Z for the target reliability: the exact table
// value on a table hit, the linear interpolation between the bracketing
// entries otherwise. Queries beyond the table clamp to the end entries.
func reliabilityFactor(rel float64) float64 {
	for i, r := range reliabilityRef {
		if rel == r {
			return yzRef[i]
		}
	}
	return reliabilityCurve.At(rel)
}

// zeTable is the elastic coefficient Z_E [√MPa] indexed by [pinion
// material][gear material] in materialOrder.
var zeTable = mat.NewDense(6, 6, []float64{
	191, 181, 179, 174, 162, 158,
	181, 174, 172, 168, 158, 154,
	179, 172, 170, 166, 156, 152,
	174, 168, 166, 163, 154, 149,
	162, 158, 156, 154, 145, 141,
	158, 154, 152, 149, 141, 137,
})

func mustSurface(x, y []float64, z [][]float64) *chart.Surface {
	s, err := chart.NewSurface(x, y, z)
	if err != nil {
		panic(err)
	}
	return s
}

func mustCurve(x, y []float64) *chart.Curve {
	c, err := chart.NewCurve(x, y)
	if err != nil {
		panic(err)
	}
	return c
}
