package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// Surface implements plotter.GridXYZ so charts can be inspected visually.
var _ plotter.GridXYZ = (*Surface)(nil)

// Dims returns the number of samples along x and y.
func (s *Surface) Dims() (c, r int) { return len(s.x), len(s.y) }

// X returns the x axis sample at column c.
func (s *Surface) X(c int) float64 { return s.x[c] }

// Y returns the y axis sample at row r.
func (s *Surface) Y(r int) float64 { return s.y[r] }

// Z returns the table value at column c, row r.
func (s *Surface) Z(c, r int) float64 { return s.z.At(r, c) }

// Heatmap renders the chart as a heat map plot, for eyeballing digitized
// design charts against their paper originals.
func Heatmap(s *Surface, title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewHeatMap(s, palette.Heat(12, 1)))
	return p
}
