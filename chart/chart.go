// Package chart evaluates empirical design charts: rectangular tables of
// sampled curve families interpolated with a shape-preserving piecewise
// cubic (Akima) kernel and extrapolated linearly beyond the sampled domain.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// Surface is a two dimensional design chart sampled on a rectangular grid.
// Evaluation is axis-separable: each table row is interpolated along x to an
// intermediate column which is then interpolated along y.
type Surface struct {
	x, y []float64
	z    *mat.Dense
}

// NewSurface builds a chart from the x axis samples, the y axis samples and
// the table of values indexed [y][x]. Both axes must be strictly increasing
// with at least two samples and the table shape must agree with the axis
// lengths.
func NewSurface(x, y []float64, z [][]float64) (*Surface, error) {
	if len(x) < 2 || len(y) < 2 {
		return nil, errors.New("chart: need at least two samples per axis")
	}
	if !strictlyIncreasing(x) || !strictlyIncreasing(y) {
		return nil, errors.New("chart: axis samples must be strictly increasing")
	}
	if len(z) != len(y) {
		return nil, fmt.Errorf("chart: table has %d rows, want %d", len(z), len(y))
	}
	d := mat.NewDense(len(y), len(x), nil)
	for i, row := range z {
		if len(row) != len(x) {
			return nil, fmt.Errorf("chart: table row %d has %d values, want %d", i, len(row), len(x))
		}
		d.SetRow(i, row)
	}
	return &Surface{x: x, y: y, z: d}, nil
}

// At evaluates the chart at (xq, yq). Values at table knots are reproduced
// exactly; queries beyond either axis domain extrapolate linearly with the
// secant slope of the nearest boundary segment.
func (s *Surface) At(xq, yq float64) float64 {
	intermediate := make([]float64, len(s.y))
	for i := range s.y {
		intermediate[i] = evaluate1(s.x, s.z.RawRowView(i), xq)
	}
	return evaluate1(s.y, intermediate, yq)
}

// evaluate1 interpolates ys over xs at xq with an Akima spline inside the
// sampled domain and a linear continuation of the boundary secants outside
// it.
func evaluate1(xs, ys []float64, xq float64) float64 {
	n := len(xs)
	switch {
	case xq < xs[0]:
		slope := (ys[1] - ys[0]) / (xs[1] - xs[0])
		return ys[0] + slope*(xq-xs[0])
	case xq > xs[n-1]:
		slope := (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
		return ys[n-1] + slope*(xq-xs[n-1])
	}
	var akima interp.AkimaSpline
	if err := akima.Fit(xs, ys); err != nil {
		// Axes are validated at construction.
		panic(err)
	}
	return akima.Predict(xq)
}

// Curve is a one dimensional sampled design curve evaluated with linear
// interpolation. Queries beyond the sampled domain clamp to the end values.
type Curve struct {
	x, y []float64
	pl   interp.PiecewiseLinear
}

// NewCurve builds a curve from strictly increasing x samples and their
// values.
func NewCurve(x, y []float64) (*Curve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("chart: curve has %d samples but %d values", len(x), len(y))
	}
	c := &Curve{x: x, y: y}
	if err := c.pl.Fit(x, y); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	return c, nil
}

// At evaluates the curve at xq, clamping beyond the sampled domain.
func (c *Curve) At(xq float64) float64 {
	n := len(c.x)
	switch {
	case xq <= c.x[0]:
		return c.y[0]
	case xq >= c.x[n-1]:
		return c.y[n-1]
	}
	return c.pl.Predict(xq)
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}
