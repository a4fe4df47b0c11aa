// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linefit is a minimal Estimator/Model pair for fitting a 2D
// line y = A*x + B. It exists to exercise and demonstrate package
// arrsac's consensus core; the core itself has no notion of lines,
// estimators, or residuals beyond the interfaces it is given.
package linefit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point is a single 2D observation.
type Point struct {
	X, Y float64
}

// Line is a fitted model of the form Y = A*X + B.
type Line struct {
	A, B float64
}

// Residual is the vertical distance between p and the line.
func (l Line) Residual(p Point) float64 {
	return math.Abs(l.A*p.X + l.B - p.Y)
}

// Estimator fits Line models from pairs of points.
type Estimator struct{}

// MinSamples reports that a Line is determined by exactly 2 points.
func (Estimator) MinSamples() int { return 2 }

// Estimate solves the 2x2 linear system determined by selection for A
// and B. It returns no model when the two points share an X coordinate,
// since a vertical line cannot be expressed as Y = A*X + B.
func (Estimator) Estimate(selection []Point) []Line {
	p0, p1 := selection[0], selection[1]
	if p0.X == p1.X {
		return nil
	}

	coef := mat.NewDense(2, 2, []float64{
		p0.X, 1,
		p1.X, 1,
	})
	rhs := mat.NewVecDense(2, []float64{p0.Y, p1.Y})

	var x mat.VecDense
	if err := x.SolveVec(coef, rhs); err != nil {
		return nil
	}
	return []Line{{A: x.AtVec(0), B: x.AtVec(1)}}
}
