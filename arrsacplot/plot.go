// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrsacplot renders an arrsac.Trace as a diagnostic chart of
// epsilon, delta and pool size across blocks. It has no effect on, and
// is not required by, package arrsac's consensus result: it exists
// because ARRSAC's adaptive thresholds are otherwise opaque to a caller
// trying to tune BlockSize or MaxCandidateHypotheses.
package arrsacplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dgrnum/arrsac"
)

// Convergence builds a plot of epsilon and delta against block index for
// the blocks recorded in trace. The caller is responsible for saving the
// returned plot with the desired size and format.
func Convergence(trace *arrsac.Trace) *plot.Plot {
	p := plot.New()
	p.Title.Text = "ARRSAC adaptive thresholds"
	p.X.Label.Text = "block"
	p.Y.Label.Text = "probability"
	p.Add(plotter.NewGrid())

	epsilon := make(plotter.XYs, len(trace.Blocks))
	delta := make(plotter.XYs, len(trace.Blocks))
	for i, b := range trace.Blocks {
		epsilon[i] = plotter.XY{X: float64(b.Block), Y: float64(b.Epsilon)}
		delta[i] = plotter.XY{X: float64(b.Block), Y: float64(b.Delta)}
	}

	epsilonLine, err := plotter.NewLine(epsilon)
	if err != nil {
		panic(err) // only possible on malformed XYs, never reached here
	}
	deltaLine, err := plotter.NewLine(delta)
	if err != nil {
		panic(err)
	}
	deltaLine.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(epsilonLine, deltaLine)
	p.Legend.Add("epsilon", epsilonLine)
	p.Legend.Add("delta", deltaLine)
	return p
}

// PoolSize builds a plot of hypothesis pool size against block index for
// the blocks recorded in trace, showing the cap-halving schedule's
// effect on the retained pool.
func PoolSize(trace *arrsac.Trace) *plot.Plot {
	p := plot.New()
	p.Title.Text = "ARRSAC hypothesis pool size"
	p.X.Label.Text = "block"
	p.Y.Label.Text = "pool size"
	p.Add(plotter.NewGrid())

	size := make(plotter.XYs, len(trace.Blocks))
	for i, b := range trace.Blocks {
		size[i] = plotter.XY{X: float64(b.Block), Y: float64(b.PoolSize)}
	}
	line, err := plotter.NewLine(size)
	if err != nil {
		panic(err)
	}
	p.Add(line)
	return p
}
