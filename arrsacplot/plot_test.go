// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsacplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/plot/vg"

	"github.com/dgrnum/arrsac"
	"github.com/dgrnum/arrsac/arrsacplot"
	"github.com/dgrnum/arrsac/linefit"
)

func TestConvergenceAndPoolSizeSavable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pts := make([]linefit.Point, 200)
	for i := range pts {
		x := float64(i) * 0.1
		pts[i] = linefit.Point{X: x, Y: 2*x + 1 + 0.01*rng.NormFloat64()}
	}

	trace := &arrsac.Trace{}
	engine := arrsac.NewArrsac[linefit.Point, linefit.Line](0.05)
	engine.Src = rand.New(rand.NewSource(42))
	engine.BlockSize = 20
	engine.Trace = trace

	if _, _, ok := engine.ModelInliers(linefit.Estimator{}, pts); !ok {
		t.Fatal("expected a model")
	}
	if len(trace.Blocks) == 0 {
		t.Fatal("expected at least one recorded block")
	}

	dir := t.TempDir()

	p := arrsacplot.Convergence(trace)
	if err := p.Save(8*vg.Centimeter, 6*vg.Centimeter, filepath.Join(dir, "convergence.svg")); err != nil {
		t.Fatalf("saving convergence plot: %v", err)
	}

	q := arrsacplot.PoolSize(trace)
	if err := q.Save(8*vg.Centimeter, 6*vg.Centimeter, filepath.Join(dir, "poolsize.svg")); err != nil {
		t.Fatalf("saving pool size plot: %v", err)
	}

	for _, name := range []string{"convergence.svg", "poolsize.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}
