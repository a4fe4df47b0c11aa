// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

// BlockStat is one block's worth of adaptive state recorded into a
// Trace during ModelInliers. Block 0 is the initial hypothesis phase;
// blocks 1, 2, ... are successive iterations of the progressive
// winnowing loop.
type BlockStat struct {
	// Block is the block index; 0 for the initial phase.
	Block int
	// PrefixLength is the number of observations evaluated so far.
	PrefixLength int
	// Epsilon is the current estimated inlier probability under a good
	// model.
	Epsilon float32
	// Delta is the current estimated inlier probability under a bad
	// model.
	Delta float32
	// BestInlierCount is the leading hypothesis's inlier count over
	// PrefixLength observations.
	BestInlierCount int
	// PoolSize is the number of hypotheses retained after this block's
	// truncation.
	PoolSize int
}

// Trace records the adaptive state of an Arrsac run for offline
// inspection; see package arrsacplot for rendering one as a chart. A
// Trace is not reset between calls: assign a fresh Trace to Arrsac.Trace
// before any ModelInliers call that should be recorded independently of
// earlier ones.
type Trace struct {
	Blocks []BlockStat
}

func (t *Trace) record(stat BlockStat) {
	if t == nil {
		return
	}
	t.Blocks = append(t.Blocks, stat)
}
