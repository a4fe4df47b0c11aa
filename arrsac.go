// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

import "sort"

// Model returns the model with maximum support under InlierThreshold, or
// false if no result could be produced. Call LastFailure to find out
// why.
func (a *Arrsac[D, M]) Model(estimator Estimator[D, M], data []D) (M, bool) {
	model, _, ok := a.ModelInliers(estimator, data)
	return model, ok
}

// ModelInliers returns the model with maximum support under
// InlierThreshold together with its inlier indices over the whole
// dataset, in ascending order, or false if no result could be produced.
//
// Shuffle data before calling: ModelInliers samples it uniformly but
// never reorders it, and it scores hypotheses against a growing prefix
// of data, so an unshuffled dataset biases which observations that
// prefix holds.
func (a *Arrsac[D, M]) ModelInliers(estimator Estimator[D, M], data []D) (M, []int, bool) {
	var zero M
	minSamples := estimator.MinSamples()
	if len(data) < minSamples {
		a.lastFailure = InsufficientData
		return zero, nil, false
	}

	hypotheses, _, delta := a.initialHypotheses(estimator, data)

	sortHypotheses(hypotheses)
	maxHyp := a.maxCandidateHypotheses()
	if len(hypotheses) > maxHyp {
		hypotheses = hypotheses[:maxHyp]
	}

	// hypotheses[0].inlierCount is only the count over the initial
	// phase's prefix; the usability check needs the global count over
	// the whole dataset, same as the bestInliersGlobal computation below
	// and the final return.
	if len(hypotheses) == 0 || len(inliers(data, hypotheses[0].model, a.InlierThreshold)) <= minSamples {
		a.lastFailure = NoUsableModel
		return zero, nil, false
	}

	initialPrefix := a.blockSize()
	if initialPrefix > len(data) {
		initialPrefix = len(data)
	}
	a.Trace.record(BlockStat{
		Block:           0,
		PrefixLength:    initialPrefix,
		Epsilon:         float32(hypotheses[0].inlierCount) / float32(initialPrefix),
		Delta:           delta,
		BestInlierCount: hypotheses[0].inlierCount,
		PoolSize:        len(hypotheses),
	})

	blockSize := a.blockSize()
	ratioThreshold := a.likelihoodRatioThreshold()

	for block := 1; ; block++ {
		start := block * blockSize
		end := start + blockSize

		exhausted := false
		for i := start; i < end; i++ {
			if i >= len(data) {
				exhausted = true
				break
			}
			d := data[i]
			for j := range hypotheses {
				if hypotheses[j].model.Residual(d) < a.InlierThreshold {
					hypotheses[j].inlierCount++
				}
			}
		}
		if exhausted {
			break
		}

		epsilon := float32(hypotheses[0].inlierCount) / float32(end)
		if delta > epsilon*0.75 {
			delta = epsilon * 0.75
		}
		positiveLR := delta / epsilon
		negativeLR := (1 - delta) / (1 - epsilon)

		bestInliersGlobal := inliers(data, hypotheses[0].model, a.InlierThreshold)

		// Make maxHyp hypothesis-generation attempts. The generator call
		// can produce zero models or several, so this counts
		// attempts rather than accepted hypotheses; a minimum-production
		// retry loop could diverge on a pathological dataset.
		for i := 0; i < maxHyp; i++ {
			candidates, err := fromSubset(a, estimator, data, bestInliersGlobal)
			if err != nil {
				continue
			}
			for _, model := range candidates {
				count, accepted := asprt(data[:end], model, positiveLR, negativeLR, ratioThreshold, a.InlierThreshold, minSamples)
				if accepted {
					hypotheses = append(hypotheses, hypothesis[M]{model: model, inlierCount: count})
				}
			}
		}

		sortHypotheses(hypotheses)
		if poolCap := maxHyp >> uint(block); poolCap < len(hypotheses) {
			hypotheses = hypotheses[:poolCap]
		}

		// With a pool-size cap of 1, the block-1 cap 1>>1 is 0 and
		// empties the pool entirely; stop here rather than index into it.
		if len(hypotheses) == 0 {
			a.Trace.record(BlockStat{
				Block:        block,
				PrefixLength: end,
				Epsilon:      epsilon,
				Delta:        delta,
				PoolSize:     0,
			})
			break
		}

		a.Trace.record(BlockStat{
			Block:           block,
			PrefixLength:    end,
			Epsilon:         epsilon,
			Delta:           delta,
			BestInlierCount: hypotheses[0].inlierCount,
			PoolSize:        len(hypotheses),
		})

		if len(hypotheses) <= 1 {
			break
		}
	}

	if len(hypotheses) == 0 {
		a.lastFailure = NoUsableModel
		return zero, nil, false
	}

	// Ties keep the earliest-sorted hypothesis; the reference
	// implementation's max_by_key keeps the last one on a tie instead.
	// spec.md leaves tie-break unspecified beyond fixed-seed
	// determinism, so this is a deliberate, not an accidental, choice.
	best := hypotheses[0]
	for _, h := range hypotheses[1:] {
		if h.inlierCount > best.inlierCount {
			best = h
		}
	}
	return best.model, inliers(data, best.model, a.InlierThreshold), true
}

func sortHypotheses[M any](h []hypothesis[M]) {
	sort.SliceStable(h, func(i, j int) bool { return h[i].inlierCount > h[j].inlierCount })
}
