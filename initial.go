// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

// initialHypotheses bootstraps the hypothesis pool from the first
// min(BlockSize, len(data)) observations, updating epsilon and delta
// online as hypotheses are accepted or rejected by ASPRT. It returns the
// accepted hypotheses together with the epsilon and delta estimates at
// the end of the phase.
//
// Initially, hypotheses are generated from the whole dataset. Once a
// hypothesis is found whose inlier count on the prefix exceeds the
// current best (initialized optimistically from InitialEpsilon), the
// engine switches to sampling from that hypothesis's global inlier set,
// which is far more likely to produce further good hypotheses. Because
// bestInliers starts at the InitialEpsilon floor, a lower InitialEpsilon
// makes the first accepted hypothesis easier to beat and the switch
// happens sooner; this is intentional, not a bug to fix.
func (a *Arrsac[D, M]) initialHypotheses(estimator Estimator[D, M], data []D) ([]hypothesis[M], float32, float32) {
	n := len(data)
	m0 := a.blockSize()
	if m0 > n {
		m0 = n
	}
	prefix := data[:m0]
	minSamples := estimator.MinSamples()
	ratioThreshold := a.likelihoodRatioThreshold()

	epsilon := a.initialEpsilon()
	delta := a.initialDelta()
	bestInliers := int(epsilon * float32(m0))
	positiveLR := delta / epsilon
	negativeLR := (1 - delta) / (1 - epsilon)

	var hypotheses []hypothesis[M]
	var bestInlierIndices []int
	var deltaEstimations, deltaInliersTotal int
	usable := false

	for i := 0; i < a.maxCandidateHypotheses(); i++ {
		var candidates []M
		var err error
		if usable {
			candidates, err = fromSubset(a, estimator, data, bestInlierIndices)
		} else {
			candidates, err = fromAll(a, estimator, data)
		}
		if err != nil {
			// The dataset (or the current inlier subset) is too small
			// to draw a minimal sample from; this attempt simply
			// produces no candidates rather than aborting the run.
			continue
		}

		for _, model := range candidates {
			count, accepted := asprt(prefix, model, positiveLR, negativeLR, ratioThreshold, a.InlierThreshold, minSamples)
			if !accepted {
				deltaInliersTotal += countInliers(prefix, model, a.InlierThreshold)
				deltaEstimations++
				delta = float32(deltaInliersTotal) / float32(deltaEstimations*m0)
				if delta > epsilon {
					epsilon = 1.25 * delta
					if epsilon > 1 {
						epsilon = 1
					}
				}
				positiveLR = delta / epsilon
				negativeLR = (1 - delta) / (1 - epsilon)
				continue
			}

			if count > bestInliers {
				bestInliers = count
				epsilon = float32(count) / float32(m0)
				if delta > epsilon*0.75 {
					delta = epsilon * 0.75
				}
				positiveLR = delta / epsilon
				negativeLR = (1 - delta) / (1 - epsilon)
				bestInlierIndices = inliers(data, model, a.InlierThreshold)
				usable = true
			}
			hypotheses = append(hypotheses, hypothesis[M]{model: model, inlierCount: count})
		}
	}

	return hypotheses, epsilon, delta
}
