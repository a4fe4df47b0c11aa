// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

import "math"

// asprt runs the adaptive sequential probability ratio test over data,
// reporting the inlier count and true if model is accepted, or false if
// it is rejected.
//
// positiveLR and negativeLR are δ/ε and (1-δ)/(1-ε) for the engine's
// current estimates; ratioThreshold is the upper bound the running
// likelihood ratio must not cross. The likelihood ratio accumulates in
// single precision, matching the reference implementation: the test is
// scale-insensitive, and an underflow to zero on a long inlier run is
// harmless since only the upper bound and NaN are checked.
//
// Rejection is immediate: once the ratio crosses ratioThreshold or goes
// NaN, asprt stops scanning data and returns false without counting any
// further observations, so a rejected hypothesis's partial inlier count
// never leaks into the result.
func asprt[D any, M Model[D]](data []D, model M, positiveLR, negativeLR, ratioThreshold float32, threshold float64, minSamples int) (int, bool) {
	l := float32(1.0)
	inliers := 0
	for _, d := range data {
		if model.Residual(d) < threshold {
			inliers++
			l *= positiveLR
		} else {
			l *= negativeLR
		}
		if l > ratioThreshold || math.IsNaN(float64(l)) {
			return 0, false
		}
	}
	if inliers < minSamples {
		return 0, false
	}
	return inliers, true
}
