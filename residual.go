// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

// countInliers returns the number of observations in data whose residual
// against model is strictly below threshold. A NaN residual never
// counts as an inlier, since NaN compares false against everything.
func countInliers[D any, M Model[D]](data []D, model M, threshold float64) int {
	n := 0
	for _, d := range data {
		if model.Residual(d) < threshold {
			n++
		}
	}
	return n
}

// inliers returns, in ascending order, the indices of observations in
// data whose residual against model is strictly below threshold.
func inliers[D any, M Model[D]](data []D, model M, threshold float64) []int {
	var idx []int
	for i, d := range data {
		if model.Residual(d) < threshold {
			idx = append(idx, i)
		}
	}
	return idx
}
