// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrsac implements the ARRSAC algorithm for robust model fitting:
// Adaptive Real-Time Random Sample Consensus.
//
// Given an Estimator that can produce candidate models from a minimal
// sample of observations, and a dataset of observations, Arrsac returns
// the model with maximum support under a residual threshold. It uses a
// sequential probability ratio test (SPRT) to reject bad hypotheses in
// expected O(1) data, adapting the test's thresholds online from the
// inlier ratios it observes, and progressively evaluates a shrinking pool
// of hypotheses over a growing prefix of the data.
//
// The algorithm is described in Raguram, Rahul, Jan-Michael Frahm, and
// Marc Pollefeys. "A comparative analysis of RANSAC techniques leading to
// adaptive real-time random sample consensus." European Conference on
// Computer Vision. Springer, 2008, combined with the SPRT test from
// Matas, Jiri, and Ondrej Chum. "Randomized RANSAC with sequential
// probability ratio test." Tenth IEEE International Conference on
// Computer Vision (ICCV'05) Volume 1. Vol. 2. IEEE, 2005.
//
// Don't forget to shuffle your input data to avoid bias before calling
// Model or ModelInliers: Arrsac draws samples uniformly from the dataset
// but never reorders it.
package arrsac // import "github.com/dgrnum/arrsac"
