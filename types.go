// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

// Source is a source of uniform 32-bit random words. It should have the
// same properties wanted for a Monte Carlo simulation: fast, with no
// discernible pattern between successive words.
//
// *golang.org/x/exp/rand.Rand satisfies Source directly.
type Source interface {
	Uint32() uint32
}

// Model is a fitted model that scores how well a single observation
// agrees with it. Smaller residuals are better fits; a NaN residual
// marks an observation the model cannot meaningfully evaluate, and is
// always treated as an outlier.
type Model[D any] interface {
	Residual(d D) float64
}

// Estimator produces candidate models from a minimal sample of
// observations. An Estimator has no notion of which candidate is "best";
// Estimate may return zero, one, or several models for the same sample,
// for example when the underlying system has multiple algebraic roots.
type Estimator[D any, M Model[D]] interface {
	// MinSamples is the number of observations Estimate requires per
	// call. It is constant for a given Estimator and always at least 1.
	MinSamples() int

	// Estimate returns zero or more models consistent with selection.
	// selection always has length MinSamples() and its elements are
	// pairwise distinct observations drawn from the dataset.
	Estimate(selection []D) []M
}

// hypothesis is a candidate model paired with its inlier count on
// whatever prefix of the data was last evaluated against it. The count
// is only meaningful relative to that prefix's length and must only be
// compared against counts computed against the same prefix.
type hypothesis[M any] struct {
	model       M
	inlierCount int
}
