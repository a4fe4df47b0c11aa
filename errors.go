// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

import "errors"

// FailureKind classifies why Model or ModelInliers returned no result.
//
//go:generate stringer -type=FailureKind
type FailureKind int

const (
	noFailure FailureKind = iota

	// InsufficientData means the dataset held fewer observations than
	// the estimator's MinSamples. This is the only failure expected in
	// ordinary use; a caller that filters tiny datasets up front will
	// never see it.
	InsufficientData

	// NoUsableModel means the initial hypothesis phase produced no
	// hypothesis at all, or none whose global inlier count exceeds
	// MinSamples.
	NoUsableModel
)

// errSamplePrecondition is returned by populate when asked to draw more
// distinct indices than the population contains. It is a programmer or
// data-degeneracy error rather than an expected outcome; the engine
// treats it as a single hypothesis-generation attempt producing zero
// models rather than aborting the run, per the typed-failure path for a
// sampler precondition violation.
var errSamplePrecondition = errors.New("arrsac: sample size exceeds population size")
