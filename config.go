// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

import "golang.org/x/exp/rand"

const (
	defaultMaxCandidateHypotheses           = 50
	defaultBlockSize                        = 100
	defaultLikelihoodRatioThreshold float32  = 10.0
	defaultInitialEpsilon           float32  = 0.05
	defaultInitialDelta             float32  = 0.01
)

// Arrsac is an Adaptive Real-Time Random Sample Consensus engine.
//
// Zero-value fields take the defaults documented on them; only
// InlierThreshold has no usable default and must be set by the caller.
// Set fields directly on a value returned by NewArrsac (or on a
// zero-value Arrsac{InlierThreshold: ...}) before the first call to
// Model or ModelInliers; the engine does not support reconfiguration
// once a run has used its scratch state.
//
// D is the observation type and M the model type produced by the
// Estimator passed to Model and ModelInliers; M must implement
// Model[D].
type Arrsac[D any, M Model[D]] struct {
	// MaxCandidateHypotheses bounds the size of the hypothesis pool
	// generated per block. If 0, defaults to 50.
	MaxCandidateHypotheses int

	// BlockSize is the number of observations added to the evaluation
	// prefix before hypotheses are regenerated and the pool winnowed.
	// If 0, defaults to 100.
	BlockSize int

	// LikelihoodRatioThreshold is the upper bound on the ASPRT running
	// likelihood ratio; crossing it rejects the current hypothesis.
	// Raising it finds a good result more reliably at the cost of
	// execution time; lowering it speeds up execution at the risk of
	// rejecting good models. If 0, defaults to 10.
	LikelihoodRatioThreshold float32

	// InitialEpsilon is the starting estimate of the probability that
	// an observation is an inlier to a good model. It should be set
	// pessimistically low so that early hypotheses are not rejected
	// before delta can be estimated. If 0, defaults to 0.05.
	InitialEpsilon float32

	// InitialDelta is the starting estimate of the probability that an
	// observation is an inlier to a bad (random) model. Must be lower
	// than InitialEpsilon. If 0, defaults to 0.01.
	InitialDelta float32

	// InlierThreshold is the residual below which an observation
	// counts as an inlier to a model. There is no usable default; it
	// is specific to the residual function and must always be set.
	InlierThreshold float64

	// Src supplies uniform 32-bit words for sampling. If nil, a
	// deterministically seeded source is constructed on first use.
	Src Source

	// Trace, if non-nil, is appended to with one BlockStat for the
	// initial hypothesis phase (Block 0) and one per block of the
	// progressive winnowing loop, recording how epsilon, delta and
	// the hypothesis pool evolved. See package arrsacplot to render a
	// recorded Trace.
	Trace *Trace

	lastFailure FailureKind
	samples     []uint32
}

// NewArrsac returns an Arrsac configured with the reference defaults,
// requiring only the dataset-specific inlier threshold. Every other
// field may be set on the returned value before first use.
func NewArrsac[D any, M Model[D]](inlierThreshold float64) *Arrsac[D, M] {
	return &Arrsac[D, M]{InlierThreshold: inlierThreshold}
}

// LastFailure reports why the most recent call to Model or ModelInliers
// returned false. Its value is unspecified before the first call and
// after any call that succeeded.
func (a *Arrsac[D, M]) LastFailure() FailureKind { return a.lastFailure }

func (a *Arrsac[D, M]) maxCandidateHypotheses() int {
	if a.MaxCandidateHypotheses == 0 {
		return defaultMaxCandidateHypotheses
	}
	return a.MaxCandidateHypotheses
}

func (a *Arrsac[D, M]) blockSize() int {
	if a.BlockSize == 0 {
		return defaultBlockSize
	}
	return a.BlockSize
}

func (a *Arrsac[D, M]) likelihoodRatioThreshold() float32 {
	if a.LikelihoodRatioThreshold == 0 {
		return defaultLikelihoodRatioThreshold
	}
	return a.LikelihoodRatioThreshold
}

func (a *Arrsac[D, M]) initialEpsilon() float32 {
	if a.InitialEpsilon == 0 {
		return defaultInitialEpsilon
	}
	return a.InitialEpsilon
}

func (a *Arrsac[D, M]) initialDelta() float32 {
	if a.InitialDelta == 0 {
		return defaultInitialDelta
	}
	return a.InitialDelta
}

func (a *Arrsac[D, M]) source() Source {
	if a.Src == nil {
		a.Src = rand.New(rand.NewSource(1))
	}
	return a.Src
}
