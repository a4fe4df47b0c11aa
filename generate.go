// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

// fromAll samples estimator.MinSamples() distinct indices from the whole
// dataset and asks the estimator for the models they produce.
func fromAll[D any, M Model[D]](a *Arrsac[D, M], estimator Estimator[D, M], data []D) ([]M, error) {
	k := estimator.MinSamples()
	samples, err := populate(a.samples, k, len(data), a.source())
	a.samples = samples
	if err != nil {
		return nil, err
	}

	selection := make([]D, k)
	for i, ix := range samples {
		selection[i] = data[ix]
	}
	return estimator.Estimate(selection), nil
}

// fromSubset samples estimator.MinSamples() distinct indices from
// [0, len(subset)) and asks the estimator for the models produced by the
// observations at data[subset[i]] for each sampled i.
func fromSubset[D any, M Model[D]](a *Arrsac[D, M], estimator Estimator[D, M], data []D, subset []int) ([]M, error) {
	k := estimator.MinSamples()
	samples, err := populate(a.samples, k, len(subset), a.source())
	a.samples = samples
	if err != nil {
		return nil, err
	}

	selection := make([]D, k)
	for i, ix := range samples {
		selection[i] = data[subset[ix]]
	}
	return estimator.Estimate(selection), nil
}
