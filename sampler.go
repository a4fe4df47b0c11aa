// Copyright ©2026 The Arrsac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrsac

// populate fills (and returns) scratch with exactly k distinct indices
// drawn uniformly from [0, n), reusing scratch's backing array when it
// has enough capacity.
//
// Each index is drawn by rejection sampling over a scaled 32-bit
// multiplication: mul = uint64(rng.Uint32()) * uint64(n) is accepted
// when its low 32 bits are at least n's wraparound remainder, and the
// candidate index is the high 32 bits of mul. This is the same
// no-bias technique stat/sampleuv uses for "generate individual random
// numbers and check uniqueness" sampling, adapted to avoid a division
// per draw. Rejecting already-seen indices with a linear scan is
// acceptable because k is small, typically no more than 8.
//
// populate reports errSamplePrecondition if n < k; it does not draw any
// indices in that case.
func populate(scratch []uint32, k, n int, rng Source) ([]uint32, error) {
	if n < k {
		return scratch[:0], errSamplePrecondition
	}
	un := uint32(n)
	threshold := -un % un

	scratch = scratch[:0]
	for len(scratch) < k {
		for {
			mul := uint64(rng.Uint32()) * uint64(un)
			if uint32(mul) < threshold {
				continue
			}
			s := uint32(mul >> 32)
			if !containsUint32(scratch, s) {
				scratch = append(scratch, s)
				break
			}
		}
	}
	return scratch, nil
}

func containsUint32(xs []uint32, v uint32) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
