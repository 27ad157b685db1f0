// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// sumPMF is the summation CDF for count distributions with no closed
// form: the sum of pmf(i) for i = kmin..⌊k⌋, clamped to [0, 1]. The
// loop stops early once the sum saturates, so the cost is bounded by
// the spread of the distribution rather than by k.
func sumPMF(k float64, kmin int, pmf func(float64) float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	if k < float64(kmin) {
		return 0
	}
	if math.IsInf(k, 1) {
		return 1
	}
	sum := 0.0
	for i, top := float64(kmin), math.Floor(k); i <= top; i++ {
		prev := sum
		sum += pmf(i)
		if sum >= 1 {
			return 1
		}
		if sum == prev && sum > 0 {
			break
		}
	}
	return sum
}

// discreteQuantile returns the smallest integer k in [kmin, kmax] with
// cdf(k) ≥ p, for a distribution on the count lattice starting at
// kmin. kmax is +Inf for unbounded supports, and Quantile(1) of an
// unbounded distribution is +Inf. The search doubles k until the CDF
// reaches p and then bisects, so it needs O(log k) CDF evaluations.
func discreteQuantile(p, kmin, kmax float64, cdf func(k float64) float64) float64 {
	checkPercentile(p)
	if p == 1 && math.IsInf(kmax, 1) {
		return kmax
	}
	if cdf(kmin) >= p {
		return kmin
	}
	lo, hi := kmin, math.Max(kmin, 1)
	for cdf(hi) < p {
		lo = hi
		hi = math.Min(2*hi, kmax)
		if hi == lo {
			// Reached kmax with cdf(kmax) still a hair
			// under p from roundoff.
			return kmax
		}
	}
	for hi-lo > 1 {
		mid := math.Floor(lo + (hi-lo)/2)
		if mid <= lo || mid >= hi {
			break
		}
		if cdf(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// geomFailures draws the number of failures before the first success
// in Bernoulli(p) trials by inverting the geometric CDF at a uniform
// variate.
func geomFailures(src rand.Source, p float64) float64 {
	if p >= 1 {
		return 0
	}
	return math.Floor(math.Log1p(-uniform01(src)) / math.Log1p(-p))
}

// modeScan returns the smallest argmax of pmf over the integers
// [kmin, kmax], for distributions whose mode has no usable closed
// form. kmax must be finite; callers bound it by a few standard
// deviations past the mean.
func modeScan(pmf func(float64) float64, kmin, kmax float64) float64 {
	best, bestP := kmin, pmf(kmin)
	for k := kmin + 1; k <= kmax; k++ {
		if p := pmf(k); p > bestP {
			best, bestP = k, p
		}
	}
	return best
}
