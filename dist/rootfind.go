// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
)

// quantileTol is the relative tolerance for quantile bisection when a
// distribution has no closed-form inverse CDF.
const quantileTol = 1e-12

var errBracket = errors.New("quantile bracket search diverged")

// bisect returns the x in [lo, hi] where f crosses zero, by binary
// search. f must be monotonically nondecreasing with f(lo) ≤ 0 ≤
// f(hi). The search stops once the bracket is within tol relative to
// its magnitude, or can no longer be split in float64.
func bisect(f func(float64) float64, lo, hi, tol float64) float64 {
	for i := 0; i < 200 && hi-lo > tol*math.Max(1, math.Abs(lo)); i++ {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break
		}
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

// invCDF inverts a continuous, strictly increasing CDF by bisection,
// for distributions whose quantile has no closed form. The initial
// bracket [lo, hi] need only be a plausible starting interval inside
// the support: it is doubled downward and upward until it encloses the
// target probability p. If doubling overflows float64 without
// enclosing p, the CDF never reaches p and invCDF panics with an error
// whose cause names the distribution.
func invCDF(name string, cdf func(float64) float64, p, lo, hi float64) float64 {
	for cdf(lo) > p {
		lo -= hi - lo
		if math.IsInf(lo, -1) {
			panic(errors.Wrapf(errBracket, "%s: Quantile(%v)", name, p))
		}
	}
	for cdf(hi) < p {
		hi += hi - lo
		if math.IsInf(hi, 1) {
			panic(errors.Wrapf(errBracket, "%s: Quantile(%v)", name, p))
		}
	}
	return bisect(func(x float64) float64 { return cdf(x) - p }, lo, hi, quantileTol)
}
