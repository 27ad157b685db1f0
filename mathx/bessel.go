// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Modified Bessel functions of the first kind, from the ascending
// series of Abramowitz and Stegun 9.6.10 and 9.6.12. Every series term
// has the same sign, so the sums carry no cancellation and converge to
// machine precision; the cost grows linearly in |x| until the result
// overflows near |x| = 713. The standard math package and gonum's
// mathext cover only the J and Y Bessel families.

// BesselI0 returns the modified Bessel function of the first kind of
// order zero, I₀(x).
func BesselI0(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if math.IsInf(x, 0) {
		return math.Inf(1)
	}
	q := x * x / 4
	term, sum := 1.0, 1.0
	for k := 1.0; ; k++ {
		term *= q / (k * k)
		sum += term
		if term < sum*1e-17 || math.IsInf(sum, 1) {
			return sum
		}
	}
}

// BesselI1 returns the modified Bessel function of the first kind of
// order one, I₁(x).
func BesselI1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		// I₁(±∞) = ±∞ and I₁(0) = 0, so x itself is the limit.
		return x
	}
	q := x * x / 4
	term, sum := x/2, x/2
	for k := 1.0; ; k++ {
		term *= q / (k * (k + 1))
		sum += term
		if math.Abs(term) < math.Abs(sum)*1e-17 || math.IsInf(sum, 0) {
			return sum
		}
	}
}
