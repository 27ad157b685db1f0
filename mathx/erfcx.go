// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// ErfcX returns the scaled complementary error function
// exp(x²)·erfc(x). Unlike the naive product, it stays finite for
// large positive x, where it decays like 1/(x√π).
func ErfcX(x float64) float64 {
	if x < 26 {
		// Safe to form the product directly. For very negative
		// x the exp overflows and the result is +Inf, which is
		// the correct limit.
		return math.Exp(x*x) * math.Erfc(x)
	}
	// Asymptotic expansion, Abramowitz and Stegun 7.1.23. The
	// first omitted term is 945z⁵, below 3e-13 relative at x = 26.
	z := 1 / (2 * x * x)
	return 1 / (x * math.SqrtPi) * (1 + z*(-1+z*(3+z*(-15+z*105))))
}
