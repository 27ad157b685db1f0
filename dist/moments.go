// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// quadPoints is the Gauss-Legendre point count for numeric moments.
// The integrands here are smooth densities times low-degree
// polynomials, for which fixed-order Legendre quadrature converges to
// near machine precision well below this order.
const quadPoints = 300

// quadMoment computes E[(X-about)^n] of a continuous distribution by
// Gauss-Legendre quadrature of the density over [lo, hi]. The interval
// must carry effectively all of the distribution's mass; callers
// typically pass support bounds, or extreme quantiles when the support
// is unbounded.
func quadMoment(pdf func(float64) float64, n int, about, lo, hi float64) float64 {
	return quad.Fixed(func(x float64) float64 {
		d := x - about
		return math.Pow(d, float64(n)) * pdf(x)
	}, lo, hi, quadPoints, nil, 0)
}

// skewFromRaw converts the first three raw moments to skewness.
func skewFromRaw(m1, m2, m3 float64) float64 {
	v := m2 - m1*m1
	return (m3 - 3*m1*m2 + 2*m1*m1*m1) / (v * math.Sqrt(v))
}

// exKurtFromRaw converts the first four raw moments to excess
// kurtosis.
func exKurtFromRaw(m1, m2, m3, m4 float64) float64 {
	v := m2 - m1*m1
	mu4 := m4 - 4*m1*m3 + 6*m1*m1*m2 - 3*m1*m1*m1*m1
	return mu4/(v*v) - 3
}
