// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// Bradford is the Bradford distribution on [A, B], the law of
// diminishing returns Bradford (1934) observed in how references
// scatter across journals. The density falls off like 1/(1+Theta·z)
// across the interval, so mass concentrates toward A.
type Bradford struct {
	// Theta is the shape parameter. Theta > 0.
	Theta float64

	// A and B are the support endpoints. A < B.
	A, B float64

	Src rand.Source
}

// NewBradford returns a Bradford distribution with shape theta on
// [a, b], or an error wrapping ErrParam if a parameter is out of
// range.
func NewBradford(theta, a, b float64) (Bradford, error) {
	err := firstErr(
		checkPositive("Bradford", "Theta", theta),
		checkFinite("Bradford", "A", a),
		checkFinite("Bradford", "B", b),
		checkLess("Bradford", "A", a, "B", b),
	)
	if err != nil {
		return Bradford{}, err
	}
	return Bradford{Theta: theta, A: a, B: b}, nil
}

// k returns log(1+Theta), the normalizing constant of the unit-scale
// density.
func (d Bradford) k() float64 {
	return math.Log1p(d.Theta)
}

// z maps x to the unit interval.
func (d Bradford) z(x float64) float64 {
	return (x - d.A) / (d.B - d.A)
}

// Support returns [A, B].
func (d Bradford) Support() Support {
	return Support{Min: d.A, Max: d.B}
}

// Bounds returns [A, B].
func (d Bradford) Bounds() (float64, float64) {
	return d.A, d.B
}

// Prob returns the density at x,
//
//	Theta / (log(1+Theta) (1 + Theta·z) (B-A)),  z = (x-A)/(B-A)
func (d Bradford) Prob(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return d.Theta / (d.k() * (1 + d.Theta*d.z(x)) * (d.B - d.A))
}

// LogProb returns the log of the density at x.
func (d Bradford) LogProb(x float64) float64 {
	if x < d.A || x > d.B {
		return math.Inf(-1)
	}
	return math.Log(d.Theta) - math.Log(d.k()) - math.Log1p(d.Theta*d.z(x)) - math.Log(d.B-d.A)
}

// CDF returns log(1 + Theta·z)/log(1+Theta).
func (d Bradford) CDF(x float64) float64 {
	if x <= d.A {
		return 0
	}
	if x >= d.B {
		return 1
	}
	return math.Log1p(d.Theta*d.z(x)) / d.k()
}

// Survival returns 1 - CDF(x).
func (d Bradford) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Quantile returns the x with CDF(x) = p in closed form,
//
//	A + (B-A)((1+Theta)^p - 1)/Theta
//
// It panics if p is outside [0, 1].
func (d Bradford) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return d.A
	}
	if p == 1 {
		// The closed form lands an ulp short of B.
		return d.B
	}
	return d.A + (d.B-d.A)*math.Expm1(p*d.k())/d.Theta
}

// Rand draws a variate by inverse transform.
func (d Bradford) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// Mean returns A + (B-A)(Theta - log(1+Theta))/(Theta log(1+Theta)).
func (d Bradford) Mean() float64 {
	k := d.k()
	return d.A + (d.B-d.A)*(d.Theta-k)/(d.Theta*k)
}

// Median returns the 0.5 quantile, A + (B-A)(√(1+Theta) - 1)/Theta.
func (d Bradford) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns A: the density is strictly decreasing.
func (d Bradford) Mode() float64 {
	return d.A
}

// Variance returns the variance,
//
//	(B-A)² ((Theta+2)log(1+Theta) - 2Theta) / (2 Theta log²(1+Theta))
func (d Bradford) Variance() float64 {
	k := d.k()
	w := d.B - d.A
	return w * w * ((d.Theta+2)*k - 2*d.Theta) / (2 * d.Theta * k * k)
}

// StdDev returns the square root of the variance.
func (d Bradford) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness, which depends only on Theta.
func (d Bradford) Skewness() float64 {
	c, k := d.Theta, d.k()
	num := math.Sqrt2 * (12*c*c - 9*k*c*(c+2) + 2*k*k*(c*(c+3)+3))
	den := math.Sqrt(c*(c*(k-2)+2*k)) * (3*c*(k-2) + 6*k)
	return num / den
}

// ExKurtosis returns the excess kurtosis, which depends only on Theta.
func (d Bradford) ExKurtosis() float64 {
	c, k := d.Theta, d.k()
	num := c*c*c*(k-3)*(k*(3*k-16)+24) + 12*k*c*c*(k-4)*(k-3) +
		6*c*k*k*(3*k-14) + 12*k*k*k
	den := 3 * c * (c*(k-2) + 2*k) * (c*(k-2) + 2*k)
	return num / den
}

// Entropy returns the differential entropy in nats,
//
//	log(1+Theta)/2 - log(Theta/(log(1+Theta)(B-A)))
func (d Bradford) Entropy() float64 {
	k := d.k()
	return k/2 - math.Log(d.Theta/(k*(d.B-d.A)))
}

// NumParameters returns 3.
func (d Bradford) NumParameters() int {
	return 3
}
