// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// ZINegativeBinomial is the zero-inflated negative binomial
// distribution with success count R, success probability P, and zero
// inflation Pi: with probability Pi the value is 0, and otherwise it
// is NegativeBinomial(R, P). It handles count data that is both
// overdispersed and zero-heavy. R must be positive, P must lie in
// (0, 1), and Pi in [0, 1].
type ZINegativeBinomial struct {
	R   float64
	P   float64
	Pi  float64
	Src rand.Source
}

// NewZINegativeBinomial returns a zero-inflated negative binomial
// distribution, or an error if r ≤ 0, p is outside (0, 1), or pi is
// outside [0, 1].
func NewZINegativeBinomial(r, p, pi float64) (ZINegativeBinomial, error) {
	err := firstErr(
		checkPositive("ZINegativeBinomial", "R", r),
		checkUnitOpen("ZINegativeBinomial", "P", p),
		checkUnitClosed("ZINegativeBinomial", "Pi", pi),
	)
	if err != nil {
		return ZINegativeBinomial{}, err
	}
	return ZINegativeBinomial{R: r, P: p, Pi: pi}, nil
}

func (d ZINegativeBinomial) base() NegativeBinomial {
	return NegativeBinomial{R: d.R, P: d.P, Src: d.Src}
}

// Support returns the nonnegative integers.
func (d ZINegativeBinomial) Support() Support {
	return Support{Min: 0, Max: math.Inf(1), Step: 1}
}

// Bounds returns [0, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d ZINegativeBinomial) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// Prob returns the probability mass at k.
func (d ZINegativeBinomial) Prob(k float64) float64 {
	return ziProb(d.Pi, d.base(), k)
}

// LogProb returns the log of the mass at k.
func (d ZINegativeBinomial) LogProb(k float64) float64 {
	return ziLogProb(d.Pi, d.base(), k)
}

// CDF returns P(X ≤ k).
func (d ZINegativeBinomial) CDF(k float64) float64 {
	return ziCDF(d.Pi, d.base(), k)
}

// Survival returns P(X > k).
func (d ZINegativeBinomial) Survival(k float64) float64 {
	return ziSurvival(d.Pi, d.base(), k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d ZINegativeBinomial) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, math.Inf(1), d.CDF)
}

// Rand draws 0 with probability Pi and a NegativeBinomial(R, P)
// variate otherwise.
func (d ZINegativeBinomial) Rand() float64 {
	if uniform01(d.Src) < d.Pi {
		return 0
	}
	return d.base().Rand()
}

// Mean returns (1-Pi)·R·(1-P)/P.
func (d ZINegativeBinomial) Mean() float64 {
	return (1 - d.Pi) * d.base().Mean()
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d ZINegativeBinomial) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function.
func (d ZINegativeBinomial) Mode() float64 {
	return ziMode(d.Pi, d.base())
}

// Variance returns the mixture variance.
func (d ZINegativeBinomial) Variance() float64 {
	return ziVariance(d.Pi, d.base())
}

// StdDev returns the standard deviation.
func (d ZINegativeBinomial) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment of the mixture.
func (d ZINegativeBinomial) Skewness() float64 {
	return ziSkewness(d.Pi, d.base())
}

// ExKurtosis returns the excess kurtosis of the mixture.
func (d ZINegativeBinomial) ExKurtosis() float64 {
	return ziExKurtosis(d.Pi, d.base())
}

// MGF returns the moment generating function
// Pi + (1-Pi)·(P/(1-(1-P)e^t))^R for t < -log(1-P), and +Inf beyond
// it. At Pi = 1 the mixture is a point mass at zero, so the MGF is 1
// for every t.
func (d ZINegativeBinomial) MGF(t float64) float64 {
	if d.Pi == 1 {
		return 1
	}
	m := d.base().MGF(t)
	if math.IsInf(m, 1) {
		return m
	}
	return d.Pi + (1-d.Pi)*m
}

// NumParameters returns 3.
func (d ZINegativeBinomial) NumParameters() int {
	return 3
}
