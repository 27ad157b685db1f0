// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ZIPoisson is the zero-inflated Poisson distribution with rate
// Lambda and zero inflation Pi: with probability Pi the value is 0,
// and otherwise it is Poisson(Lambda). It models count data with
// more zeros than a Poisson can produce, such as insurance claims
// where many policies never claim at all. Lambda must be positive
// and Pi must lie in [0, 1]; Pi = 0 recovers the plain Poisson.
type ZIPoisson struct {
	Lambda float64
	Pi     float64
	Src    rand.Source
}

// NewZIPoisson returns a zero-inflated Poisson distribution with
// rate lambda and zero inflation pi, or an error if lambda ≤ 0 or pi
// is outside [0, 1].
func NewZIPoisson(lambda, pi float64) (ZIPoisson, error) {
	err := firstErr(
		checkPositive("ZIPoisson", "Lambda", lambda),
		checkUnitClosed("ZIPoisson", "Pi", pi),
	)
	if err != nil {
		return ZIPoisson{}, err
	}
	return ZIPoisson{Lambda: lambda, Pi: pi}, nil
}

func (d ZIPoisson) base() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda, Src: d.Src}
}

// Support returns the nonnegative integers.
func (d ZIPoisson) Support() Support {
	return Support{Min: 0, Max: math.Inf(1), Step: 1}
}

// Bounds returns [0, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d ZIPoisson) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// Prob returns the probability mass at k.
func (d ZIPoisson) Prob(k float64) float64 {
	return ziProb(d.Pi, d.base(), k)
}

// LogProb returns the log of the mass at k.
func (d ZIPoisson) LogProb(k float64) float64 {
	return ziLogProb(d.Pi, d.base(), k)
}

// CDF returns P(X ≤ k).
func (d ZIPoisson) CDF(k float64) float64 {
	return ziCDF(d.Pi, d.base(), k)
}

// Survival returns P(X > k).
func (d ZIPoisson) Survival(k float64) float64 {
	return ziSurvival(d.Pi, d.base(), k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d ZIPoisson) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, math.Inf(1), d.CDF)
}

// Rand draws 0 with probability Pi and a Poisson(Lambda) variate
// otherwise.
func (d ZIPoisson) Rand() float64 {
	if uniform01(d.Src) < d.Pi {
		return 0
	}
	return d.base().Rand()
}

// Mean returns (1-Pi)·Lambda.
func (d ZIPoisson) Mean() float64 {
	return (1 - d.Pi) * d.Lambda
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d ZIPoisson) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function.
func (d ZIPoisson) Mode() float64 {
	return ziMode(d.Pi, d.base())
}

// Variance returns (1-Pi)·Lambda·(1 + Pi·Lambda).
func (d ZIPoisson) Variance() float64 {
	return ziVariance(d.Pi, d.base())
}

// StdDev returns the standard deviation.
func (d ZIPoisson) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment of the mixture.
func (d ZIPoisson) Skewness() float64 {
	return ziSkewness(d.Pi, d.base())
}

// ExKurtosis returns the excess kurtosis of the mixture.
func (d ZIPoisson) ExKurtosis() float64 {
	return ziExKurtosis(d.Pi, d.base())
}

// MGF returns the moment generating function
// Pi + (1-Pi)·exp(Lambda·(e^t - 1)). At Pi = 1 the mixture is a point
// mass at zero, so the MGF is 1 for every t.
func (d ZIPoisson) MGF(t float64) float64 {
	if d.Pi == 1 {
		// Avoids 0·Inf when the Poisson factor overflows.
		return 1
	}
	return d.Pi + (1-d.Pi)*math.Exp(d.Lambda*math.Expm1(t))
}

// NumParameters returns 2.
func (d ZIPoisson) NumParameters() int {
	return 2
}
