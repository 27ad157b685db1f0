// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// BirnbaumSaunders is the Birnbaum-Saunders (fatigue life)
// distribution on (Mu, ∞), the classical model for failure times
// under cumulative crack growth (Birnbaum and Saunders 1969). A
// variate is Mu + Beta·ξ² where (ξ-1/ξ)/Alpha is standard Normal.
type BirnbaumSaunders struct {
	// Alpha is the shape parameter. Alpha > 0.
	Alpha float64

	// Beta is the scale parameter. Beta > 0.
	Beta float64

	// Mu is the location of the lower end of the support.
	Mu float64

	Src rand.Source
}

// NewBirnbaumSaunders returns a Birnbaum-Saunders distribution with
// shape alpha, scale beta and location mu, or an error wrapping
// ErrParam if a parameter is out of range.
func NewBirnbaumSaunders(alpha, beta, mu float64) (BirnbaumSaunders, error) {
	err := firstErr(
		checkPositive("BirnbaumSaunders", "Alpha", alpha),
		checkPositive("BirnbaumSaunders", "Beta", beta),
		checkFinite("BirnbaumSaunders", "Mu", mu),
	)
	if err != nil {
		return BirnbaumSaunders{}, err
	}
	return BirnbaumSaunders{Alpha: alpha, Beta: beta, Mu: mu}, nil
}

// z returns the standard Normal coordinate of x.
func (d BirnbaumSaunders) z(x float64) float64 {
	xi := math.Sqrt((x - d.Mu) / d.Beta)
	return (xi - 1/xi) / d.Alpha
}

// Support returns (Mu, ∞).
func (d BirnbaumSaunders) Support() Support {
	return Support{Min: d.Mu, Max: inf, OpenMin: true}
}

// Bounds returns the interval between the 0.001 and 0.999 quantiles.
func (d BirnbaumSaunders) Bounds() (float64, float64) {
	return d.Quantile(0.001), d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	φ(z) (ξ + 1/ξ) / (2 Alpha (x - Mu)),  ξ = √((x-Mu)/Beta)
func (d BirnbaumSaunders) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d BirnbaumSaunders) LogProb(x float64) float64 {
	if x <= d.Mu {
		return math.Inf(-1)
	}
	xi := math.Sqrt((x - d.Mu) / d.Beta)
	z := (xi - 1/xi) / d.Alpha
	return -z*z/2 - math.Log(sqrt2Pi) + math.Log(xi+1/xi) - math.Log(2*d.Alpha*(x-d.Mu))
}

// CDF returns Φ((ξ - 1/ξ)/Alpha) with ξ = √((x-Mu)/Beta).
func (d BirnbaumSaunders) CDF(x float64) float64 {
	if x <= d.Mu {
		return 0
	}
	return distuv.UnitNormal.CDF(d.z(x))
}

// Survival returns the upper tail Φ(-(ξ - 1/ξ)/Alpha).
func (d BirnbaumSaunders) Survival(x float64) float64 {
	if x <= d.Mu {
		return 1
	}
	return distuv.UnitNormal.Survival(d.z(x))
}

// Quantile returns the x with CDF(x) = p in closed form,
//
//	Mu + Beta (t + √(t²+1))²,  t = Alpha Φ⁻¹(p)/2
//
// It panics if p is outside [0, 1].
func (d BirnbaumSaunders) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		// t = -Inf would leave -Inf + Inf below.
		return d.Mu
	}
	t := d.Alpha * distuv.UnitNormal.Quantile(p) / 2
	s := t + math.Sqrt(t*t+1)
	return d.Mu + d.Beta*s*s
}

// Rand draws a variate by transforming a single Normal draw through
// the quantile map.
func (d BirnbaumSaunders) Rand() float64 {
	t := d.Alpha * distuv.Normal{Mu: 0, Sigma: 1, Src: d.Src}.Rand() / 2
	s := t + math.Sqrt(t*t+1)
	return d.Mu + d.Beta*s*s
}

// Mean returns Mu + Beta(1 + Alpha²/2).
func (d BirnbaumSaunders) Mean() float64 {
	return d.Mu + d.Beta*(1+d.Alpha*d.Alpha/2)
}

// Median returns Mu + Beta.
func (d BirnbaumSaunders) Median() float64 {
	return d.Mu + d.Beta
}

// Mode returns NaN: the density maximum solves a cubic with no usable
// closed form.
func (d BirnbaumSaunders) Mode() float64 {
	return nan
}

// Variance returns (Alpha Beta)²(1 + 5Alpha²/4).
func (d BirnbaumSaunders) Variance() float64 {
	ab := d.Alpha * d.Beta
	return ab * ab * (1 + 5*d.Alpha*d.Alpha/4)
}

// StdDev returns the square root of the variance.
func (d BirnbaumSaunders) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns 4Alpha(11Alpha² + 6)/(5Alpha² + 4)^(3/2).
func (d BirnbaumSaunders) Skewness() float64 {
	a2 := d.Alpha * d.Alpha
	den := 5*a2 + 4
	return 4 * d.Alpha * (11*a2 + 6) / (den * math.Sqrt(den))
}

// ExKurtosis returns 6Alpha²(93Alpha² + 40)/(5Alpha² + 4)².
func (d BirnbaumSaunders) ExKurtosis() float64 {
	a2 := d.Alpha * d.Alpha
	den := 5*a2 + 4
	return 6 * a2 * (93*a2 + 40) / (den * den)
}

// NumParameters returns 3.
func (d BirnbaumSaunders) NumParameters() int {
	return 3
}
