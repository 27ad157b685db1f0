// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Alpha is the alpha distribution on (0, ∞). It is the distribution
// of Beta/W where W is a standard Normal with mean Alpha conditioned
// to be positive, and shows up in tool-wear and fatigue models. Its
// tail decays like 1/x², so it has no finite moments at all.
type Alpha struct {
	// Alpha is the shape parameter. Alpha > 0.
	Alpha float64

	// Beta is the scale parameter. Beta > 0.
	Beta float64

	Src rand.Source
}

// NewAlpha returns an alpha distribution with shape alpha and scale
// beta, or an error wrapping ErrParam if a parameter is out of range.
func NewAlpha(alpha, beta float64) (Alpha, error) {
	err := firstErr(
		checkPositive("Alpha", "Alpha", alpha),
		checkPositive("Alpha", "Beta", beta),
	)
	if err != nil {
		return Alpha{}, err
	}
	return Alpha{Alpha: alpha, Beta: beta}, nil
}

// Support returns (0, ∞).
func (d Alpha) Support() Support {
	return Support{Min: 0, Max: inf, OpenMin: true}
}

// Bounds returns the interval between the 0.001 and 0.999 quantiles.
func (d Alpha) Bounds() (float64, float64) {
	return d.Quantile(0.001), d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	Beta / (x² Φ(Alpha) √(2π)) · exp(-(Alpha-Beta/x)²/2)
//
// where Φ is the standard Normal CDF.
func (d Alpha) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d Alpha) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	z := d.Alpha - d.Beta/x
	return math.Log(d.Beta) - 2*math.Log(x) -
		math.Log(distuv.UnitNormal.CDF(d.Alpha)) -
		math.Log(sqrt2Pi) - z*z/2
}

// CDF returns Φ(Alpha-Beta/x) / Φ(Alpha) for x > 0.
func (d Alpha) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return distuv.UnitNormal.CDF(d.Alpha-d.Beta/x) / distuv.UnitNormal.CDF(d.Alpha)
}

// Survival returns 1 - CDF(x).
func (d Alpha) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Quantile returns the x with CDF(x) = p, inverting the CDF in closed
// form through the Normal quantile. It panics if p is outside [0, 1].
func (d Alpha) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 1 {
		// Φ⁻¹(p·Φ(Alpha)) can overshoot Alpha by roundoff and
		// flip the sign of the denominator.
		return inf
	}
	return d.Beta / (d.Alpha - distuv.UnitNormal.Quantile(p*distuv.UnitNormal.CDF(d.Alpha)))
}

// Rand draws a variate by inverse transform.
func (d Alpha) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// Mean returns NaN: the mean integral diverges for every valid
// parameter choice.
func (d Alpha) Mean() float64 {
	return nan
}

// Median returns the 0.5 quantile.
func (d Alpha) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns Beta(√(Alpha²+8) - Alpha)/4.
func (d Alpha) Mode() float64 {
	return d.Beta * (math.Sqrt(d.Alpha*d.Alpha+8) - d.Alpha) / 4
}

// Variance returns NaN, like Mean.
func (d Alpha) Variance() float64 {
	return nan
}

// StdDev returns NaN, like Mean.
func (d Alpha) StdDev() float64 {
	return nan
}

// Skewness returns NaN, like Mean.
func (d Alpha) Skewness() float64 {
	return nan
}

// ExKurtosis returns NaN, like Mean.
func (d Alpha) ExKurtosis() float64 {
	return nan
}

// NumParameters returns 2.
func (d Alpha) NumParameters() int {
	return 2
}
