// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bhattacharjee is the Bhattacharjee distribution on ℝ: the sum of a
// Uniform(A, B) and an independent Normal(0, Sigma) variate
// (Bhattacharjee, Pandit and Mohan 1963). It models a uniformly
// distributed quantity observed with Gaussian error, and flattens from
// a Normal bump to a smoothed plateau as B-A grows against Sigma.
type Bhattacharjee struct {
	// A and B are the ends of the uniform component. A < B.
	A, B float64

	// Sigma is the standard deviation of the normal component.
	// Sigma > 0.
	Sigma float64

	Src rand.Source
}

// NewBhattacharjee returns a Bhattacharjee distribution on [a, b] with
// noise sigma, or an error wrapping ErrParam if a parameter is out of
// range.
func NewBhattacharjee(a, b, sigma float64) (Bhattacharjee, error) {
	err := firstErr(
		checkFinite("Bhattacharjee", "A", a),
		checkFinite("Bhattacharjee", "B", b),
		checkLess("Bhattacharjee", "A", a, "B", b),
		checkPositive("Bhattacharjee", "Sigma", sigma),
	)
	if err != nil {
		return Bhattacharjee{}, err
	}
	return Bhattacharjee{A: a, B: b, Sigma: sigma}, nil
}

// Support returns (-∞, ∞).
func (d Bhattacharjee) Support() Support {
	return Support{Min: math.Inf(-1), Max: inf}
}

// Bounds returns [A - 4Sigma, B + 4Sigma].
func (d Bhattacharjee) Bounds() (float64, float64) {
	return d.A - 4*d.Sigma, d.B + 4*d.Sigma
}

// Prob returns the density at x,
//
//	(Φ((x-A)/Sigma) - Φ((x-B)/Sigma)) / (B-A)
//
// evaluated through whichever Normal tail keeps the difference
// accurate.
func (d Bhattacharjee) Prob(x float64) float64 {
	ta := (x - d.A) / d.Sigma
	tb := (x - d.B) / d.Sigma
	var diff float64
	if x <= (d.A+d.B)/2 {
		diff = distuv.UnitNormal.CDF(ta) - distuv.UnitNormal.CDF(tb)
	} else {
		diff = distuv.UnitNormal.Survival(tb) - distuv.UnitNormal.Survival(ta)
	}
	return math.Max(0, diff/(d.B-d.A))
}

// LogProb returns the log of the density at x.
func (d Bhattacharjee) LogProb(x float64) float64 {
	return math.Log(d.Prob(x))
}

// normG is the antiderivative of Φ: G(t) = tΦ(t) + φ(t).
func normG(t float64) float64 {
	return t*distuv.UnitNormal.CDF(t) + distuv.UnitNormal.Prob(t)
}

// CDF returns (Sigma/(B-A)) · (G((x-A)/Sigma) - G((x-B)/Sigma)) with
// G(t) = tΦ(t) + φ(t).
func (d Bhattacharjee) CDF(x float64) float64 {
	// The G difference is indeterminate at both infinities:
	// -Inf·0 at the bottom, Inf - Inf at the top.
	if math.IsInf(x, -1) {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	ta := (x - d.A) / d.Sigma
	tb := (x - d.B) / d.Sigma
	c := d.Sigma / (d.B - d.A) * (normG(ta) - normG(tb))
	return math.Max(0, math.Min(1, c))
}

// Survival returns 1 - CDF(x).
func (d Bhattacharjee) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Quantile returns the x with CDF(x) = p by bisection with an
// expanding bracket. It panics if p is outside [0, 1].
func (d Bhattacharjee) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return math.Inf(-1)
	}
	if p == 1 {
		return inf
	}
	return invCDF("Bhattacharjee", d.CDF, p, d.A-d.Sigma, d.B+d.Sigma)
}

// Rand draws a variate as a Uniform draw plus a Normal draw.
func (d Bhattacharjee) Rand() float64 {
	u := distuv.Uniform{Min: d.A, Max: d.B, Src: d.Src}.Rand()
	return u + distuv.Normal{Mu: 0, Sigma: d.Sigma, Src: d.Src}.Rand()
}

// Mean returns (A+B)/2.
func (d Bhattacharjee) Mean() float64 {
	return (d.A + d.B) / 2
}

// Median returns (A+B)/2: the distribution is symmetric.
func (d Bhattacharjee) Median() float64 {
	return (d.A + d.B) / 2
}

// Mode returns (A+B)/2, the center of the plateau.
func (d Bhattacharjee) Mode() float64 {
	return (d.A + d.B) / 2
}

// Variance returns Sigma² + (B-A)²/12, the sum of the component
// variances.
func (d Bhattacharjee) Variance() float64 {
	w := d.B - d.A
	return d.Sigma*d.Sigma + w*w/12
}

// StdDev returns the square root of the variance.
func (d Bhattacharjee) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns 0.
func (d Bhattacharjee) Skewness() float64 {
	return 0
}

// ExKurtosis returns -(B-A)⁴/(120 Variance²), the uniform component's
// fourth cumulant over the squared variance.
func (d Bhattacharjee) ExKurtosis() float64 {
	w := d.B - d.A
	v := d.Variance()
	return -(w * w * w * w) / (120 * v * v)
}

// MGF returns the moment generating function at t,
//
//	e^(Sigma²t²/2) · (e^(Bt) - e^(At)) / (t(B-A))
func (d Bhattacharjee) MGF(t float64) float64 {
	if t == 0 {
		return 1
	}
	return math.Exp(d.Sigma*d.Sigma*t*t/2) * (math.Exp(d.B*t) - math.Exp(d.A*t)) / (t * (d.B - d.A))
}

// NumParameters returns 3.
func (d Bhattacharjee) NumParameters() int {
	return 3
}
