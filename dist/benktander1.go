// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/aclements/go-moredist/mathx"
)

// BenktanderType1 is the Benktander type I distribution on [1, ∞), an
// actuarial model for claim sizes that interpolates between a Pareto
// tail and a lognormal-style tail (Benktander 1970). As B → 0 it
// approaches a Pareto distribution with tail index A+1; larger B bends
// the tail down so that, unlike Pareto, all moments exist.
type BenktanderType1 struct {
	// A is the Pareto-like tail parameter. A > 0.
	A float64

	// B is the curvature parameter. 0 < B ≤ A(A+1)/2; the upper
	// limit keeps the density nonnegative at the lower bound.
	B float64

	Src rand.Source
}

// NewBenktanderType1 returns a Benktander type I distribution with
// parameters a and b, or an error wrapping ErrParam if a parameter is
// out of range.
func NewBenktanderType1(a, b float64) (BenktanderType1, error) {
	err := firstErr(
		checkPositive("BenktanderType1", "A", a),
		checkPositive("BenktanderType1", "B", b),
	)
	if err != nil {
		return BenktanderType1{}, err
	}
	if max := a * (a + 1) / 2; b > max {
		return BenktanderType1{}, errors.Wrapf(ErrParam,
			"BenktanderType1: B = %v, need B <= A(A+1)/2 = %v", b, max)
	}
	return BenktanderType1{A: a, B: b}, nil
}

// Support returns [1, ∞).
func (d BenktanderType1) Support() Support {
	return Support{Min: 1, Max: inf}
}

// Bounds returns [1, Quantile(0.999)].
func (d BenktanderType1) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	((1 + 2B ln(x)/A)(1 + A + 2B ln(x)) - 2B/A) · x^-(2+A+B ln(x))
func (d BenktanderType1) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d BenktanderType1) LogProb(x float64) float64 {
	if x < 1 {
		return math.Inf(-1)
	}
	l := math.Log(x)
	beta := 2 * d.B / d.A
	g := (1+beta*l)*(1+d.A+2*d.B*l) - beta
	return math.Log(g) - (2+d.A+d.B*l)*l
}

// CDF returns 1 - (1 + 2B ln(x)/A) · x^-(A+1+B ln(x)).
func (d BenktanderType1) CDF(x float64) float64 {
	if x <= 1 {
		return 0
	}
	return -math.Expm1(d.logSurvival(x))
}

// Survival returns the upper tail (1 + 2B ln(x)/A) · x^-(A+1+B ln(x)).
func (d BenktanderType1) Survival(x float64) float64 {
	if x <= 1 {
		return 1
	}
	return math.Exp(d.logSurvival(x))
}

func (d BenktanderType1) logSurvival(x float64) float64 {
	l := math.Log(x)
	return math.Log1p(2*d.B/d.A*l) - (d.A+1+d.B*l)*l
}

// Quantile returns the x with CDF(x) = p by bisection with an
// expanding bracket, since the CDF has no closed-form inverse. It
// panics if p is outside [0, 1].
func (d BenktanderType1) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return 1
	}
	if p == 1 {
		return inf
	}
	return invCDF("BenktanderType1", d.CDF, p, 1, 2)
}

// Rand draws a variate by inverse transform.
func (d BenktanderType1) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// rawMoment returns E[X^s]. Substituting t = ln(x) turns the moment
// integral into a Gaussian one:
//
//	E[X^s] = 1 + s/A + s(s-1)/A · √(π/4B) · exp(c²/4B) erfc(c/√4B)
//
// with c = A+1-s. All moments exist because the lognormal-style
// factor dominates the tail.
func (d BenktanderType1) rawMoment(s float64) float64 {
	c := d.A + 1 - s
	i0 := math.Sqrt(math.Pi/(4*d.B)) * mathx.ErfcX(c/(2*math.Sqrt(d.B)))
	return 1 + s/d.A + s*(s-1)/d.A*i0
}

// Mean returns 1 + 1/A.
func (d BenktanderType1) Mean() float64 {
	return 1 + 1/d.A
}

// Median returns the 0.5 quantile.
func (d BenktanderType1) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns NaN. The density peaks at the lower bound for most
// parameters but moves into the interior as B approaches its upper
// limit, and the peak has no closed form.
func (d BenktanderType1) Mode() float64 {
	return nan
}

// Variance returns E[X²] - Mean².
func (d BenktanderType1) Variance() float64 {
	mu := d.Mean()
	return d.rawMoment(2) - mu*mu
}

// StdDev returns the square root of the variance.
func (d BenktanderType1) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness, from the closed third raw moment.
func (d BenktanderType1) Skewness() float64 {
	return skewFromRaw(d.Mean(), d.rawMoment(2), d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis, from the closed fourth raw
// moment.
func (d BenktanderType1) ExKurtosis() float64 {
	return exKurtFromRaw(d.Mean(), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4))
}

// NumParameters returns 2.
func (d BenktanderType1) NumParameters() int {
	return 2
}
