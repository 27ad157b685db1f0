// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// BenktanderType2 is the Benktander type II distribution on [1, ∞),
// the companion claim-size model to BenktanderType1 with a Weibull-
// style tail (Benktander 1970). At B = 1 it degenerates to a unit-
// shifted exponential with rate A; smaller B gives a heavier (but
// still light enough for all moments) tail.
type BenktanderType2 struct {
	// A is the rate-like parameter. A > 0.
	A float64

	// B is the tail shape parameter. 0 < B ≤ 1.
	B float64

	Src rand.Source
}

// NewBenktanderType2 returns a Benktander type II distribution with
// parameters a and b, or an error wrapping ErrParam if a parameter is
// out of range.
func NewBenktanderType2(a, b float64) (BenktanderType2, error) {
	if err := checkPositive("BenktanderType2", "A", a); err != nil {
		return BenktanderType2{}, err
	}
	if !(b > 0 && b <= 1) {
		return BenktanderType2{}, errors.Wrapf(ErrParam,
			"BenktanderType2: B = %v, need 0 < B <= 1", b)
	}
	return BenktanderType2{A: a, B: b}, nil
}

// Support returns [1, ∞).
func (d BenktanderType2) Support() Support {
	return Support{Min: 1, Max: inf}
}

// Bounds returns [1, Quantile(0.999)].
func (d BenktanderType2) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	e^((A/B)(1-x^B)) · x^(B-2) · (A x^B - B + 1)
func (d BenktanderType2) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d BenktanderType2) LogProb(x float64) float64 {
	if x < 1 {
		return math.Inf(-1)
	}
	xb := math.Pow(x, d.B)
	return d.A / d.B * (1 - xb) + (d.B-2)*math.Log(x) + math.Log(d.A*xb+1-d.B)
}

// CDF returns 1 - x^(B-1) e^((A/B)(1-x^B)).
func (d BenktanderType2) CDF(x float64) float64 {
	if x <= 1 {
		return 0
	}
	return -math.Expm1(d.logSurvival(x))
}

// Survival returns the upper tail x^(B-1) e^((A/B)(1-x^B)).
func (d BenktanderType2) Survival(x float64) float64 {
	if x <= 1 {
		return 1
	}
	return math.Exp(d.logSurvival(x))
}

func (d BenktanderType2) logSurvival(x float64) float64 {
	return (d.B-1)*math.Log(x) + d.A/d.B*(1-math.Pow(x, d.B))
}

// Quantile returns the x with CDF(x) = p. At B = 1 the inverse is the
// closed form 1 - ln(1-p)/A; otherwise the equation is transcendental
// and Quantile bisects with an expanding bracket. It panics if p is
// outside [0, 1].
func (d BenktanderType2) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return 1
	}
	if p == 1 {
		return inf
	}
	if d.B == 1 {
		return 1 - math.Log1p(-p)/d.A
	}
	return invCDF("BenktanderType2", d.CDF, p, 1, 2)
}

// Rand draws a variate by inverse transform.
func (d BenktanderType2) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// rawMoment returns E[X^k]. Substituting y = x^B reduces the moment
// integral to an upper incomplete Gamma function:
//
//	E[X^k] = 1 + (k/B) e^(A/B) t^-s Γ(s, t),  s = 1+(k-1)/B, t = A/B
//
// assembled in log space so large 1/B does not overflow.
func (d BenktanderType2) rawMoment(k float64) float64 {
	s := 1 + (k-1)/d.B
	t := d.A / d.B
	lg, _ := math.Lgamma(s)
	q := mathext.GammaIncRegComp(s, t)
	return 1 + k/d.B*math.Exp(t-s*math.Log(t)+lg+math.Log(q))
}

// Mean returns 1 + 1/A, for every B.
func (d BenktanderType2) Mean() float64 {
	return 1 + 1/d.A
}

// Median returns the 0.5 quantile.
func (d BenktanderType2) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns 1: the density is strictly decreasing on the support.
func (d BenktanderType2) Mode() float64 {
	return 1
}

// Variance returns E[X²] - Mean².
func (d BenktanderType2) Variance() float64 {
	mu := d.Mean()
	return d.rawMoment(2) - mu*mu
}

// StdDev returns the square root of the variance.
func (d BenktanderType2) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness, from the closed third raw moment.
func (d BenktanderType2) Skewness() float64 {
	return skewFromRaw(d.Mean(), d.rawMoment(2), d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis, from the closed fourth raw
// moment.
func (d BenktanderType2) ExKurtosis() float64 {
	return exKurtFromRaw(d.Mean(), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4))
}

// NumParameters returns 2.
func (d BenktanderType2) NumParameters() int {
	return 2
}
