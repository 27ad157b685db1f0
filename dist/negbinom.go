// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// NegativeBinomial is the negative binomial distribution with
// success count R and success probability P:
//
//	P(X = k) = Γ(R+k)/(Γ(R)·k!) · P^R (1-P)^k, k = 0, 1, 2, ...
//
// the number of failures before the Rth success in Bernoulli(P)
// trials. R may be any positive real (the Pólya extension), which is
// how ZINegativeBinomial uses it. P must lie in (0, 1).
type NegativeBinomial struct {
	R   float64
	P   float64
	Src rand.Source
}

// NewNegativeBinomial returns a negative binomial distribution with
// success count r and success probability p, or an error if r ≤ 0 or
// p is outside (0, 1).
func NewNegativeBinomial(r, p float64) (NegativeBinomial, error) {
	err := firstErr(
		checkPositive("NegativeBinomial", "R", r),
		checkUnitOpen("NegativeBinomial", "P", p),
	)
	if err != nil {
		return NegativeBinomial{}, err
	}
	return NegativeBinomial{R: r, P: p}, nil
}

// Support returns the nonnegative integers.
func (d NegativeBinomial) Support() Support {
	return Support{Min: 0, Max: math.Inf(1), Step: 1}
}

// Bounds returns [0, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d NegativeBinomial) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// LogProb returns the log of the mass at k.
func (d NegativeBinomial) LogProb(k float64) float64 {
	if k < 0 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	lgrk, _ := math.Lgamma(d.R + k)
	lgr, _ := math.Lgamma(d.R)
	lgk, _ := math.Lgamma(k + 1)
	return lgrk - lgr - lgk + d.R*math.Log(d.P) + k*math.Log1p(-d.P)
}

// Prob returns the probability mass at k.
func (d NegativeBinomial) Prob(k float64) float64 {
	return math.Exp(d.LogProb(k))
}

// CDF returns P(X ≤ k), the regularized incomplete beta function
// I_P(R, k+1).
func (d NegativeBinomial) CDF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if math.IsInf(k, 1) {
		return 1
	}
	return mathext.RegIncBeta(d.R, k+1, d.P)
}

// Survival returns 1 - CDF(k).
func (d NegativeBinomial) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d NegativeBinomial) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, math.Inf(1), d.CDF)
}

// Rand draws a value as a Poisson whose rate is gamma distributed
// with shape R and scale (1-P)/P.
func (d NegativeBinomial) Rand() float64 {
	g := distuv.Gamma{Alpha: d.R, Beta: d.P / (1 - d.P), Src: d.Src}.Rand()
	if g == 0 {
		return 0
	}
	return distuv.Poisson{Lambda: g, Src: d.Src}.Rand()
}

// Mean returns R(1-P)/P.
func (d NegativeBinomial) Mean() float64 {
	return d.R * (1 - d.P) / d.P
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d NegativeBinomial) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns ⌊(R-1)(1-P)/P⌋ for R > 1 and 0 otherwise.
func (d NegativeBinomial) Mode() float64 {
	if d.R <= 1 {
		return 0
	}
	return math.Floor((d.R - 1) * (1 - d.P) / d.P)
}

// Variance returns R(1-P)/P².
func (d NegativeBinomial) Variance() float64 {
	return d.R * (1 - d.P) / (d.P * d.P)
}

// StdDev returns the standard deviation.
func (d NegativeBinomial) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns (2-P)/sqrt(R(1-P)).
func (d NegativeBinomial) Skewness() float64 {
	return (2 - d.P) / math.Sqrt(d.R*(1-d.P))
}

// ExKurtosis returns 6/R + P²/(R(1-P)).
func (d NegativeBinomial) ExKurtosis() float64 {
	return 6/d.R + d.P*d.P/(d.R*(1-d.P))
}

// MGF returns the moment generating function (P/(1-(1-P)e^t))^R for
// t < -log(1-P), and +Inf beyond it.
func (d NegativeBinomial) MGF(t float64) float64 {
	if t >= -math.Log1p(-d.P) {
		return math.Inf(1)
	}
	q := -math.Expm1(t + math.Log1p(-d.P)) // 1 - (1-P)e^t
	return math.Exp(d.R * math.Log(d.P/q))
}

// NumParameters returns 2.
func (d NegativeBinomial) NumParameters() int {
	return 2
}
