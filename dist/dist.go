// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Dist is a univariate probability distribution.
//
// The moment methods report nonexistent moments as NaN and formally
// infinite ones as ±Inf; see the package comment and each type's
// documentation for the exact thresholds.
type Dist interface {
	// Prob returns the value of the probability density function
	// (or, on a discrete support, the probability mass function)
	// at x. It is 0 for x outside the support.
	Prob(x float64) float64

	// LogProb returns the natural logarithm of Prob(x). It is
	// -Inf outside the support. LogProb is computed directly in
	// log space, not as log(Prob(x)), so it stays finite and
	// accurate where Prob underflows.
	LogProb(x float64) float64

	// CDF returns the probability that a variate is ≤ x.
	CDF(x float64) float64

	// Survival returns the probability that a variate is > x.
	Survival(x float64) float64

	// Quantile returns the smallest x with CDF(x) ≥ p, the
	// generalized inverse of CDF. It panics if p is outside
	// [0, 1].
	Quantile(p float64) float64

	// Rand draws a variate using the distribution's Src field,
	// or the global source if Src is nil.
	Rand() float64

	// Support returns the support of the distribution. The
	// bounds may depend on the distribution's parameters.
	Support() Support

	// Bounds returns reasonable bounds enclosing effectively all
	// of the distribution's weight, for plotting and numeric
	// exploration. Unlike Support, the interval is always finite.
	Bounds() (float64, float64)

	Mean() float64
	Variance() float64
	StdDev() float64
	Median() float64
	Mode() float64
	Skewness() float64
	ExKurtosis() float64

	// NumParameters returns the number of parameters of the
	// distribution.
	NumParameters() int
}

// A Rander can draw a random variate. All distributions in this
// package and in distuv satisfy Rander.
type Rander interface {
	Rand() float64
}

// A Quantiler can evaluate its generalized inverse CDF.
type Quantiler interface {
	Quantile(p float64) float64
}

// A LogProber can evaluate the log of its density or mass function.
type LogProber interface {
	LogProb(x float64) float64
}

// An Entropier has a closed-form differential or Shannon entropy in
// nats. Types without a trustworthy closed form do not implement it.
type Entropier interface {
	Entropy() float64
}

// Support describes the set on which a distribution has positive
// density or mass: an interval for continuous distributions, or the
// lattice {Min, Min+Step, ..., Max} for discrete ones.
//
// OpenMin and OpenMax report whether the corresponding finite endpoint
// is excluded. Infinite endpoints are never attained, regardless of the
// flags.
type Support struct {
	Min, Max         float64
	OpenMin, OpenMax bool

	// Step is 0 for a continuous support and the lattice spacing
	// for a discrete one: 1 for count distributions, 2 for the
	// two-point {-1, +1} support of Rademacher.
	Step float64
}

// Discrete reports whether the support is a discrete lattice.
func (s Support) Discrete() bool {
	return s.Step > 0
}

// Contains reports whether x lies in the support, respecting openness
// at the endpoints and, for discrete supports, membership in the
// lattice.
func (s Support) Contains(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if x < s.Min || (s.OpenMin && x == s.Min) {
		return false
	}
	if x > s.Max || (s.OpenMax && x == s.Max) {
		return false
	}
	if s.Step > 0 {
		k := (x - s.Min) / s.Step
		return k == math.Floor(k)
	}
	return true
}

// Sample draws n independent variates from r. It is the n-variate
// convenience form of Rand: the draws are made by n sequential calls on
// the same source.
func Sample(r Rander, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Rand()
	}
	return xs
}

// Each returns f(xs[i]) for each i. It generalizes the PDFEach/CDFEach
// convenience of go-moremath's stats.Dist to any evaluation method:
//
//	probs := dist.Each(d.Prob, xs)
func Each(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// uniform01 draws a uniform variate in [0, 1) from src, or from the
// global source if src is nil. This is the same fallback convention as
// distuv's Rand methods.
func uniform01(src rand.Source) float64 {
	if src == nil {
		return rand.Float64()
	}
	return rand.New(src).Float64()
}
