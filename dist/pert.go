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

// PERT is the PERT distribution on [A, C]: the Beta distribution
// reparametrized by minimum, most-likely and maximum values, as used
// in program-evaluation-and-review-technique planning. Its mean
// (A + 4B + C)/6 weighs the most-likely value four times as much as
// the extremes.
type PERT struct {
	// A, B and C are the minimum, most-likely and maximum values.
	// A < B < C.
	A, B, C float64

	Src rand.Source
}

// NewPERT returns a PERT distribution with minimum a, most-likely b
// and maximum c, or an error wrapping ErrParam if the parameters are
// not strictly ordered.
func NewPERT(a, b, c float64) (PERT, error) {
	err := firstErr(
		checkFinite("PERT", "A", a),
		checkFinite("PERT", "B", b),
		checkFinite("PERT", "C", c),
		checkLess("PERT", "A", a, "B", b),
		checkLess("PERT", "B", b, "C", c),
	)
	if err != nil {
		return PERT{}, err
	}
	return PERT{A: a, B: b, C: c}, nil
}

// shape returns the Beta shape parameters
//
//	α = 1 + 4(B-A)/(C-A),  β = 1 + 4(C-B)/(C-A)
func (d PERT) shape() (alpha, beta float64) {
	w := d.C - d.A
	return 1 + 4*(d.B-d.A)/w, 1 + 4*(d.C-d.B)/w
}

func (d PERT) baseBeta() distuv.Beta {
	alpha, beta := d.shape()
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: d.Src}
}

// Support returns [A, C].
func (d PERT) Support() Support {
	return Support{Min: d.A, Max: d.C}
}

// Bounds returns [A, C].
func (d PERT) Bounds() (float64, float64) {
	return d.A, d.C
}

// Prob returns the density at x, a scaled Beta density.
func (d PERT) Prob(x float64) float64 {
	if x < d.A || x > d.C {
		return 0
	}
	return d.baseBeta().Prob((x-d.A)/(d.C-d.A)) / (d.C - d.A)
}

// LogProb returns the log of the density at x.
func (d PERT) LogProb(x float64) float64 {
	if x < d.A || x > d.C {
		return math.Inf(-1)
	}
	return d.baseBeta().LogProb((x-d.A)/(d.C-d.A)) - math.Log(d.C-d.A)
}

// CDF returns the regularized incomplete Beta function at the
// rescaled coordinate.
func (d PERT) CDF(x float64) float64 {
	if x <= d.A {
		return 0
	}
	if x >= d.C {
		return 1
	}
	return d.baseBeta().CDF((x - d.A) / (d.C - d.A))
}

// Survival returns 1 - CDF(x).
func (d PERT) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Quantile returns the x with CDF(x) = p, through the inverse
// regularized incomplete Beta function. It panics if p is outside
// [0, 1].
func (d PERT) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return d.A
	}
	if p == 1 {
		return d.C
	}
	return d.A + (d.C-d.A)*d.baseBeta().Quantile(p)
}

// Rand draws a variate as a rescaled Beta draw.
func (d PERT) Rand() float64 {
	return d.A + (d.C-d.A)*d.baseBeta().Rand()
}

// Mean returns (A + 4B + C)/6.
func (d PERT) Mean() float64 {
	return (d.A + 4*d.B + d.C) / 6
}

// Median returns the 0.5 quantile.
func (d PERT) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns B, the most-likely value.
func (d PERT) Mode() float64 {
	return d.B
}

// Variance returns (Mean-A)(C-Mean)/7.
func (d PERT) Variance() float64 {
	mu := d.Mean()
	return (mu - d.A) * (d.C - mu) / 7
}

// StdDev returns the square root of the variance.
func (d PERT) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the Beta skewness
//
//	2(β-α)√(α+β+1) / ((α+β+2)√(αβ))
func (d PERT) Skewness() float64 {
	alpha, beta := d.shape()
	return 2 * (beta - alpha) * math.Sqrt(alpha+beta+1) /
		((alpha + beta + 2) * math.Sqrt(alpha*beta))
}

// ExKurtosis returns the Beta excess kurtosis.
func (d PERT) ExKurtosis() float64 {
	alpha, beta := d.shape()
	s := alpha + beta
	num := 6 * ((alpha-beta)*(alpha-beta)*(s+1) - alpha*beta*(s+2))
	return num / (alpha * beta * (s + 2) * (s + 3))
}

// Entropy returns the differential entropy in nats: the Beta entropy
// plus the log of the width.
func (d PERT) Entropy() float64 {
	alpha, beta := d.shape()
	return mathext.Lbeta(alpha, beta) -
		(alpha-1)*mathext.Digamma(alpha) - (beta-1)*mathext.Digamma(beta) +
		(alpha+beta-2)*mathext.Digamma(alpha+beta) +
		math.Log(d.C-d.A)
}

// NumParameters returns 3.
func (d PERT) NumParameters() int {
	return 3
}
