// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Borel is the Borel distribution with branching rate Mu:
//
//	P(X = k) = e^(-Mu·k) (Mu·k)^(k-1) / k!, k = 1, 2, ...
//
// It is the law of the total progeny of a Galton-Watson branching
// process with Poisson(Mu) offspring, and of the busy period (in
// customers served) of an M/D/1 queue with utilization Mu. Mu must
// lie in [0, 1); at Mu = 0 the distribution is degenerate at 1, and
// the supercritical boundary Mu = 1 is excluded because the total
// progeny is then infinite with positive probability.
//
// See Borel (1942), C. R. Acad. Sci. 214.
type Borel struct {
	Mu  float64
	Src rand.Source
}

// NewBorel returns a Borel distribution with branching rate mu, or an
// error if mu is outside [0, 1).
func NewBorel(mu float64) (Borel, error) {
	if !(mu >= 0 && mu < 1) {
		return Borel{}, errors.Wrapf(ErrParam, "Borel: Mu = %v, need 0 <= Mu < 1", mu)
	}
	return Borel{Mu: mu}, nil
}

// Support returns the positive integers.
func (d Borel) Support() Support {
	return Support{Min: 1, Max: math.Inf(1), Step: 1}
}

// Bounds returns [1, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d Borel) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// LogProb returns the log of the mass at k.
func (d Borel) LogProb(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	if k == 1 {
		// The general form has (k-1)·log(Mu·k) = 0·log(Mu),
		// which is 0 here even when Mu = 0.
		return -d.Mu
	}
	lg, _ := math.Lgamma(k + 1)
	return -d.Mu*k + (k-1)*math.Log(d.Mu*k) - lg
}

// Prob returns the probability mass at k.
func (d Borel) Prob(k float64) float64 {
	return math.Exp(d.LogProb(k))
}

// CDF returns P(X ≤ k) by summing the mass function.
func (d Borel) CDF(k float64) float64 {
	return sumPMF(k, 1, d.Prob)
}

// Survival returns 1 - CDF(k).
func (d Borel) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d Borel) Quantile(p float64) float64 {
	return discreteQuantile(p, 1, math.Inf(1), d.CDF)
}

// Rand draws a value by running the branching process: starting from
// one individual, each individual adds a Poisson(Mu) number of
// descendants to the queue, and the draw is the total count served.
// The expected work per draw is Mean() steps.
func (d Borel) Rand() float64 {
	if d.Mu == 0 {
		return 1
	}
	pois := distuv.Poisson{Lambda: d.Mu, Src: d.Src}
	total, queue := 0.0, 1.0
	for queue > 0 {
		queue--
		total++
		queue += pois.Rand()
	}
	return total
}

// Mean returns 1/(1-Mu).
func (d Borel) Mean() float64 {
	return 1 / (1 - d.Mu)
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d Borel) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns 1. The ratio P(X=k+1)/P(X=k) = Mu·e^(-Mu)·(1+1/k)^(k-1)
// is bounded by Mu·e^(1-Mu) < 1 on [0, 1), so the mass function is
// strictly decreasing.
func (d Borel) Mode() float64 {
	return 1
}

// Variance returns Mu/(1-Mu)³.
func (d Borel) Variance() float64 {
	q := 1 - d.Mu
	return d.Mu / (q * q * q)
}

// StdDev returns the standard deviation.
func (d Borel) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized cumulant
// (1+2Mu)/sqrt(Mu(1-Mu)), or NaN in the degenerate case Mu = 0.
func (d Borel) Skewness() float64 {
	if d.Mu == 0 {
		return nan
	}
	return (1 + 2*d.Mu) / math.Sqrt(d.Mu*(1-d.Mu))
}

// ExKurtosis returns the excess kurtosis
// (1+8Mu+6Mu²)/(Mu(1-Mu)), or NaN in the degenerate case Mu = 0.
func (d Borel) ExKurtosis() float64 {
	if d.Mu == 0 {
		return nan
	}
	return (1 + 8*d.Mu + 6*d.Mu*d.Mu) / (d.Mu * (1 - d.Mu))
}

// NumParameters returns 1.
func (d Borel) NumParameters() int {
	return 1
}
