// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// FlorySchulz is the Flory-Schulz distribution with fraction A:
//
//	P(X = k) = A² k (1-A)^(k-1), k = 1, 2, ...
//
// It models the chain lengths produced by step-growth
// polymerization, where A is the fraction of unreacted monomer. A
// must lie in (0, 1).
type FlorySchulz struct {
	A   float64
	Src rand.Source
}

// NewFlorySchulz returns a Flory-Schulz distribution with fraction a,
// or an error if a is outside (0, 1).
func NewFlorySchulz(a float64) (FlorySchulz, error) {
	if err := checkUnitOpen("FlorySchulz", "A", a); err != nil {
		return FlorySchulz{}, err
	}
	return FlorySchulz{A: a}, nil
}

// Support returns the positive integers.
func (d FlorySchulz) Support() Support {
	return Support{Min: 1, Max: math.Inf(1), Step: 1}
}

// Bounds returns [1, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d FlorySchulz) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// Prob returns the probability mass at k.
func (d FlorySchulz) Prob(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return 0
	}
	return d.A * d.A * k * math.Exp((k-1)*math.Log1p(-d.A))
}

// LogProb returns the log of the mass at k.
func (d FlorySchulz) LogProb(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	return 2*math.Log(d.A) + math.Log(k) + (k-1)*math.Log1p(-d.A)
}

// CDF returns P(X ≤ k) = 1 - (1-A)^k (1+A·k).
func (d FlorySchulz) CDF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	if math.IsInf(k, 1) {
		return 1
	}
	return -math.Expm1(k*math.Log1p(-d.A) + math.Log1p(d.A*k))
}

// Survival returns P(X > k) = (1-A)^k (1+A·k) for k in the support.
func (d FlorySchulz) Survival(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 1 {
		return 1
	}
	if math.IsInf(k, 1) {
		return 0
	}
	return math.Exp(k*math.Log1p(-d.A) + math.Log1p(d.A*k))
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d FlorySchulz) Quantile(p float64) float64 {
	return discreteQuantile(p, 1, math.Inf(1), d.CDF)
}

// Rand draws a value as 1 plus the sum of two geometric variates:
// the chain length is one more than a negative binomial count with 2
// successes at rate A.
func (d FlorySchulz) Rand() float64 {
	return 1 + geomFailures(d.Src, d.A) + geomFailures(d.Src, d.A)
}

// Mean returns (2-A)/A.
func (d FlorySchulz) Mean() float64 {
	return (2 - d.A) / d.A
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d FlorySchulz) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function. The mass
// ratio P(X=k+1)/P(X=k) = (1-A)(1+1/k) stays at or above 1 exactly
// while k ≤ (1-A)/A.
func (d FlorySchulz) Mode() float64 {
	q := (1 - d.A) / d.A
	m := math.Floor(q)
	if q == m && m >= 1 {
		// P(X = m) = P(X = m+1); report the smaller mode.
		return m
	}
	return m + 1
}

// Variance returns 2(1-A)/A².
func (d FlorySchulz) Variance() float64 {
	return 2 * (1 - d.A) / (d.A * d.A)
}

// StdDev returns the standard deviation.
func (d FlorySchulz) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns (2-A)/sqrt(2(1-A)).
func (d FlorySchulz) Skewness() float64 {
	return (2 - d.A) / math.Sqrt(2*(1-d.A))
}

// ExKurtosis returns (A²-6A+6)/(2(1-A)).
func (d FlorySchulz) ExKurtosis() float64 {
	return (d.A*d.A - 6*d.A + 6) / (2 * (1 - d.A))
}

// MGF returns the moment generating function
// A²e^t/(1-(1-A)e^t)² for t < -log(1-A), and +Inf beyond it.
func (d FlorySchulz) MGF(t float64) float64 {
	if t >= -math.Log1p(-d.A) {
		return math.Inf(1)
	}
	q := -math.Expm1(t + math.Log1p(-d.A)) // 1 - (1-A)e^t
	return d.A * d.A * math.Exp(t) / (q * q)
}

// NumParameters returns 1.
func (d FlorySchulz) NumParameters() int {
	return 1
}
