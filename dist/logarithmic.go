// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// Logarithmic is the logarithmic series distribution with shape P:
//
//	P(X = k) = -P^k / (k·log(1-P)), k = 1, 2, ...
//
// Fisher introduced it as a model of species abundance; it also
// arises as the mixing law that compounds a Poisson into a negative
// binomial. P must lie in (0, 1).
type Logarithmic struct {
	P   float64
	Src rand.Source
}

// NewLogarithmic returns a logarithmic series distribution with shape
// p, or an error if p is outside (0, 1).
func NewLogarithmic(p float64) (Logarithmic, error) {
	if err := checkUnitOpen("Logarithmic", "P", p); err != nil {
		return Logarithmic{}, err
	}
	return Logarithmic{P: p}, nil
}

// Support returns the positive integers.
func (d Logarithmic) Support() Support {
	return Support{Min: 1, Max: math.Inf(1), Step: 1}
}

// Bounds returns [1, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d Logarithmic) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// Prob returns the probability mass at k.
func (d Logarithmic) Prob(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return 0
	}
	return -math.Exp(k*math.Log(d.P)) / (k * math.Log1p(-d.P))
}

// LogProb returns the log of the mass at k.
func (d Logarithmic) LogProb(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	return k*math.Log(d.P) - math.Log(k) - math.Log(-math.Log1p(-d.P))
}

// CDF returns P(X ≤ k) by summing the mass function.
func (d Logarithmic) CDF(k float64) float64 {
	return sumPMF(k, 1, d.Prob)
}

// Survival returns 1 - CDF(k).
func (d Logarithmic) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d Logarithmic) Quantile(p float64) float64 {
	return discreteQuantile(p, 1, math.Inf(1), d.CDF)
}

// Rand draws a value using Kemp's second accelerated generator,
// algorithm LK of Kemp (1981), Appl. Statist. 30. Most draws cost
// two uniforms and no search.
func (d Logarithmic) Rand() float64 {
	r := math.Log1p(-d.P)
	for {
		v := uniform01(d.Src)
		if v >= d.P {
			return 1
		}
		u := uniform01(d.Src)
		q := -math.Expm1(r * u)
		if v <= q*q {
			k := math.Floor(1 + math.Log(v)/math.Log(q))
			if k < 1 || v == 0 {
				continue
			}
			return k
		}
		if v >= q {
			return 1
		}
		return 2
	}
}

// rawMoment returns E[X^r] by direct summation. The terms decay
// geometrically at rate P, so the series converges quickly for all
// valid parameters.
func (d Logarithmic) rawMoment(r float64) float64 {
	sum := 0.0
	for k := 1.0; ; k++ {
		t := math.Exp(r*math.Log(k)) * d.Prob(k)
		sum += t
		if t < sum*1e-16 {
			return sum
		}
	}
}

// Mean returns -P/((1-P)·log(1-P)).
func (d Logarithmic) Mean() float64 {
	return -d.P / ((1 - d.P) * math.Log1p(-d.P))
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d Logarithmic) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns 1; the mass function is strictly decreasing.
func (d Logarithmic) Mode() float64 {
	return 1
}

// Variance returns -P·(P + log(1-P))/((1-P)·log(1-P))².
func (d Logarithmic) Variance() float64 {
	l := math.Log1p(-d.P)
	q := 1 - d.P
	return -d.P * (d.P + l) / (q * q * l * l)
}

// StdDev returns the standard deviation.
func (d Logarithmic) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment, computed from the
// raw moment series.
func (d Logarithmic) Skewness() float64 {
	return skewFromRaw(d.Mean(), d.rawMoment(2), d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis, computed from the raw
// moment series.
func (d Logarithmic) ExKurtosis() float64 {
	return exKurtFromRaw(d.Mean(), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4))
}

// NumParameters returns 1.
func (d Logarithmic) NumParameters() int {
	return 1
}
