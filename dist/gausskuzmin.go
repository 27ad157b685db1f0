// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// GaussKuzmin is the Gauss-Kuzmin distribution, the limit law of the
// continued fraction coefficients of a uniformly distributed real
// number:
//
//	P(X = k) = -log₂(1 - 1/(k+1)²), k = 1, 2, ...
//
// It has no parameters. The mass decays like 1/k², so the mean and
// all higher moments diverge; Mean, Variance, Skewness and
// ExKurtosis all return NaN.
type GaussKuzmin struct {
	Src rand.Source
}

// NewGaussKuzmin returns a Gauss-Kuzmin distribution. There are no
// parameters to validate, so it cannot fail.
func NewGaussKuzmin() GaussKuzmin {
	return GaussKuzmin{}
}

// Support returns the positive integers.
func (d GaussKuzmin) Support() Support {
	return Support{Min: 1, Max: math.Inf(1), Step: 1}
}

// Bounds returns [1, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d GaussKuzmin) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// Prob returns the probability mass at k.
func (d GaussKuzmin) Prob(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return 0
	}
	return -math.Log1p(-1/((k+1)*(k+1))) / ln2
}

// LogProb returns the log of the mass at k.
func (d GaussKuzmin) LogProb(k float64) float64 {
	p := d.Prob(k)
	if p == 0 {
		return math.Inf(-1)
	}
	return math.Log(p)
}

// CDF returns P(X ≤ k). The partial sums telescope, giving the
// closed form 1 - log₂((k+2)/(k+1)).
func (d GaussKuzmin) CDF(k float64) float64 {
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
	return 1 - math.Log1p(1/(k+1))/ln2
}

// Survival returns P(X > k) = log₂((k+2)/(k+1)) for k in the
// support.
func (d GaussKuzmin) Survival(k float64) float64 {
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
	return math.Log1p(1/(k+1)) / ln2
}

// Quantile returns the smallest k with CDF(k) ≥ p. Inverting the
// closed-form CDF gives k ≥ 1/(2^(1-p) - 1) - 1; the result is
// nudged by at most one step to absorb rounding in the float
// inversion. Quantile panics if p is outside [0, 1].
func (d GaussKuzmin) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 1 {
		return math.Inf(1)
	}
	k := math.Max(1, math.Ceil(1/math.Expm1((1-p)*ln2)-1))
	for d.CDF(k) < p {
		k++
	}
	for k > 1 && d.CDF(k-1) >= p {
		k--
	}
	return k
}

// Rand draws a value by inverting the CDF at a uniform variate.
func (d GaussKuzmin) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// Mean returns NaN: the series Σ k·P(X=k) diverges.
func (d GaussKuzmin) Mean() float64 {
	return nan
}

// Median returns 2.
func (d GaussKuzmin) Median() float64 {
	return 2
}

// Mode returns 1.
func (d GaussKuzmin) Mode() float64 {
	return 1
}

// Variance returns NaN, as the mean does not exist.
func (d GaussKuzmin) Variance() float64 {
	return nan
}

// StdDev returns NaN, as the mean does not exist.
func (d GaussKuzmin) StdDev() float64 {
	return nan
}

// Skewness returns NaN, as the mean does not exist.
func (d GaussKuzmin) Skewness() float64 {
	return nan
}

// ExKurtosis returns NaN, as the mean does not exist.
func (d GaussKuzmin) ExKurtosis() float64 {
	return nan
}

// NumParameters returns 0.
func (d GaussKuzmin) NumParameters() int {
	return 0
}
