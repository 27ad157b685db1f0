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

// Yule is the Yule-Simon distribution with shape Rho:
//
//	P(X = k) = Rho·B(k, Rho+1), k = 1, 2, ...
//
// where B is the beta function. It is the stationary law of the
// preferential-attachment process Simon used to explain power-law
// word frequencies; the tail decays like k^-(Rho+1). Rho must be
// positive.
//
// See Simon (1955), Biometrika 42.
type Yule struct {
	Rho float64
	Src rand.Source
}

// NewYule returns a Yule-Simon distribution with shape rho, or an
// error if rho is not positive.
func NewYule(rho float64) (Yule, error) {
	if err := checkPositive("Yule", "Rho", rho); err != nil {
		return Yule{}, err
	}
	return Yule{Rho: rho}, nil
}

// Support returns the positive integers.
func (d Yule) Support() Support {
	return Support{Min: 1, Max: math.Inf(1), Step: 1}
}

// Bounds returns [1, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d Yule) Bounds() (float64, float64) {
	return 1, d.Quantile(0.999)
}

// LogProb returns the log of the mass at k.
func (d Yule) LogProb(k float64) float64 {
	if k < 1 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	return math.Log(d.Rho) + mathext.Lbeta(k, d.Rho+1)
}

// Prob returns the probability mass at k.
func (d Yule) Prob(k float64) float64 {
	return math.Exp(d.LogProb(k))
}

// CDF returns P(X ≤ k) = 1 - k·B(k, Rho+1).
func (d Yule) CDF(k float64) float64 {
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
	return -math.Expm1(math.Log(k) + mathext.Lbeta(k, d.Rho+1))
}

// Survival returns P(X > k) = k·B(k, Rho+1) for k in the support.
func (d Yule) Survival(k float64) float64 {
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
	return math.Exp(math.Log(k) + mathext.Lbeta(k, d.Rho+1))
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d Yule) Quantile(p float64) float64 {
	return discreteQuantile(p, 1, math.Inf(1), d.CDF)
}

// Rand draws a value as a geometric number of trials whose success
// probability is e^-W for W exponential with rate Rho. Integrating
// the geometric mass against the exponential mixing law recovers
// Rho·B(k, Rho+1).
func (d Yule) Rand() float64 {
	w := distuv.Exponential{Rate: d.Rho, Src: d.Src}.Rand()
	return 1 + geomFailures(d.Src, math.Exp(-w))
}

// Mean returns Rho/(Rho-1) for Rho > 1 and NaN otherwise: at and
// below Rho = 1 the mean series diverges.
func (d Yule) Mean() float64 {
	if d.Rho <= 1 {
		return nan
	}
	return d.Rho / (d.Rho - 1)
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d Yule) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns 1; the mass function is strictly decreasing.
func (d Yule) Mode() float64 {
	return 1
}

// Variance returns Rho²/((Rho-1)²(Rho-2)) for Rho > 2, +Inf when the
// mean exists but the second moment diverges (1 < Rho ≤ 2), and NaN
// when the mean does not exist (Rho ≤ 1).
func (d Yule) Variance() float64 {
	switch {
	case d.Rho <= 1:
		return nan
	case d.Rho <= 2:
		return math.Inf(1)
	}
	r1 := d.Rho - 1
	return d.Rho * d.Rho / (r1 * r1 * (d.Rho - 2))
}

// StdDev returns the standard deviation.
func (d Yule) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment
// (Rho+1)²·sqrt(Rho-2)/((Rho-3)·Rho) for Rho > 3, +Inf when the
// variance is finite but the third moment diverges (2 < Rho ≤ 3),
// and NaN when the variance does not exist.
func (d Yule) Skewness() float64 {
	switch {
	case d.Rho <= 2:
		return nan
	case d.Rho <= 3:
		return math.Inf(1)
	}
	r1 := d.Rho + 1
	return r1 * r1 * math.Sqrt(d.Rho-2) / ((d.Rho - 3) * d.Rho)
}

// ExKurtosis returns the excess kurtosis
//
//	Rho + 3 + (11Rho³ - 49Rho - 22)/((Rho-4)(Rho-3)Rho)
//
// for Rho > 4, +Inf when the variance is finite but the fourth
// moment diverges (2 < Rho ≤ 4), and NaN when the variance does not
// exist.
func (d Yule) ExKurtosis() float64 {
	switch {
	case d.Rho <= 2:
		return nan
	case d.Rho <= 4:
		return math.Inf(1)
	}
	r := d.Rho
	return r + 3 + (11*r*r*r-49*r-22)/((r-4)*(r-3)*r)
}

// NumParameters returns 1.
func (d Yule) NumParameters() int {
	return 1
}
