// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Delaporte is the Delaporte distribution with gamma shape Alpha,
// gamma scale Beta, and Poisson rate Lambda: the sum of an
// independent Poisson(Lambda) and a negative binomial with shape
// Alpha and mean Alpha·Beta. Equivalently it is a Poisson whose rate
// is Lambda plus a Gamma(Alpha, Beta) perturbation, which makes it a
// standard claim-count model in actuarial work: Lambda carries the
// stable risk and the gamma component the heterogeneity. All three
// parameters must be positive.
//
// The mass function is a k-term convolution sum, so Prob costs O(k)
// and the summation CDF O(k²).
type Delaporte struct {
	Alpha  float64
	Beta   float64
	Lambda float64
	Src    rand.Source
}

// NewDelaporte returns a Delaporte distribution, or an error if any
// parameter is not positive.
func NewDelaporte(alpha, beta, lambda float64) (Delaporte, error) {
	err := firstErr(
		checkPositive("Delaporte", "Alpha", alpha),
		checkPositive("Delaporte", "Beta", beta),
		checkPositive("Delaporte", "Lambda", lambda),
	)
	if err != nil {
		return Delaporte{}, err
	}
	return Delaporte{Alpha: alpha, Beta: beta, Lambda: lambda}, nil
}

// Support returns the nonnegative integers.
func (d Delaporte) Support() Support {
	return Support{Min: 0, Max: math.Inf(1), Step: 1}
}

// Bounds returns [0, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d Delaporte) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// LogProb returns the log of the mass at k, summing the negative
// binomial and Poisson components of the convolution in log space.
func (d Delaporte) LogProb(k float64) float64 {
	if k < 0 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	lga, _ := math.Lgamma(d.Alpha)
	lbeta := math.Log(d.Beta)
	l1beta := math.Log1p(d.Beta)
	llam := math.Log(d.Lambda)
	terms := make([]float64, 0, int(k)+1)
	for i := 0.0; i <= k; i++ {
		lgai, _ := math.Lgamma(d.Alpha + i)
		lgi, _ := math.Lgamma(i + 1)
		lgki, _ := math.Lgamma(k - i + 1)
		terms = append(terms,
			lgai-lga-lgi+i*lbeta-(d.Alpha+i)*l1beta+
				(k-i)*llam-d.Lambda-lgki)
	}
	return floats.LogSumExp(terms)
}

// Prob returns the probability mass at k.
func (d Delaporte) Prob(k float64) float64 {
	return math.Exp(d.LogProb(k))
}

// CDF returns P(X ≤ k) by summing the mass function.
func (d Delaporte) CDF(k float64) float64 {
	return sumPMF(k, 0, d.Prob)
}

// Survival returns 1 - CDF(k).
func (d Delaporte) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d Delaporte) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, math.Inf(1), d.CDF)
}

// Rand draws a value by compounding: a Gamma(Alpha, Beta) draw G
// shifts the Poisson rate, and Poisson(G + Lambda) combines both
// components in a single draw.
func (d Delaporte) Rand() float64 {
	g := distuv.Gamma{Alpha: d.Alpha, Beta: 1 / d.Beta, Src: d.Src}.Rand()
	return distuv.Poisson{Lambda: g + d.Lambda, Src: d.Src}.Rand()
}

// Mean returns Lambda + Alpha·Beta.
func (d Delaporte) Mean() float64 {
	return d.Lambda + d.Alpha*d.Beta
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d Delaporte) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function, located
// by scanning the integers out to ten standard deviations past the
// mean.
func (d Delaporte) Mode() float64 {
	hi := math.Ceil(d.Mean() + 10*d.StdDev())
	return modeScan(d.Prob, 0, hi)
}

// Variance returns Lambda + Alpha·Beta·(1+Beta).
func (d Delaporte) Variance() float64 {
	return d.Lambda + d.Alpha*d.Beta*(1+d.Beta)
}

// StdDev returns the standard deviation.
func (d Delaporte) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized cumulant. The cumulants of
// the Poisson and negative binomial components add.
func (d Delaporte) Skewness() float64 {
	v := d.Variance()
	k3 := d.Lambda + d.Alpha*d.Beta*(1+d.Beta)*(1+2*d.Beta)
	return k3 / (v * math.Sqrt(v))
}

// ExKurtosis returns the excess kurtosis.
func (d Delaporte) ExKurtosis() float64 {
	v := d.Variance()
	k4 := d.Lambda + d.Alpha*d.Beta*(1+d.Beta)*(1+6*d.Beta+6*d.Beta*d.Beta)
	return k4 / (v * v)
}

// NumParameters returns 3.
func (d Delaporte) NumParameters() int {
	return 3
}
