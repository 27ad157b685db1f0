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

// ZIBinomial is the zero-inflated binomial distribution with N
// trials, success probability P, and zero inflation Pi: with
// probability Pi the value is 0, and otherwise it is Binomial(N, P).
// N must be a positive integer, P must lie in (0, 1), and Pi in
// [0, 1].
type ZIBinomial struct {
	N   int
	P   float64
	Pi  float64
	Src rand.Source
}

// NewZIBinomial returns a zero-inflated binomial distribution, or an
// error if n < 1, p is outside (0, 1), or pi is outside [0, 1].
func NewZIBinomial(n int, p, pi float64) (ZIBinomial, error) {
	var errs []error
	if n < 1 {
		errs = append(errs, errors.Wrapf(ErrParam, "ZIBinomial: N = %v, need N >= 1", n))
	}
	if err := checkUnitOpen("ZIBinomial", "P", p); err != nil {
		errs = append(errs, err)
	}
	if err := checkUnitClosed("ZIBinomial", "Pi", pi); err != nil {
		errs = append(errs, err)
	}
	if err := firstErr(errs...); err != nil {
		return ZIBinomial{}, err
	}
	return ZIBinomial{N: n, P: p, Pi: pi}, nil
}

func (d ZIBinomial) base() distuv.Binomial {
	return distuv.Binomial{N: float64(d.N), P: d.P, Src: d.Src}
}

// Support returns the integers 0 through N.
func (d ZIBinomial) Support() Support {
	return Support{Min: 0, Max: float64(d.N), Step: 1}
}

// Bounds returns [0, N].
func (d ZIBinomial) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

// Prob returns the probability mass at k.
func (d ZIBinomial) Prob(k float64) float64 {
	return ziProb(d.Pi, d.base(), k)
}

// LogProb returns the log of the mass at k.
func (d ZIBinomial) LogProb(k float64) float64 {
	return ziLogProb(d.Pi, d.base(), k)
}

// CDF returns P(X ≤ k).
func (d ZIBinomial) CDF(k float64) float64 {
	return ziCDF(d.Pi, d.base(), k)
}

// Survival returns P(X > k).
func (d ZIBinomial) Survival(k float64) float64 {
	return ziSurvival(d.Pi, d.base(), k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d ZIBinomial) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, float64(d.N), d.CDF)
}

// Rand draws 0 with probability Pi and a Binomial(N, P) variate
// otherwise.
func (d ZIBinomial) Rand() float64 {
	if uniform01(d.Src) < d.Pi {
		return 0
	}
	return d.base().Rand()
}

// Mean returns (1-Pi)·N·P.
func (d ZIBinomial) Mean() float64 {
	return (1 - d.Pi) * float64(d.N) * d.P
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d ZIBinomial) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function.
func (d ZIBinomial) Mode() float64 {
	return ziMode(d.Pi, d.base())
}

// Variance returns the mixture variance.
func (d ZIBinomial) Variance() float64 {
	return ziVariance(d.Pi, d.base())
}

// StdDev returns the standard deviation.
func (d ZIBinomial) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment of the mixture.
func (d ZIBinomial) Skewness() float64 {
	return ziSkewness(d.Pi, d.base())
}

// ExKurtosis returns the excess kurtosis of the mixture.
func (d ZIBinomial) ExKurtosis() float64 {
	return ziExKurtosis(d.Pi, d.base())
}

// MGF returns the moment generating function
// Pi + (1-Pi)·(1 - P + P·e^t)^N. At Pi = 1 the mixture is a point
// mass at zero, so the MGF is 1 for every t.
func (d ZIBinomial) MGF(t float64) float64 {
	if d.Pi == 1 {
		// Avoids 0·Inf when the binomial factor overflows.
		return 1
	}
	return d.Pi + (1-d.Pi)*math.Exp(float64(d.N)*math.Log(1-d.P+d.P*math.Exp(t)))
}

// NumParameters returns 3.
func (d ZIBinomial) NumParameters() int {
	return 3
}
