// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Zipf is the finite Zipf distribution on {1, ..., N} with exponent S:
//
//	P(X = k) = k^-S / H(N, S), k = 1, ..., N
//
// where H(N, S) is the generalized harmonic number Σ k^-S. It models
// rank-frequency laws: word frequencies, city sizes, access
// popularity. N must be a positive integer and S must be positive.
//
// The harmonic normalizer is an O(N) sum and is recomputed per call,
// so per-operation cost grows linearly with N.
type Zipf struct {
	N   int
	S   float64
	Src rand.Source
}

// NewZipf returns a Zipf distribution on {1, ..., n} with exponent s,
// or an error if n < 1 or s ≤ 0.
func NewZipf(n int, s float64) (Zipf, error) {
	var errs []error
	if n < 1 {
		errs = append(errs, errors.Wrapf(ErrParam, "Zipf: N = %v, need N >= 1", n))
	}
	if err := checkPositive("Zipf", "S", s); err != nil {
		errs = append(errs, err)
	}
	if err := firstErr(errs...); err != nil {
		return Zipf{}, err
	}
	return Zipf{N: n, S: s}, nil
}

// harmonic returns the generalized harmonic number H(N, s), summing
// from the smallest terms up.
func (d Zipf) harmonic(s float64) float64 {
	sum := 0.0
	for k := d.N; k >= 1; k-- {
		sum += math.Pow(float64(k), -s)
	}
	return sum
}

// Support returns the integers 1 through N.
func (d Zipf) Support() Support {
	return Support{Min: 1, Max: float64(d.N), Step: 1}
}

// Bounds returns [1, N].
func (d Zipf) Bounds() (float64, float64) {
	return 1, float64(d.N)
}

// Prob returns the probability mass at k.
func (d Zipf) Prob(k float64) float64 {
	if k < 1 || k > float64(d.N) || k != math.Floor(k) {
		if math.IsNaN(k) {
			return nan
		}
		return 0
	}
	return math.Pow(k, -d.S) / d.harmonic(d.S)
}

// LogProb returns the log of the mass at k.
func (d Zipf) LogProb(k float64) float64 {
	if k < 1 || k > float64(d.N) || k != math.Floor(k) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	return -d.S*math.Log(k) - math.Log(d.harmonic(d.S))
}

// CDF returns P(X ≤ k). The numerator and denominator accumulate in
// one pass in the same order, and any k ≥ N returns exactly 1.
func (d Zipf) CDF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	if k >= float64(d.N) {
		return 1
	}
	num, den := 0.0, 0.0
	for i := 1; i <= d.N; i++ {
		t := math.Pow(float64(i), -d.S)
		den += t
		if float64(i) <= k {
			num += t
		}
	}
	return num / den
}

// Survival returns 1 - CDF(k).
func (d Zipf) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d Zipf) Quantile(p float64) float64 {
	return discreteQuantile(p, 1, float64(d.N), d.CDF)
}

// Rand draws a value by walking the unnormalized mass until it
// crosses a uniform variate scaled by the normalizer.
func (d Zipf) Rand() float64 {
	u := uniform01(d.Src) * d.harmonic(d.S)
	sum := 0.0
	for k := 1; k < d.N; k++ {
		sum += math.Pow(float64(k), -d.S)
		if sum > u {
			return float64(k)
		}
	}
	return float64(d.N)
}

// rawMoment returns E[X^r] = H(N, S-r)/H(N, S).
func (d Zipf) rawMoment(r float64) float64 {
	return d.harmonic(d.S-r) / d.harmonic(d.S)
}

// Mean returns H(N, S-1)/H(N, S).
func (d Zipf) Mean() float64 {
	return d.rawMoment(1)
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d Zipf) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns 1; the mass function is strictly decreasing.
func (d Zipf) Mode() float64 {
	return 1
}

// Variance returns H(N, S-2)/H(N, S) - Mean()².
func (d Zipf) Variance() float64 {
	m := d.Mean()
	return d.rawMoment(2) - m*m
}

// StdDev returns the standard deviation.
func (d Zipf) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment. All moments are
// finite on the finite support.
func (d Zipf) Skewness() float64 {
	return skewFromRaw(d.rawMoment(1), d.rawMoment(2), d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis.
func (d Zipf) ExKurtosis() float64 {
	return exKurtFromRaw(d.rawMoment(1), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4))
}

// Entropy returns the entropy in nats,
// (S/H)·Σ k^-S·log k + log H.
func (d Zipf) Entropy() float64 {
	h := d.harmonic(d.S)
	sum := 0.0
	for k := d.N; k >= 1; k-- {
		sum += math.Pow(float64(k), -d.S) * math.Log(float64(k))
	}
	return d.S*sum/h + math.Log(h)
}

// NumParameters returns 2.
func (d Zipf) NumParameters() int {
	return 2
}
