// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// Rademacher is the two-point distribution taking the values -1 and
// +1 with probability 1/2 each: a centered coin flip. It has no
// parameters.
type Rademacher struct {
	Src rand.Source
}

// NewRademacher returns a Rademacher distribution. There are no
// parameters to validate, so unlike the other constructors it cannot
// fail.
func NewRademacher() Rademacher {
	return Rademacher{}
}

// Support returns the two-point lattice {-1, +1}.
func (d Rademacher) Support() Support {
	return Support{Min: -1, Max: 1, Step: 2}
}

// Bounds returns [-1, 1].
func (d Rademacher) Bounds() (float64, float64) {
	return -1, 1
}

// Prob returns 1/2 at ±1 and 0 elsewhere.
func (d Rademacher) Prob(x float64) float64 {
	if x == -1 || x == 1 {
		return 0.5
	}
	return 0
}

// LogProb returns the log of the mass at x.
func (d Rademacher) LogProb(x float64) float64 {
	if x == -1 || x == 1 {
		return -ln2
	}
	return math.Inf(-1)
}

// CDF returns 0 below -1, 1/2 on [-1, 1), and 1 from 1 on.
func (d Rademacher) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < -1:
		return 0
	case x < 1:
		return 0.5
	}
	return 1
}

// Survival returns 1 - CDF(x).
func (d Rademacher) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Quantile returns -1 for p ≤ 1/2 and +1 above, the generalized
// inverse of the CDF. It panics if p is outside [0, 1].
func (d Rademacher) Quantile(p float64) float64 {
	checkPercentile(p)
	if p <= 0.5 {
		return -1
	}
	return 1
}

// Rand draws -1 or +1 with equal probability.
func (d Rademacher) Rand() float64 {
	if uniform01(d.Src) < 0.5 {
		return -1
	}
	return 1
}

// Mean returns 0.
func (d Rademacher) Mean() float64 {
	return 0
}

// Median returns -1, following the generalized-inverse convention of
// Quantile; any value in [-1, 1] splits the mass evenly.
func (d Rademacher) Median() float64 {
	return -1
}

// Mode returns NaN: both support points carry the same mass, so no
// unique mode exists.
func (d Rademacher) Mode() float64 {
	return nan
}

// Variance returns 1.
func (d Rademacher) Variance() float64 {
	return 1
}

// StdDev returns 1.
func (d Rademacher) StdDev() float64 {
	return 1
}

// Skewness returns 0.
func (d Rademacher) Skewness() float64 {
	return 0
}

// ExKurtosis returns -2, the minimum possible excess kurtosis.
func (d Rademacher) ExKurtosis() float64 {
	return -2
}

// Entropy returns ln 2, one bit in nats.
func (d Rademacher) Entropy() float64 {
	return ln2
}

// MGF returns cosh(t).
func (d Rademacher) MGF(t float64) float64 {
	return math.Cosh(t)
}

// NumParameters returns 0.
func (d Rademacher) NumParameters() int {
	return 0
}
