// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// Burr is the Burr type XII distribution on (0, ∞) (Burr 1942), a
// flexible two-shape family that includes the Lomax distribution at
// C = 1 and is widely used for income and loss data. The tail index
// is C·K: moments of order r exist only for r < C·K.
type Burr struct {
	// C is the first shape parameter. C > 0.
	C float64

	// K is the second shape parameter. K > 0.
	K float64

	// Lambda is the scale parameter. Lambda > 0.
	Lambda float64

	Src rand.Source
}

// NewBurr returns a Burr XII distribution with shapes c, k and scale
// lambda, or an error wrapping ErrParam if a parameter is out of
// range.
func NewBurr(c, k, lambda float64) (Burr, error) {
	err := firstErr(
		checkPositive("Burr", "C", c),
		checkPositive("Burr", "K", k),
		checkPositive("Burr", "Lambda", lambda),
	)
	if err != nil {
		return Burr{}, err
	}
	return Burr{C: c, K: k, Lambda: lambda}, nil
}

// Support returns (0, ∞).
func (d Burr) Support() Support {
	return Support{Min: 0, Max: inf, OpenMin: true}
}

// Bounds returns [0, Quantile(0.999)].
func (d Burr) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	(CK/Lambda) (x/Lambda)^(C-1) (1 + (x/Lambda)^C)^-(K+1)
func (d Burr) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d Burr) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	r := x / d.Lambda
	return math.Log(d.C) + math.Log(d.K) - math.Log(d.Lambda) +
		(d.C-1)*math.Log(r) - (d.K+1)*math.Log1p(math.Pow(r, d.C))
}

// CDF returns 1 - (1 + (x/Lambda)^C)^-K.
func (d Burr) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.K * math.Log1p(math.Pow(x/d.Lambda, d.C)))
}

// Survival returns the upper tail (1 + (x/Lambda)^C)^-K.
func (d Burr) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-d.K * math.Log1p(math.Pow(x/d.Lambda, d.C)))
}

// Quantile returns the x with CDF(x) = p in closed form,
//
//	Lambda ((1-p)^(-1/K) - 1)^(1/C)
//
// It panics if p is outside [0, 1].
func (d Burr) Quantile(p float64) float64 {
	checkPercentile(p)
	return d.Lambda * math.Pow(math.Expm1(-math.Log1p(-p)/d.K), 1/d.C)
}

// Rand draws a variate by inverse transform.
func (d Burr) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// rawMoment returns E[X^r] = Lambda^r K B(K - r/C, 1 + r/C), which
// requires r < CK.
func (d Burr) rawMoment(r float64) float64 {
	return math.Pow(d.Lambda, r) * d.K * mathext.Beta(d.K-r/d.C, 1+r/d.C)
}

// Mean returns the mean for CK > 1 and NaN otherwise, since the mean
// integral diverges at or below the threshold.
func (d Burr) Mean() float64 {
	if d.C*d.K <= 1 {
		return nan
	}
	return d.rawMoment(1)
}

// Median returns Lambda(2^(1/K) - 1)^(1/C).
func (d Burr) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns Lambda((C-1)/(KC+1))^(1/C) for C > 1, and 0 otherwise
// where the density is decreasing.
func (d Burr) Mode() float64 {
	if d.C <= 1 {
		return 0
	}
	return d.Lambda * math.Pow((d.C-1)/(d.K*d.C+1), 1/d.C)
}

// Variance returns the variance for CK > 2, +Inf for 1 < CK ≤ 2 where
// the mean exists but the second moment diverges, and NaN for CK ≤ 1.
func (d Burr) Variance() float64 {
	ck := d.C * d.K
	if ck <= 1 {
		return nan
	}
	if ck <= 2 {
		return inf
	}
	m1 := d.rawMoment(1)
	return d.rawMoment(2) - m1*m1
}

// StdDev returns the square root of the variance.
func (d Burr) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness for CK > 3, +Inf for 2 < CK ≤ 3, and
// NaN otherwise.
func (d Burr) Skewness() float64 {
	ck := d.C * d.K
	if ck <= 2 {
		return nan
	}
	if ck <= 3 {
		return inf
	}
	return skewFromRaw(d.rawMoment(1), d.rawMoment(2), d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis for CK > 4, +Inf for
// 2 < CK ≤ 4, and NaN otherwise.
func (d Burr) ExKurtosis() float64 {
	ck := d.C * d.K
	if ck <= 2 {
		return nan
	}
	if ck <= 4 {
		return inf
	}
	return exKurtFromRaw(d.rawMoment(1), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4))
}

// NumParameters returns 3.
func (d Burr) NumParameters() int {
	return 3
}
