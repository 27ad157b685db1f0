// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// Dagum is the Dagum distribution on (0, ∞) (Dagum 1977), the
// mirrored cousin of the Burr XII family obtained by inverting a Burr
// variate. It is a standard model for personal income, with tail
// index A: moments of order r exist only for r < A.
type Dagum struct {
	// A is the tail shape parameter. A > 0.
	A float64

	// B is the scale parameter. B > 0.
	B float64

	// P is the lower shape parameter. P > 0.
	P float64

	Src rand.Source
}

// NewDagum returns a Dagum distribution with shapes a, p and scale b,
// or an error wrapping ErrParam if a parameter is out of range.
func NewDagum(a, b, p float64) (Dagum, error) {
	err := firstErr(
		checkPositive("Dagum", "A", a),
		checkPositive("Dagum", "B", b),
		checkPositive("Dagum", "P", p),
	)
	if err != nil {
		return Dagum{}, err
	}
	return Dagum{A: a, B: b, P: p}, nil
}

// Support returns (0, ∞).
func (d Dagum) Support() Support {
	return Support{Min: 0, Max: inf, OpenMin: true}
}

// Bounds returns [0, Quantile(0.999)].
func (d Dagum) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	(AP/x) (x/B)^(AP) / (1 + (x/B)^A)^(P+1)
func (d Dagum) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d Dagum) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	r := x / d.B
	return math.Log(d.A) + math.Log(d.P) - math.Log(x) +
		d.A*d.P*math.Log(r) - (d.P+1)*math.Log1p(math.Pow(r, d.A))
}

// CDF returns (1 + (x/B)^-A)^-P.
func (d Dagum) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Exp(-d.P * math.Log1p(math.Pow(x/d.B, -d.A)))
}

// Survival returns 1 - CDF(x).
func (d Dagum) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return -math.Expm1(-d.P * math.Log1p(math.Pow(x/d.B, -d.A)))
}

// Quantile returns the x with CDF(x) = p in closed form,
//
//	B (p^(-1/P) - 1)^(-1/A)
//
// It panics if p is outside [0, 1].
func (d Dagum) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return 0
	}
	if p == 1 {
		// Pow(-0, -1/A) is -Inf when 1/A is an odd integer.
		return inf
	}
	return d.B * math.Pow(math.Expm1(-math.Log(p)/d.P), -1/d.A)
}

// Rand draws a variate by inverse transform.
func (d Dagum) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// rawMoment returns E[X^r] = B^r P B(P + r/A, 1 - r/A), which
// requires r < A.
func (d Dagum) rawMoment(r float64) float64 {
	return math.Pow(d.B, r) * d.P * mathext.Beta(d.P+r/d.A, 1-r/d.A)
}

// Mean returns the mean for A > 1 and NaN otherwise, since the mean
// integral diverges at or below the threshold.
func (d Dagum) Mean() float64 {
	if d.A <= 1 {
		return nan
	}
	return d.rawMoment(1)
}

// Median returns the 0.5 quantile.
func (d Dagum) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns B((AP-1)/(A+1))^(1/A) for AP > 1, and 0 otherwise
// where the density is decreasing.
func (d Dagum) Mode() float64 {
	if d.A*d.P <= 1 {
		return 0
	}
	return d.B * math.Pow((d.A*d.P-1)/(d.A+1), 1/d.A)
}

// Variance returns the variance for A > 2, +Inf for 1 < A ≤ 2 where
// the mean exists but the second moment diverges, and NaN for A ≤ 1.
func (d Dagum) Variance() float64 {
	if d.A <= 1 {
		return nan
	}
	if d.A <= 2 {
		return inf
	}
	m1 := d.rawMoment(1)
	return d.rawMoment(2) - m1*m1
}

// StdDev returns the square root of the variance.
func (d Dagum) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness for A > 3, +Inf for 2 < A ≤ 3, and
// NaN otherwise.
func (d Dagum) Skewness() float64 {
	if d.A <= 2 {
		return nan
	}
	if d.A <= 3 {
		return inf
	}
	return skewFromRaw(d.rawMoment(1), d.rawMoment(2), d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis for A > 4, +Inf for
// 2 < A ≤ 4, and NaN otherwise.
func (d Dagum) ExKurtosis() float64 {
	if d.A <= 2 {
		return nan
	}
	if d.A <= 4 {
		return inf
	}
	return exKurtFromRaw(d.rawMoment(1), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4))
}

// NumParameters returns 3.
func (d Dagum) NumParameters() int {
	return 3
}
