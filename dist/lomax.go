// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Lomax is the Lomax distribution, a Pareto distribution shifted so
// its support starts at zero. It is a standard model for heavy-tailed
// nonnegative data such as business failure times (Lomax 1954) and
// file sizes. Its tail is polynomial with index Alpha, so high moments
// do not exist: the mean requires Alpha > 1 and the variance is
// infinite unless Alpha > 2.
type Lomax struct {
	// Lambda is the scale parameter. Lambda > 0.
	Lambda float64

	// Alpha is the shape (tail index) parameter. Alpha > 0.
	Alpha float64

	Src rand.Source
}

// NewLomax returns a Lomax distribution with scale lambda and shape
// alpha, or an error wrapping ErrParam if a parameter is out of range.
func NewLomax(lambda, alpha float64) (Lomax, error) {
	err := firstErr(
		checkPositive("Lomax", "Lambda", lambda),
		checkPositive("Lomax", "Alpha", alpha),
	)
	if err != nil {
		return Lomax{}, err
	}
	return Lomax{Lambda: lambda, Alpha: alpha}, nil
}

// Support returns [0, ∞).
func (d Lomax) Support() Support {
	return Support{Min: 0, Max: inf}
}

// Bounds returns [0, Quantile(0.999)].
func (d Lomax) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// Prob returns the density (Alpha/Lambda)(1+x/Lambda)^-(Alpha+1) for
// x ≥ 0.
func (d Lomax) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d Lomax) LogProb(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(d.Alpha/d.Lambda) - (d.Alpha+1)*math.Log1p(x/d.Lambda)
}

// CDF returns 1 - (1+x/Lambda)^-Alpha.
func (d Lomax) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -math.Expm1(-d.Alpha * math.Log1p(x/d.Lambda))
}

// Survival returns the upper tail (1+x/Lambda)^-Alpha.
func (d Lomax) Survival(x float64) float64 {
	if x < 0 {
		return 1
	}
	return math.Exp(-d.Alpha * math.Log1p(x/d.Lambda))
}

// Quantile returns the x with CDF(x) = p. It panics if p is outside
// [0, 1].
func (d Lomax) Quantile(p float64) float64 {
	checkPercentile(p)
	return d.Lambda * math.Expm1(-math.Log1p(-p)/d.Alpha)
}

// Rand draws a variate, as a Pareto draw shifted to start at zero.
func (d Lomax) Rand() float64 {
	return distuv.Pareto{Xm: d.Lambda, Alpha: d.Alpha, Src: d.Src}.Rand() - d.Lambda
}

// Mean returns Lambda/(Alpha-1) for Alpha > 1 and NaN otherwise, since
// the mean does not exist for Alpha ≤ 1.
func (d Lomax) Mean() float64 {
	if d.Alpha <= 1 {
		return nan
	}
	return d.Lambda / (d.Alpha - 1)
}

// Median returns Lambda(2^(1/Alpha) - 1).
func (d Lomax) Median() float64 {
	return d.Lambda * math.Expm1(ln2/d.Alpha)
}

// Mode returns 0.
func (d Lomax) Mode() float64 {
	return 0
}

// Variance returns the variance for Alpha > 2, +Inf for 1 < Alpha ≤ 2
// where the mean exists but the second moment diverges, and NaN for
// Alpha ≤ 1 where not even the mean exists.
func (d Lomax) Variance() float64 {
	a := d.Alpha
	if a <= 1 {
		return nan
	}
	if a <= 2 {
		return inf
	}
	return d.Lambda * d.Lambda * a / ((a - 1) * (a - 1) * (a - 2))
}

// StdDev returns the square root of the variance.
func (d Lomax) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness for Alpha > 3, +Inf for 2 < Alpha ≤ 3
// where the third central moment diverges against a finite variance,
// and NaN otherwise.
func (d Lomax) Skewness() float64 {
	a := d.Alpha
	if a <= 2 {
		return nan
	}
	if a <= 3 {
		return inf
	}
	return 2 * (1 + a) / (a - 3) * math.Sqrt((a-2)/a)
}

// ExKurtosis returns the excess kurtosis for Alpha > 4, +Inf for
// 2 < Alpha ≤ 4, and NaN otherwise.
func (d Lomax) ExKurtosis() float64 {
	a := d.Alpha
	if a <= 2 {
		return nan
	}
	if a <= 4 {
		return inf
	}
	return 6 * (a*a*a + a*a - 6*a - 2) / (a * (a - 3) * (a - 4))
}

// Entropy returns the differential entropy in nats.
func (d Lomax) Entropy() float64 {
	return 1 + 1/d.Alpha + math.Log(d.Lambda/d.Alpha)
}

// NumParameters returns 2.
func (d Lomax) NumParameters() int {
	return 2
}
