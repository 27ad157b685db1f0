// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// BetaNegBinomial is the beta negative binomial distribution with
// success count R and beta shapes Alpha, Beta:
//
//	P(X = k) = Γ(R+k)/(Γ(R)·k!) · B(Alpha+R, Beta+k)/B(Alpha, Beta)
//
// for k = 0, 1, 2, ...: a negative binomial whose success
// probability is itself Beta(Alpha, Beta) distributed. The extra
// mixing gives a power-law tail of index Alpha+1, so moments exist
// only up to order Alpha. All three parameters must be positive; R
// may be any positive real.
type BetaNegBinomial struct {
	R     float64
	Alpha float64
	Beta  float64
	Src   rand.Source
}

// NewBetaNegBinomial returns a beta negative binomial distribution,
// or an error if any parameter is not positive.
func NewBetaNegBinomial(r, alpha, beta float64) (BetaNegBinomial, error) {
	err := firstErr(
		checkPositive("BetaNegBinomial", "R", r),
		checkPositive("BetaNegBinomial", "Alpha", alpha),
		checkPositive("BetaNegBinomial", "Beta", beta),
	)
	if err != nil {
		return BetaNegBinomial{}, err
	}
	return BetaNegBinomial{R: r, Alpha: alpha, Beta: beta}, nil
}

// Support returns the nonnegative integers.
func (d BetaNegBinomial) Support() Support {
	return Support{Min: 0, Max: math.Inf(1), Step: 1}
}

// Bounds returns [0, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d BetaNegBinomial) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// LogProb returns the log of the mass at k.
func (d BetaNegBinomial) LogProb(k float64) float64 {
	if k < 0 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	lgrk, _ := math.Lgamma(d.R + k)
	lgr, _ := math.Lgamma(d.R)
	lgk, _ := math.Lgamma(k + 1)
	return lgrk - lgr - lgk +
		mathext.Lbeta(d.Alpha+d.R, d.Beta+k) - mathext.Lbeta(d.Alpha, d.Beta)
}

// Prob returns the probability mass at k.
func (d BetaNegBinomial) Prob(k float64) float64 {
	return math.Exp(d.LogProb(k))
}

// CDF returns P(X ≤ k). The masses far into the power-law tail
// underflow individually, so the sum is reduced in log space.
func (d BetaNegBinomial) CDF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if math.IsInf(k, 1) {
		return 1
	}
	terms := make([]float64, 0, int(k)+1)
	for i := 0.0; i <= k; i++ {
		terms = append(terms, d.LogProb(i))
	}
	return math.Min(1, math.Exp(floats.LogSumExp(terms)))
}

// Survival returns 1 - CDF(k).
func (d BetaNegBinomial) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d BetaNegBinomial) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, math.Inf(1), d.CDF)
}

// Rand draws a value through the full hierarchy: a beta draw sets
// the success probability, a gamma draw mixes it into a rate, and a
// Poisson draw at that rate is negative binomial given the first
// stage.
func (d BetaNegBinomial) Rand() float64 {
	p := distuv.Beta{Alpha: d.Alpha, Beta: d.Beta, Src: d.Src}.Rand()
	g := distuv.Gamma{Alpha: d.R, Beta: p / (1 - p), Src: d.Src}.Rand()
	if g == 0 {
		return 0
	}
	return distuv.Poisson{Lambda: g, Src: d.Src}.Rand()
}

// fallingMoment returns the kth factorial moment
// E[X(X-1)···(X-k+1)] = (R)ₖ · Γ(Alpha-k)Γ(Beta+k)/(Γ(Alpha)Γ(Beta)),
// which is finite only for Alpha > k.
func (d BetaNegBinomial) fallingMoment(k float64) float64 {
	lgrk, _ := math.Lgamma(d.R + k)
	lgr, _ := math.Lgamma(d.R)
	lgak, _ := math.Lgamma(d.Alpha - k)
	lga, _ := math.Lgamma(d.Alpha)
	lgbk, _ := math.Lgamma(d.Beta + k)
	lgb, _ := math.Lgamma(d.Beta)
	return math.Exp(lgrk - lgr + lgak - lga + lgbk - lgb)
}

// Mean returns R·Beta/(Alpha-1) for Alpha > 1 and NaN otherwise: at
// and below Alpha = 1 the mean series diverges.
func (d BetaNegBinomial) Mean() float64 {
	if d.Alpha <= 1 {
		return nan
	}
	return d.R * d.Beta / (d.Alpha - 1)
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d BetaNegBinomial) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function. The mass
// ratio P(X=k+1)/P(X=k) = (R+k)(Beta+k)/((k+1)(Alpha+Beta+R+k))
// stays at or above 1 exactly while k ≤ (R·Beta-R-Beta-Alpha)/(Alpha+1).
func (d BetaNegBinomial) Mode() float64 {
	q := (d.R*d.Beta - d.R - d.Beta - d.Alpha) / (d.Alpha + 1)
	if q < 0 {
		return 0
	}
	m := math.Floor(q)
	if q == m {
		// P(X = m) = P(X = m+1); report the smaller mode.
		return m
	}
	return m + 1
}

// Variance returns the variance for Alpha > 2, +Inf when the mean
// exists but the second moment diverges (1 < Alpha ≤ 2), and NaN
// when the mean does not exist (Alpha ≤ 1).
func (d BetaNegBinomial) Variance() float64 {
	switch {
	case d.Alpha <= 1:
		return nan
	case d.Alpha <= 2:
		return math.Inf(1)
	}
	m1 := d.fallingMoment(1)
	m2 := d.fallingMoment(2) + m1
	return m2 - m1*m1
}

// StdDev returns the standard deviation.
func (d BetaNegBinomial) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment for Alpha > 3, +Inf
// when the variance is finite but the third moment diverges
// (2 < Alpha ≤ 3), and NaN when the variance does not exist.
func (d BetaNegBinomial) Skewness() float64 {
	switch {
	case d.Alpha <= 2:
		return nan
	case d.Alpha <= 3:
		return math.Inf(1)
	}
	f1 := d.fallingMoment(1)
	f2 := d.fallingMoment(2)
	f3 := d.fallingMoment(3)
	return skewFromRaw(f1, f2+f1, f3+3*f2+f1)
}

// ExKurtosis returns the excess kurtosis for Alpha > 4, +Inf when
// the variance is finite but the fourth moment diverges
// (2 < Alpha ≤ 4), and NaN when the variance does not exist.
func (d BetaNegBinomial) ExKurtosis() float64 {
	switch {
	case d.Alpha <= 2:
		return nan
	case d.Alpha <= 4:
		return math.Inf(1)
	}
	f1 := d.fallingMoment(1)
	f2 := d.fallingMoment(2)
	f3 := d.fallingMoment(3)
	f4 := d.fallingMoment(4)
	return exKurtFromRaw(f1, f2+f1, f3+3*f2+f1, f4+6*f3+7*f2+f1)
}

// NumParameters returns 3.
func (d BetaNegBinomial) NumParameters() int {
	return 3
}
