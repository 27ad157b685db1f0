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

// Nakagami is the Nakagami-m distribution on (0, ∞), the standard
// model for radio fading amplitudes (Nakagami 1960). X² is
// Gamma-distributed with shape M and mean Omega, so M = 1/2 recovers
// a half-Normal and M = 1 a Rayleigh distribution.
type Nakagami struct {
	// M is the shape (fading figure). M > 0.
	M float64

	// Omega is the spread, the mean of X². Omega > 0.
	Omega float64

	Src rand.Source
}

// NewNakagami returns a Nakagami distribution with shape m and spread
// omega, or an error wrapping ErrParam if a parameter is out of
// range.
func NewNakagami(m, omega float64) (Nakagami, error) {
	err := firstErr(
		checkPositive("Nakagami", "M", m),
		checkPositive("Nakagami", "Omega", omega),
	)
	if err != nil {
		return Nakagami{}, err
	}
	return Nakagami{M: m, Omega: omega}, nil
}

// Support returns (0, ∞).
func (d Nakagami) Support() Support {
	return Support{Min: 0, Max: inf, OpenMin: true}
}

// Bounds returns the interval between the 0.001 and 0.999 quantiles.
func (d Nakagami) Bounds() (float64, float64) {
	return d.Quantile(0.001), d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	2 M^M / (Γ(M) Omega^M) x^(2M-1) e^(-M x²/Omega)
func (d Nakagami) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d Nakagami) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	lg, _ := math.Lgamma(d.M)
	return ln2 + d.M*math.Log(d.M/d.Omega) - lg +
		(2*d.M-1)*math.Log(x) - d.M*x*x/d.Omega
}

// CDF returns P(M, M x²/Omega), the regularized lower incomplete
// Gamma function.
func (d Nakagami) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(d.M, d.M*x*x/d.Omega)
}

// Survival returns Q(M, M x²/Omega), the regularized upper incomplete
// Gamma function.
func (d Nakagami) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return mathext.GammaIncRegComp(d.M, d.M*x*x/d.Omega)
}

// Quantile returns the x with CDF(x) = p, through the inverse
// regularized incomplete Gamma function. It panics if p is outside
// [0, 1].
func (d Nakagami) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	return math.Sqrt(d.Omega / d.M * mathext.GammaIncRegInv(d.M, p))
}

// Rand draws a variate as the square root of a Gamma(M, M/Omega)
// draw.
func (d Nakagami) Rand() float64 {
	return math.Sqrt(distuv.Gamma{Alpha: d.M, Beta: d.M / d.Omega, Src: d.Src}.Rand())
}

// rawMoment returns E[X^k] = Γ(M+k/2)/Γ(M) (Omega/M)^(k/2).
func (d Nakagami) rawMoment(k float64) float64 {
	lg1, _ := math.Lgamma(d.M + k/2)
	lg0, _ := math.Lgamma(d.M)
	return math.Exp(lg1-lg0) * math.Pow(d.Omega/d.M, k/2)
}

// Mean returns Γ(M+1/2)/Γ(M) √(Omega/M).
func (d Nakagami) Mean() float64 {
	return d.rawMoment(1)
}

// Median returns the 0.5 quantile.
func (d Nakagami) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns √((2M-1)Omega/2M) for M ≥ 1/2, and 0 otherwise where
// the density is unbounded at the origin.
func (d Nakagami) Mode() float64 {
	if d.M < 0.5 {
		return 0
	}
	return math.Sqrt((2*d.M - 1) / (2 * d.M) * d.Omega)
}

// Variance returns Omega - Mean².
func (d Nakagami) Variance() float64 {
	mu := d.Mean()
	return d.Omega - mu*mu
}

// StdDev returns the square root of the variance.
func (d Nakagami) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness, from the closed raw moments.
func (d Nakagami) Skewness() float64 {
	return skewFromRaw(d.rawMoment(1), d.Omega, d.rawMoment(3))
}

// ExKurtosis returns the excess kurtosis, from the closed raw
// moments.
func (d Nakagami) ExKurtosis() float64 {
	return exKurtFromRaw(d.rawMoment(1), d.Omega, d.rawMoment(3), d.rawMoment(4))
}

// Entropy returns the differential entropy in nats,
//
//	M + ln Γ(M) + (1/2 - M)ψ(M) + ln(√(Omega/M)) - ln 2
//
// obtained from the Gamma entropy under the square-root transform.
func (d Nakagami) Entropy() float64 {
	lg, _ := math.Lgamma(d.M)
	return d.M + lg + (0.5-d.M)*mathext.Digamma(d.M) +
		0.5*math.Log(d.Omega/d.M) - ln2
}

// NumParameters returns 2.
func (d Nakagami) NumParameters() int {
	return 2
}
