// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/aclements/go-moredist/mathx"
)

// conwayMaxTerms caps the normalizer series of ConwayMaxwellPoisson.
// The peak term sits near Lambda^(1/Nu), so parameters that push the
// bulk of the mass past the cap (tiny Nu with Lambda > 1) lose
// accuracy.
const conwayMaxTerms = 100000

// conwayTol is the relative-term tolerance that stops the normalizer
// series: summation ends once the newest term falls below this
// fraction of the running sum.
const conwayTol = 1e-12

// ConwayMaxwellPoisson is the Conway-Maxwell-Poisson distribution
// with rate Lambda and decay Nu:
//
//	P(X = k) = Lambda^k / (k!)^Nu / Z(Lambda, Nu), k = 0, 1, 2, ...
//
// Nu = 1 recovers the Poisson distribution; Nu > 1 is
// underdispersed, Nu < 1 overdispersed, and Nu = 0 geometric (which
// requires Lambda < 1 for the normalizer to converge). Lambda must
// be positive and Nu nonnegative.
//
// The normalizer Z has no closed form in general and is evaluated by
// a log-space series, so most operations cost a series summation.
//
// See Shmueli et al. (2005), J. R. Stat. Soc. C 54.
type ConwayMaxwellPoisson struct {
	Lambda float64
	Nu     float64
	Src    rand.Source
}

// NewConwayMaxwellPoisson returns a Conway-Maxwell-Poisson
// distribution with rate lambda and decay nu. It returns an error if
// lambda ≤ 0, nu < 0, or nu = 0 with lambda ≥ 1.
func NewConwayMaxwellPoisson(lambda, nu float64) (ConwayMaxwellPoisson, error) {
	var errs []error
	if err := checkPositive("ConwayMaxwellPoisson", "Lambda", lambda); err != nil {
		errs = append(errs, err)
	}
	if !(nu >= 0) || math.IsInf(nu, 1) {
		errs = append(errs, errors.Wrapf(ErrParam, "ConwayMaxwellPoisson: Nu = %v, need finite Nu >= 0", nu))
	}
	if nu == 0 && lambda >= 1 {
		errs = append(errs, errors.Wrapf(ErrParam, "ConwayMaxwellPoisson: Lambda = %v, need Lambda < 1 when Nu = 0", lambda))
	}
	if err := firstErr(errs...); err != nil {
		return ConwayMaxwellPoisson{}, err
	}
	return ConwayMaxwellPoisson{Lambda: lambda, Nu: nu}, nil
}

// logZ returns log Z(Lambda, Nu), using closed forms for Nu = 0, 1
// and 2 and the log-space series otherwise.
func (d ConwayMaxwellPoisson) logZ() float64 {
	switch d.Nu {
	case 0:
		return -math.Log1p(-d.Lambda)
	case 1:
		return d.Lambda
	case 2:
		// Z = I₀(2·sqrt(Lambda)). Fall through to the series
		// if the Bessel evaluation overflows.
		if i0 := mathx.BesselI0(2 * math.Sqrt(d.Lambda)); !math.IsInf(i0, 1) {
			return math.Log(i0)
		}
	}
	llam := math.Log(d.Lambda)
	ltol := math.Log(conwayTol)
	lse := 0.0 // the k = 0 term is 1
	for k := 1.0; k < conwayMaxTerms; k++ {
		lg, _ := math.Lgamma(k + 1)
		t := k*llam - d.Nu*lg
		lse = logAddExp(lse, t)
		if t-lse < ltol {
			break
		}
	}
	return lse
}

// peak returns the index of the largest series term.
func (d ConwayMaxwellPoisson) peak() float64 {
	if d.Nu == 0 {
		return 0
	}
	return math.Pow(d.Lambda, 1/d.Nu)
}

// Support returns the nonnegative integers.
func (d ConwayMaxwellPoisson) Support() Support {
	return Support{Min: 0, Max: math.Inf(1), Step: 1}
}

// Bounds returns [0, Quantile(0.999)], enclosing effectively all of
// the mass in a finite interval.
func (d ConwayMaxwellPoisson) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// LogProb returns the log of the mass at k.
func (d ConwayMaxwellPoisson) LogProb(k float64) float64 {
	if k < 0 || k != math.Floor(k) || math.IsInf(k, 1) {
		if math.IsNaN(k) {
			return nan
		}
		return math.Inf(-1)
	}
	lg, _ := math.Lgamma(k + 1)
	return k*math.Log(d.Lambda) - d.Nu*lg - d.logZ()
}

// Prob returns the probability mass at k.
func (d ConwayMaxwellPoisson) Prob(k float64) float64 {
	return math.Exp(d.LogProb(k))
}

// CDF returns P(X ≤ k) by summing the normalized series. The
// normalizer is evaluated once per call.
func (d ConwayMaxwellPoisson) CDF(k float64) float64 {
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
	lz := d.logZ()
	llam := math.Log(d.Lambda)
	peak := d.peak()
	sum := 0.0
	for i := 0.0; i <= k; i++ {
		lg, _ := math.Lgamma(i + 1)
		prev := sum
		sum += math.Exp(i*llam - d.Nu*lg - lz)
		if sum >= 1 {
			return 1
		}
		if sum == prev && i > peak {
			break
		}
	}
	return sum
}

// Survival returns 1 - CDF(k).
func (d ConwayMaxwellPoisson) Survival(k float64) float64 {
	return 1 - d.CDF(k)
}

// Quantile returns the smallest k with CDF(k) ≥ p. It panics if p is
// outside [0, 1].
func (d ConwayMaxwellPoisson) Quantile(p float64) float64 {
	return discreteQuantile(p, 0, math.Inf(1), d.CDF)
}

// Rand draws a value by inverting the CDF at a uniform variate.
func (d ConwayMaxwellPoisson) Rand() float64 {
	return d.Quantile(uniform01(d.Src))
}

// moment returns E[X^r] by summing the normalized series.
func (d ConwayMaxwellPoisson) moment(r float64) float64 {
	lz := d.logZ()
	llam := math.Log(d.Lambda)
	peak := d.peak()
	sum := 0.0
	for k := 1.0; k < conwayMaxTerms; k++ {
		lg, _ := math.Lgamma(k + 1)
		prev := sum
		sum += math.Exp(r*math.Log(k) + k*llam - d.Nu*lg - lz)
		if sum == prev && k > peak {
			break
		}
	}
	return sum
}

// Mean returns E[X], evaluated by series.
func (d ConwayMaxwellPoisson) Mean() float64 {
	return d.moment(1)
}

// Median returns the smallest k with CDF(k) ≥ 1/2.
func (d ConwayMaxwellPoisson) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns the smallest k maximizing the mass function. The mass
// ratio P(X=k+1)/P(X=k) = Lambda/(k+1)^Nu crosses 1 at
// k+1 = Lambda^(1/Nu).
func (d ConwayMaxwellPoisson) Mode() float64 {
	if d.Nu == 0 {
		return 0
	}
	m := math.Pow(d.Lambda, 1/d.Nu)
	f := math.Floor(m)
	if m == f && m >= 1 {
		// P(X = m-1) = P(X = m); report the smaller mode.
		return m - 1
	}
	return f
}

// Variance returns E[X²] - E[X]², evaluated by series.
func (d ConwayMaxwellPoisson) Variance() float64 {
	m := d.moment(1)
	return d.moment(2) - m*m
}

// StdDev returns the standard deviation.
func (d ConwayMaxwellPoisson) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment, evaluated by
// series.
func (d ConwayMaxwellPoisson) Skewness() float64 {
	return skewFromRaw(d.moment(1), d.moment(2), d.moment(3))
}

// ExKurtosis returns the excess kurtosis, evaluated by series.
func (d ConwayMaxwellPoisson) ExKurtosis() float64 {
	return exKurtFromRaw(d.moment(1), d.moment(2), d.moment(3), d.moment(4))
}

// Entropy returns the entropy in nats, evaluated by series.
func (d ConwayMaxwellPoisson) Entropy() float64 {
	lz := d.logZ()
	llam := math.Log(d.Lambda)
	peak := d.peak()
	sum := 0.0
	for k := 0.0; k < conwayMaxTerms; k++ {
		lg, _ := math.Lgamma(k + 1)
		lp := k*llam - d.Nu*lg - lz
		prev := sum
		sum -= math.Exp(lp) * lp
		if sum == prev && k > peak {
			break
		}
	}
	return sum
}

// NumParameters returns 2.
func (d ConwayMaxwellPoisson) NumParameters() int {
	return 2
}
