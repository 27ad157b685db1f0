// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Zero inflation mixes an extra point mass Pi at zero into a count
// distribution: P(X = 0) = Pi + (1-Pi)·P(B = 0), and
// P(X = k) = (1-Pi)·P(B = k) for k ≥ 1. The helpers below implement
// the mixture once; ZIPoisson, ZIBinomial and ZINegativeBinomial
// wrap them around their base types.

// counter is the behavior the zero-inflated wrappers need from their
// count component. distuv.Poisson, distuv.Binomial and
// NegativeBinomial all satisfy it.
type counter interface {
	Prob(k float64) float64
	LogProb(k float64) float64
	CDF(k float64) float64
	Survival(k float64) float64
	Rand() float64
	Mean() float64
	Variance() float64
	Skewness() float64
	ExKurtosis() float64
}

// ziProb returns the zero-inflated mass at k over base b.
func ziProb(pi float64, b counter, k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	if k == 0 {
		return pi + (1-pi)*b.Prob(0)
	}
	return (1 - pi) * b.Prob(k)
}

// ziLogProb returns the log of the zero-inflated mass at k.
func ziLogProb(pi float64, b counter, k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	if k == 0 {
		if pi == 0 {
			return b.LogProb(0)
		}
		return logAddExp(math.Log(pi), math.Log1p(-pi)+b.LogProb(0))
	}
	return math.Log1p(-pi) + b.LogProb(k)
}

// ziCDF returns the zero-inflated P(X ≤ k).
func ziCDF(pi float64, b counter, k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	if k < 0 {
		return 0
	}
	return pi + (1-pi)*b.CDF(k)
}

// ziSurvival returns the zero-inflated P(X > k).
func ziSurvival(pi float64, b counter, k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	if k < 0 {
		return 1
	}
	return (1 - pi) * b.Survival(k)
}

// ziMean returns (1-pi)·E[B].
func ziMean(pi float64, b counter) float64 {
	return (1 - pi) * b.Mean()
}

// ziVariance returns the mixture variance
// (1-pi)·Var[B] + pi·(1-pi)·E[B]².
func ziVariance(pi float64, b counter) float64 {
	m := b.Mean()
	return (1-pi)*b.Variance() + pi*(1-pi)*m*m
}

// ziSkewness returns the mixture skewness. Every raw moment of the
// mixture is the base moment scaled by 1-pi.
func ziSkewness(pi float64, b counter) float64 {
	m1, m2, m3, _ := rawMoments(b)
	q := 1 - pi
	return skewFromRaw(q*m1, q*m2, q*m3)
}

// ziExKurtosis returns the mixture excess kurtosis.
func ziExKurtosis(pi float64, b counter) float64 {
	m1, m2, m3, m4 := rawMoments(b)
	q := 1 - pi
	return exKurtFromRaw(q*m1, q*m2, q*m3, q*m4)
}

// ziMode returns the smallest argmax of the zero-inflated mass,
// scanning out to ten standard deviations past the mean.
func ziMode(pi float64, b counter) float64 {
	hi := math.Ceil(ziMean(pi, b)+10*math.Sqrt(ziVariance(pi, b))) + 1
	return modeScan(func(k float64) float64 { return ziProb(pi, b, k) }, 0, hi)
}

// rawMoments recovers the first four raw moments of a count
// distribution from its named moments.
func rawMoments(b counter) (m1, m2, m3, m4 float64) {
	mu, v := b.Mean(), b.Variance()
	mu3 := b.Skewness() * v * math.Sqrt(v)
	mu4 := (b.ExKurtosis() + 3) * v * v
	m1 = mu
	m2 = v + mu*mu
	m3 = mu3 + 3*mu*v + mu*mu*mu
	m4 = mu4 + 4*mu*mu3 + 6*mu*mu*v + mu*mu*mu*mu
	return
}

// logAddExp returns log(e^a + e^b) without overflow.
func logAddExp(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, -1) {
		return a
	}
	return a + math.Log1p(math.Exp(b-a))
}
