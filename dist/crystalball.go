// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// CrystalBall is the Crystal Ball distribution on ℝ: a Gaussian core
// with a power-law left tail grafted on so the density and its first
// derivative stay continuous. It is the standard shape for
// reconstructed-mass peaks with radiative losses in high energy
// physics (named for the Crystal Ball experiment). In standardized
// coordinates z = (x-Mu)/Sigma the tail takes over below z = -Alpha
// and falls off like |z|^-M.
type CrystalBall struct {
	// Alpha is the junction point between core and tail, in
	// standard deviations. Alpha > 0.
	Alpha float64

	// M is the power-law exponent of the tail. M > 1. Moments of
	// order k exist only for M > k+1.
	M float64

	// Mu is the location of the Gaussian peak.
	Mu float64

	// Sigma is the width of the Gaussian core. Sigma > 0.
	Sigma float64

	Src rand.Source
}

// NewCrystalBall returns a Crystal Ball distribution with junction
// alpha, tail exponent m, peak mu and width sigma, or an error
// wrapping ErrParam if a parameter is out of range.
func NewCrystalBall(alpha, m, mu, sigma float64) (CrystalBall, error) {
	err := firstErr(
		checkPositive("CrystalBall", "Alpha", alpha),
		checkFinite("CrystalBall", "Mu", mu),
		checkPositive("CrystalBall", "Sigma", sigma),
	)
	if err != nil {
		return CrystalBall{}, err
	}
	if !(m > 1) {
		return CrystalBall{}, errors.Wrapf(ErrParam,
			"CrystalBall: M = %v, need M > 1", m)
	}
	return CrystalBall{Alpha: alpha, M: m, Mu: mu, Sigma: sigma}, nil
}

// logA returns the log of the tail coefficient A = (M/Alpha)^M
// e^(-Alpha²/2). A itself overflows for large M, so everything that
// touches it works in logs.
func (d CrystalBall) logA() float64 {
	return d.M*math.Log(d.M/d.Alpha) - d.Alpha*d.Alpha/2
}

// tailB returns B = M/Alpha - Alpha, the offset that aligns the tail
// with the core at the junction.
func (d CrystalBall) tailB() float64 {
	return d.M/d.Alpha - d.Alpha
}

// normCD returns the tail's and the core's shares of the unnormalized
// area (the constants usually written C and D).
func (d CrystalBall) normCD() (ct, dn float64) {
	ct = d.M / (d.Alpha * (d.M - 1)) * math.Exp(-d.Alpha*d.Alpha/2)
	dn = math.Sqrt(math.Pi/2) * (1 + math.Erf(d.Alpha/math.Sqrt2))
	return
}

// Support returns (-∞, ∞).
func (d CrystalBall) Support() Support {
	return Support{Min: math.Inf(-1), Max: inf}
}

// Bounds returns the interval between the 0.001 and 0.999 quantiles.
func (d CrystalBall) Bounds() (float64, float64) {
	return d.Quantile(0.001), d.Quantile(0.999)
}

// Prob returns the density at x: a Gaussian for z > -Alpha and
// A(B-z)^-M below, where z = (x-Mu)/Sigma.
func (d CrystalBall) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d CrystalBall) LogProb(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	ct, dn := d.normCD()
	logN := -math.Log(d.Sigma * (ct + dn))
	if z > -d.Alpha {
		return logN - z*z/2
	}
	return logN + d.logA() - d.M*math.Log(d.tailB()-z)
}

// CDF returns the probability of a variate being ≤ x.
func (d CrystalBall) CDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	ct, dn := d.normCD()
	if z <= -d.Alpha {
		return math.Exp(d.logA()+(1-d.M)*math.Log(d.tailB()-z)) / ((d.M - 1) * (ct + dn))
	}
	core := math.Sqrt(math.Pi/2) * (math.Erf(z/math.Sqrt2) + math.Erf(d.Alpha/math.Sqrt2))
	return (ct + core) / (ct + dn)
}

// Survival returns 1 - CDF(x).
func (d CrystalBall) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Quantile returns the x with CDF(x) = p, inverting whichever branch
// p falls in; both inverses are closed forms. It panics if p is
// outside [0, 1].
func (d CrystalBall) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return math.Inf(-1)
	}
	if p == 1 {
		return inf
	}
	ct, dn := d.normCD()
	var z float64
	if p <= ct/(ct+dn) {
		// Tail inverse: p = A(B-z)^(1-M) / ((M-1)(C+D)).
		logBz := -(math.Log(p) + math.Log(d.M-1) + math.Log(ct+dn) - d.logA()) / (d.M - 1)
		z = d.tailB() - math.Exp(logBz)
	} else {
		arg := (p*(ct+dn) - ct) * math.Sqrt(2/math.Pi)
		z = math.Sqrt2 * math.Erfinv(arg-math.Erf(d.Alpha/math.Sqrt2))
	}
	return d.Mu + d.Sigma*z
}

// Rand draws a variate by composition: with the tail's probability it
// inverts the tail CDF at the uniform draw, and otherwise it draws
// Gaussian candidates until one lands in the core region z > -Alpha.
func (d CrystalBall) Rand() float64 {
	ct, dn := d.normCD()
	u := uniform01(d.Src)
	if u < ct/(ct+dn) {
		logBz := -(math.Log(u) + math.Log(d.M-1) + math.Log(ct+dn) - d.logA()) / (d.M - 1)
		return d.Mu + d.Sigma*(d.tailB()-math.Exp(logBz))
	}
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: d.Src}
	for {
		z := n.Rand()
		if z > -d.Alpha {
			return d.Mu + d.Sigma*z
		}
	}
}

// zRawMoment returns E[z^k] in standardized coordinates, combining
// the closed Gaussian partial moments G_k (by the recurrence
// G_k = (-Alpha)^(k-1) e^(-Alpha²/2) + (k-1) G_(k-2)) with the
// binomial expansion of the tail integral. Valid for M > k+1.
func (d CrystalBall) zRawMoment(k int) float64 {
	ct, dn := d.normCD()
	ea := math.Exp(-d.Alpha * d.Alpha / 2)

	// Gaussian part over (-Alpha, ∞).
	g0, g1 := dn, ea
	for i := 2; i <= k; i++ {
		g0, g1 = g1, math.Pow(-d.Alpha, float64(i-1))*ea+float64(i-1)*g0
	}
	g := g0
	if k > 0 {
		g = g1
	}

	// Tail part over (-∞, -Alpha].
	b, ma := d.tailB(), d.M/d.Alpha
	t := 0.0
	for j := 0; j <= k; j++ {
		sign := 1.0
		if j%2 == 1 {
			sign = -1
		}
		t += sign * mathx.Choose(k, j) * math.Pow(b, float64(k-j)) *
			math.Pow(ma, float64(j+1)) / (d.M - 1 - float64(j))
	}
	t *= ea

	return (t + g) / (ct + dn)
}

// Mean returns the mean for M > 2, and -Inf otherwise: the power-law
// tail makes the mean integral diverge to -∞.
func (d CrystalBall) Mean() float64 {
	if d.M <= 2 {
		return math.Inf(-1)
	}
	return d.Mu + d.Sigma*d.zRawMoment(1)
}

// Median returns the 0.5 quantile.
func (d CrystalBall) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns Mu, the Gaussian peak.
func (d CrystalBall) Mode() float64 {
	return d.Mu
}

// Variance returns the variance for M > 3, +Inf for 2 < M ≤ 3 where
// the mean exists but the second moment diverges, and NaN for M ≤ 2.
func (d CrystalBall) Variance() float64 {
	if d.M <= 2 {
		return nan
	}
	if d.M <= 3 {
		return inf
	}
	m1 := d.zRawMoment(1)
	return d.Sigma * d.Sigma * (d.zRawMoment(2) - m1*m1)
}

// StdDev returns the square root of the variance.
func (d CrystalBall) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness for M > 4, -Inf for 3 < M ≤ 4 where
// the third central moment diverges to -∞ against a finite variance,
// and NaN otherwise.
func (d CrystalBall) Skewness() float64 {
	if d.M <= 3 {
		return nan
	}
	if d.M <= 4 {
		return math.Inf(-1)
	}
	return skewFromRaw(d.zRawMoment(1), d.zRawMoment(2), d.zRawMoment(3))
}

// ExKurtosis returns the excess kurtosis for M > 5, +Inf for
// 3 < M ≤ 5, and NaN otherwise.
func (d CrystalBall) ExKurtosis() float64 {
	if d.M <= 3 {
		return nan
	}
	if d.M <= 5 {
		return inf
	}
	return exKurtFromRaw(d.zRawMoment(1), d.zRawMoment(2), d.zRawMoment(3), d.zRawMoment(4))
}

// NumParameters returns 4.
func (d CrystalBall) NumParameters() int {
	return 4
}
