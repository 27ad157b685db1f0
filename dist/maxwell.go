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

const eulerGamma = 0.577215664901532860606512090082402431

// Maxwell is the Maxwell-Boltzmann distribution on [0, ∞): the speed
// of a particle whose three velocity components are independent
// Normal(0, A) variates. Equivalently, X/A is a chi variate with
// three degrees of freedom.
type Maxwell struct {
	// A is the scale parameter. A > 0.
	A float64

	Src rand.Source
}

// NewMaxwell returns a Maxwell-Boltzmann distribution with scale a,
// or an error wrapping ErrParam if a is out of range.
func NewMaxwell(a float64) (Maxwell, error) {
	if err := checkPositive("Maxwell", "A", a); err != nil {
		return Maxwell{}, err
	}
	return Maxwell{A: a}, nil
}

// Support returns [0, ∞).
func (d Maxwell) Support() Support {
	return Support{Min: 0, Max: inf}
}

// Bounds returns [0, Quantile(0.999)].
func (d Maxwell) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}

// Prob returns the density at x,
//
//	√(2/π) x² e^(-x²/2A²) / A³
func (d Maxwell) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// LogProb returns the log of the density at x.
func (d Maxwell) LogProb(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(2/sqrt2Pi) + 2*math.Log(x) - x*x/(2*d.A*d.A) - 3*math.Log(d.A)
}

// CDF returns P(3/2, x²/2A²), the regularized lower incomplete Gamma
// function.
func (d Maxwell) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return mathext.GammaIncReg(1.5, x*x/(2*d.A*d.A))
}

// Survival returns Q(3/2, x²/2A²), the regularized upper incomplete
// Gamma function.
func (d Maxwell) Survival(x float64) float64 {
	if x < 0 {
		return 1
	}
	return mathext.GammaIncRegComp(1.5, x*x/(2*d.A*d.A))
}

// Quantile returns the x with CDF(x) = p, through the inverse
// regularized incomplete Gamma function. It panics if p is outside
// [0, 1].
func (d Maxwell) Quantile(p float64) float64 {
	checkPercentile(p)
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	return d.A * math.Sqrt(2*mathext.GammaIncRegInv(1.5, p))
}

// Rand draws a variate as A√(2G) with G a Gamma(3/2, 1) draw.
func (d Maxwell) Rand() float64 {
	g := distuv.Gamma{Alpha: 1.5, Beta: 1, Src: d.Src}.Rand()
	return d.A * math.Sqrt(2*g)
}

// Mean returns 2A√(2/π).
func (d Maxwell) Mean() float64 {
	return 2 * d.A * math.Sqrt(2/math.Pi)
}

// Median returns the 0.5 quantile.
func (d Maxwell) Median() float64 {
	return d.Quantile(0.5)
}

// Mode returns A√2.
func (d Maxwell) Mode() float64 {
	return d.A * math.Sqrt2
}

// Variance returns A²(3π-8)/π.
func (d Maxwell) Variance() float64 {
	return d.A * d.A * (3*math.Pi - 8) / math.Pi
}

// StdDev returns the square root of the variance.
func (d Maxwell) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns 2√2(16-5π)/(3π-8)^(3/2).
func (d Maxwell) Skewness() float64 {
	den := 3*math.Pi - 8
	return 2 * math.Sqrt2 * (16 - 5*math.Pi) / (den * math.Sqrt(den))
}

// ExKurtosis returns 4(-96+40π-3π²)/(3π-8)².
func (d Maxwell) ExKurtosis() float64 {
	den := 3*math.Pi - 8
	return 4 * (-96 + 40*math.Pi - 3*math.Pi*math.Pi) / (den * den)
}

// Entropy returns the differential entropy ln(A√(2π)) + γ - 1/2 in
// nats, with γ the Euler-Mascheroni constant.
func (d Maxwell) Entropy() float64 {
	return math.Log(d.A*sqrt2Pi) + eulerGamma - 0.5
}

// NumParameters returns 1.
func (d Maxwell) NumParameters() int {
	return 1
}
