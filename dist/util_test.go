// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
	"testing"
)

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million). NaNs and like-signed infinities
// compare equal.
func aeq(expect, got float64) bool {
	if math.IsNaN(expect) && math.IsNaN(got) {
		return true
	}
	if expect == got {
		return true
	}
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect
}

// aeqTol returns true if expect and got are within tol of each other
// in absolute terms.
func aeqTol(expect, got, tol float64) bool {
	if math.IsNaN(expect) && math.IsNaN(got) {
		return true
	}
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		if got, want := f(x), vals[x]; !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testDiscreteCDF checks that d's CDF matches the running sum of its
// mass function at the lattice points, between them, and outside the
// support.
func testDiscreteCDF(t *testing.T, name string, d Dist) {
	t.Helper()
	s := d.Support()
	if got := d.CDF(s.Min - 1); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, s.Min-1, got)
	}
	hi := math.Min(s.Max, d.Quantile(0.999))
	sum := 0.0
	for k := s.Min; k <= hi; k += s.Step {
		sum += d.Prob(k)
		if got := d.CDF(k); !aeqTol(sum, got, 1e-10) {
			t.Errorf("%s(%v) = %v, want %v", name, k, got, sum)
		}
		if got := d.CDF(k + s.Step/2); !aeqTol(sum, got, 1e-10) {
			t.Errorf("%s(%v) = %v, want %v", name, k+s.Step/2, got, sum)
		}
	}
}

// testMoments checks d's mean, variance, skewness, and excess
// kurtosis. A NaN argument asserts the moment is undefined.
func testMoments(t *testing.T, name string, d Dist, mean, variance, skew, exKurt float64) {
	t.Helper()
	if got := d.Mean(); !aeq(mean, got) {
		t.Errorf("%s.Mean() = %v, want %v", name, got, mean)
	}
	if got := d.Variance(); !aeq(variance, got) {
		t.Errorf("%s.Variance() = %v, want %v", name, got, variance)
	}
	if got := d.Skewness(); !aeq(skew, got) {
		t.Errorf("%s.Skewness() = %v, want %v", name, got, skew)
	}
	if got := d.ExKurtosis(); !aeq(exKurt, got) {
		t.Errorf("%s.ExKurtosis() = %v, want %v", name, got, exKurt)
	}
}

func panics(f func()) (panicked bool) {
	defer func() { panicked = recover() != nil }()
	f()
	return
}

// checkDist exercises the contract shared by every distribution:
// nonnegative densities, log densities consistent with densities, a
// monotone CDF onto [0, 1] that agrees with Survival and inverts
// through Quantile, a panic on out-of-domain quantiles, moments
// consistent with each other, and seeded draws that land in the
// support and reproduce a finite mean.
func checkDist(t *testing.T, name string, d Dist) {
	t.Helper()
	s := d.Support()
	lo, hi := d.Bounds()

	var xs []float64
	if s.Discrete() {
		for x := s.Min; x <= math.Min(hi, s.Max) && len(xs) < 60; x += s.Step {
			xs = append(xs, x)
		}
	} else {
		const n = 40
		for i := 0; i <= n; i++ {
			xs = append(xs, lo+(hi-lo)*float64(i)/n)
		}
	}

	prevCDF := 0.0
	for i, x := range xs {
		pdf := d.Prob(x)
		if !(pdf >= 0) {
			t.Errorf("%s.Prob(%v) = %v, want >= 0", name, x, pdf)
		}
		lp := d.LogProb(x)
		if pdf > 0 {
			if !aeq(pdf, math.Exp(lp)) {
				t.Errorf("%s.LogProb(%v) = %v, want log(%v)", name, x, lp, pdf)
			}
		} else if lp > -700 {
			t.Errorf("%s.LogProb(%v) = %v, want -Inf", name, x, lp)
		}

		cdf := d.CDF(x)
		if !(cdf >= 0 && cdf <= 1) {
			t.Errorf("%s.CDF(%v) = %v, want in [0, 1]", name, x, cdf)
		}
		if i > 0 && cdf < prevCDF {
			t.Errorf("%s.CDF(%v) = %v, want >= %v", name, x, cdf, prevCDF)
		}
		prevCDF = cdf

		if sv := d.Survival(x); !aeqTol(1-cdf, sv, 1e-12) {
			t.Errorf("%s.Survival(%v) = %v, want %v", name, x, sv, 1-cdf)
		}
	}

	// Out-of-support evaluation.
	if !math.IsInf(s.Min, -1) {
		if got := d.Prob(s.Min - 1); got != 0 {
			t.Errorf("%s.Prob(%v) = %v, want 0", name, s.Min-1, got)
		}
		if got := d.CDF(s.Min - 1); got != 0 {
			t.Errorf("%s.CDF(%v) = %v, want 0", name, s.Min-1, got)
		}
	}
	if !math.IsInf(s.Max, 1) {
		if got := d.Prob(s.Max + 1); got != 0 {
			t.Errorf("%s.Prob(%v) = %v, want 0", name, s.Max+1, got)
		}
		if got := d.CDF(s.Max + 1); got != 1 {
			t.Errorf("%s.CDF(%v) = %v, want 1", name, s.Max+1, got)
		}
	}

	// Quantile endpoints: p = 0 lands on the bottom of the support
	// and p = 1 on the top, infinite when unbounded.
	if got := d.Quantile(0); got != s.Min {
		t.Errorf("%s.Quantile(0) = %v, want %v", name, got, s.Min)
	}
	q1 := d.Quantile(1)
	if !s.Discrete() || math.IsInf(s.Max, 1) {
		if q1 != s.Max {
			t.Errorf("%s.Quantile(1) = %v, want %v", name, q1, s.Max)
		}
	} else if q1 > s.Max || (q1 < s.Max && d.CDF(q1) < 1) {
		// A bounded lattice CDF may round up to 1 before the last
		// point, and the generalized inverse stops there.
		t.Errorf("%s.Quantile(1) = %v, want the first point with CDF 1", name, q1)
	}

	// Quantile inverts the CDF.
	prevQ := math.Inf(-1)
	for _, p := range []float64{0, 0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999, 1} {
		x := d.Quantile(p)
		if x < prevQ {
			t.Errorf("%s.Quantile(%v) = %v, want >= %v", name, p, x, prevQ)
		}
		prevQ = x
		if math.IsInf(x, 1) {
			continue
		}
		cdf := d.CDF(x)
		if cdf < p && !aeqTol(cdf, p, 1e-6) {
			t.Errorf("%s.CDF(Quantile(%v)) = %v, want >= %v", name, p, cdf, p)
		}
		if !s.Discrete() && !aeqTol(cdf, p, 1e-6) {
			t.Errorf("%s.CDF(Quantile(%v)) = %v, want %v", name, p, cdf, p)
		}
	}
	if s.Discrete() {
		// Round trip: each lattice point with mass recovers
		// itself through the generalized inverse.
		top := math.Min(d.Quantile(0.95), s.Min+40*s.Step)
		for k := s.Min; k <= top; k += s.Step {
			if d.Prob(k) == 0 {
				continue
			}
			if got := d.Quantile(d.CDF(k)); got != k {
				t.Errorf("%s.Quantile(CDF(%v)) = %v, want %v", name, k, got, k)
			}
		}
	} else {
		for _, x := range xs[1 : len(xs)-1] {
			p := d.CDF(x)
			if p <= 0 || p >= 1 {
				continue
			}
			got := d.Quantile(p)
			if !aeqTol(x, got, 1e-5*(1+math.Abs(x))) {
				t.Errorf("%s.Quantile(CDF(%v)) = %v", name, x, got)
			}
		}
	}

	// Quantile domain errors.
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		p := p
		if !panics(func() { d.Quantile(p) }) {
			t.Errorf("%s.Quantile(%v) did not panic", name, p)
		}
	}

	// Moment consistency.
	if v := d.Variance(); !math.IsNaN(v) {
		if sd := d.StdDev(); !aeq(math.Sqrt(v), sd) {
			t.Errorf("%s.StdDev() = %v, want sqrt(%v)", name, sd, v)
		}
	}
	med := d.Median()
	if !math.IsInf(med, 0) {
		if cdf := d.CDF(med); cdf < 0.5 && !aeqTol(cdf, 0.5, 1e-9) {
			t.Errorf("%s.CDF(Median()) = %v, want >= 0.5", name, cdf)
		}
		if s.Discrete() && med > s.Min {
			if cdf := d.CDF(med - s.Step); cdf >= 0.5 {
				t.Errorf("%s.CDF(Median()-1) = %v, want < 0.5", name, cdf)
			}
		}
	}
	if m := d.Mode(); !math.IsNaN(m) && s.Discrete() {
		pm := d.Prob(m)
		if pm < d.Prob(m-s.Step) || pm < d.Prob(m+s.Step) {
			t.Errorf("%s.Prob(Mode()) = %v, less than a neighbor", name, pm)
		}
	}

	// Sampling.
	const n = 10000
	draws := Sample(d, n)
	for _, x := range draws {
		if !s.Contains(x) {
			t.Errorf("%s.Rand() = %v, outside support", name, x)
			break
		}
	}
	mean, v := d.Mean(), d.Variance()
	if !math.IsNaN(mean) && !math.IsInf(mean, 0) && !math.IsNaN(v) && !math.IsInf(v, 1) {
		sum := 0.0
		for _, x := range draws {
			sum += x
		}
		got := sum / n
		tol := 10*math.Sqrt(v/n) + 1e-9
		if !aeqTol(mean, got, tol) {
			t.Errorf("%s sample mean = %v, want %v ± %v", name, got, mean, tol)
		}
	}
}
