// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestBurr(t *testing.T) {
	d := Burr{C: 2, K: 3, Lambda: 1.5}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		0.2: 0.4970348846919669, 0.5: 0.8747999999999998, 1: 0.6125835930114492,
		1.5: 0.25, 2: 0.08957952, 4: 0.002464377987354921})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		0.2: 0.051491761712829986, 0.5: 0.27100000000000013, 1: 0.6681838871187984,
		1.5: 0.875, 2: 0.953344, 4: 0.9981260459054488})
	testMoments(t, "Burr{2, 3, 1.5}", d,
		0.8835729338221295, 0.34429887061695474, 1.908648680541834, 9.463458388285623)
	if got := d.Median(); !aeq(0.764736792800938, got) {
		t.Errorf("Median() = %v, want 0.764736792800938", got)
	}
	if got := d.Mode(); !aeq(0.5669467095138407, got) {
		t.Errorf("Mode() = %v, want 0.5669467095138407", got)
	}

	// The tail index CK determines which moments exist.
	testMoments(t, "Burr{1, 1.5, 1}", Burr{C: 1, K: 1.5, Lambda: 1},
		2, math.Inf(1), math.NaN(), math.NaN())
	testMoments(t, "Burr{1, 0.8, 1}", Burr{C: 1, K: 0.8, Lambda: 1},
		math.NaN(), math.NaN(), math.NaN(), math.NaN())
	heavy := Burr{C: 2, K: 1.25, Lambda: 1}
	if v := heavy.Variance(); math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		t.Errorf("Burr{2, 1.25, 1}.Variance() = %v, want finite positive", v)
	}
	if got := heavy.Skewness(); !math.IsInf(got, 1) {
		t.Errorf("Burr{2, 1.25, 1}.Skewness() = %v, want +Inf", got)
	}
	if got := heavy.ExKurtosis(); !math.IsInf(got, 1) {
		t.Errorf("Burr{2, 1.25, 1}.ExKurtosis() = %v, want +Inf", got)
	}
	skewOnly := Burr{C: 1, K: 3.5, Lambda: 1}
	if got := skewOnly.Skewness(); math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("Burr{1, 3.5, 1}.Skewness() = %v, want finite", got)
	}
	if got := skewOnly.ExKurtosis(); !math.IsInf(got, 1) {
		t.Errorf("Burr{1, 3.5, 1}.ExKurtosis() = %v, want +Inf", got)
	}

	d.Src = rand.NewSource(1)
	checkDist(t, "Burr{2, 3, 1.5}", d)
	d2 := Burr{C: 0.7, K: 8, Lambda: 2, Src: rand.NewSource(2)}
	checkDist(t, "Burr{0.7, 8, 2}", d2)
}

// TestBurrLomax checks that Burr XII with C = 1 reduces to the Lomax
// distribution with the same tail index and scale.
func TestBurrLomax(t *testing.T) {
	b := Burr{C: 1, K: 2.5, Lambda: 2}
	l := Lomax{Lambda: 2, Alpha: 2.5}
	for _, x := range []float64{0.1, 0.5, 1, 2, 5, 10} {
		if bp, lp := b.Prob(x), l.Prob(x); !aeq(lp, bp) {
			t.Errorf("Burr{1, 2.5, 2}.Prob(%v) = %v, Lomax{2, 2.5}.Prob(%v) = %v", x, bp, x, lp)
		}
		if bc, lc := b.CDF(x), l.CDF(x); !aeq(lc, bc) {
			t.Errorf("Burr{1, 2.5, 2}.CDF(%v) = %v, Lomax{2, 2.5}.CDF(%v) = %v", x, bc, x, lc)
		}
	}
	for _, p := range []float64{0.05, 0.25, 0.5, 0.9, 0.99} {
		if bq, lq := b.Quantile(p), l.Quantile(p); !aeq(lq, bq) {
			t.Errorf("Burr{1, 2.5, 2}.Quantile(%v) = %v, Lomax{2, 2.5}.Quantile(%v) = %v", p, bq, p, lq)
		}
	}
}

func TestNewBurr(t *testing.T) {
	if _, err := NewBurr(2, 3, 1.5); err != nil {
		t.Errorf("NewBurr(2, 3, 1.5) = %v", err)
	}
	for _, c := range [][3]float64{
		{0, 3, 1.5}, {-1, 3, 1.5}, {2, 0, 1.5}, {2, 3, 0},
		{math.NaN(), 3, 1.5}, {2, math.Inf(1), 1.5}, {2, 3, -1},
	} {
		if _, err := NewBurr(c[0], c[1], c[2]); !errors.Is(err, ErrParam) {
			t.Errorf("NewBurr(%v, %v, %v) = %v, want ErrParam", c[0], c[1], c[2], err)
		}
	}
}
