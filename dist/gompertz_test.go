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

func TestGompertz(t *testing.T) {
	d := Gompertz{Eta: 0.5, B: 2}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		0: 1, 0.25: 1.192008100867606, 0.5: 1.151262407298899,
		0.75: 0.7859638066210777, 1: 0.30284684919220317, 1.5: 0.0014404950185375703})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		0: 0, 0.25: 0.27701054019796767, 0.5: 0.5764742289611915,
		0.75: 0.8246277699577693, 1: 0.9590141358872575, 1.5: 0.9999282819760285})
	testMoments(t, "Gompertz{0.5, 2}", d,
		0.4614553162418487, 0.08240695696934325, 0.4342428548030835, -0.49478399539319806)
	if got := d.Median(); !aeq(0.4348708430959719, got) {
		t.Errorf("Median() = %v, want 0.4348708430959719", got)
	}
	// For Eta < 1 the mode is ln(1/Eta)/B.
	if got := d.Mode(); !aeq(0.34657359027997264, got) {
		t.Errorf("Mode() = %v, want ln(2)/2", got)
	}
	// For Eta ≥ 1 the density is decreasing from x = 0.
	if got := (Gompertz{Eta: 2, B: 1}).Mode(); got != 0 {
		t.Errorf("Gompertz{2, 1}.Mode() = %v, want 0", got)
	}

	d.Src = rand.NewSource(1)
	checkDist(t, "Gompertz{0.5, 2}", d)
	d2 := Gompertz{Eta: 3, B: 0.5, Src: rand.NewSource(2)}
	checkDist(t, "Gompertz{3, 0.5}", d2)
}

// TestGompertzUnit pins the Eta = B = 1 case against the elementary
// form CDF(x) = 1 - exp(-(e^x - 1)).
func TestGompertzUnit(t *testing.T) {
	d := Gompertz{Eta: 1, B: 1}
	for _, x := range []float64{0, 0.1, 0.5, 1, 2, 3} {
		want := -math.Expm1(-math.Expm1(x))
		if got := d.CDF(x); !aeq(want, got) {
			t.Errorf("Gompertz{1, 1}.CDF(%v) = %v, want %v", x, got, want)
		}
		want = math.Exp(x) * math.Exp(-math.Expm1(x))
		if got := d.Prob(x); !aeq(want, got) {
			t.Errorf("Gompertz{1, 1}.Prob(%v) = %v, want %v", x, got, want)
		}
	}
	for _, p := range []float64{0.1, 0.5, 0.9, 0.99} {
		want := math.Log1p(-math.Log1p(-p))
		if got := d.Quantile(p); !aeq(want, got) {
			t.Errorf("Gompertz{1, 1}.Quantile(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestNewGompertz(t *testing.T) {
	if _, err := NewGompertz(0.5, 2); err != nil {
		t.Errorf("NewGompertz(0.5, 2) = %v", err)
	}
	for _, c := range [][2]float64{
		{0, 2}, {-1, 2}, {0.5, 0}, {0.5, -3}, {math.NaN(), 2}, {0.5, math.Inf(1)},
	} {
		if _, err := NewGompertz(c[0], c[1]); !errors.Is(err, ErrParam) {
			t.Errorf("NewGompertz(%v, %v) = %v, want ErrParam", c[0], c[1], err)
		}
	}
}
