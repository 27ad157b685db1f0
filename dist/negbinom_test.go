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

func TestNegativeBinomial(t *testing.T) {
	d := NegativeBinomial{R: 2.5, P: 0.4}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		0: 0.10119288512538817, 1: 0.15178932768808212, 2: 0.15937879407248642,
		3: 0.14344091466523762, 5: 0.09230422858708043, 8: 0.03593683828160394,
		15: 0.002343873105663825})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		0: 0.10119288512538817, 1: 0.2529822128134703, 2: 0.41236100688595667,
		3: 0.5558019215511942, 5: 0.7664449047370955, 8: 0.9220475822226644,
		15: 0.995625181225039})
	testMoments(t, "NegativeBinomial{2.5, 0.4}", d,
		3.75, 9.375, 1.3063945294843617, 2.506666666666667)
	testFunc(t, fmt.Sprintf("%+v.MGF", d), d.MGF, map[float64]float64{
		0: 1, 0.2: 2.7430145851752004})
	// The MGF diverges at t = -log(1-P) ≈ 0.511.
	if got := d.MGF(0.6); !math.IsInf(got, 1) {
		t.Errorf("MGF(0.6) = %v, want +Inf", got)
	}
	if got := d.Median(); got != 3 {
		t.Errorf("Median() = %v, want 3", got)
	}
	if got := d.Mode(); got != 2 {
		t.Errorf("Mode() = %v, want 2", got)
	}
	if got := (NegativeBinomial{R: 0.7, P: 0.8}).Mode(); got != 0 {
		t.Errorf("{0.7, 0.8}.Mode() = %v, want 0", got)
	}
	testDiscreteCDF(t, "NegativeBinomial{2.5, 0.4}.CDF", d)

	d.Src = rand.NewSource(1)
	checkDist(t, "NegativeBinomial{2.5, 0.4}", d)
	d2 := NegativeBinomial{R: 0.7, P: 0.8, Src: rand.NewSource(2)}
	checkDist(t, "NegativeBinomial{0.7, 0.8}", d2)
}

func TestNewNegativeBinomial(t *testing.T) {
	if _, err := NewNegativeBinomial(2.5, 0.4); err != nil {
		t.Errorf("NewNegativeBinomial(2.5, 0.4) = %v", err)
	}
	bad := []struct{ r, p float64 }{
		{0, 0.4},
		{-2, 0.4},
		{2.5, 0},
		{2.5, 1},
		{2.5, -0.1},
		{2.5, 1.5},
		{math.NaN(), 0.4},
		{2.5, math.NaN()},
	}
	for _, c := range bad {
		if _, err := NewNegativeBinomial(c.r, c.p); !errors.Is(err, ErrParam) {
			t.Errorf("NewNegativeBinomial(%v, %v) = %v, want ErrParam", c.r, c.p, err)
		}
	}
}
