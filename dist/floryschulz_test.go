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

func TestFlorySchulz(t *testing.T) {
	d := FlorySchulz{A: 0.3}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		1: 0.09, 2: 0.126, 3: 0.1323,
		5: 0.10804499999999997, 8: 0.05929509599999997, 15: 0.009156011483461492})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		1: 0.09000000000000008, 2: 0.21600000000000008, 3: 0.34830000000000017,
		5: 0.5798250000000001, 8: 0.8039967660000001, 15: 0.9738884116953135})
	testMoments(t, "FlorySchulz{0.3}", d,
		5.666666666666667, 15.555555555555555, 1.4367622330384782, 3.0642857142857145)
	if got := d.Median(); got != 5 {
		t.Errorf("Median() = %v, want 5", got)
	}
	if got := d.Mode(); got != 3 {
		t.Errorf("Mode() = %v, want 3", got)
	}
	testFunc(t, fmt.Sprintf("%+v.MGF", d), d.MGF, map[float64]float64{
		-0.5: 0.16485892929229962, 0: 1, 0.3: 40.017138113784135})
	// The MGF blows up at -log(1-A) ≈ 0.3567.
	if got := d.MGF(0.36); !math.IsInf(got, 1) {
		t.Errorf("MGF(0.36) = %v, want +Inf", got)
	}
	// The mode ties its right neighbor exactly when (1-A)/A is an
	// integer; the smaller of the pair is reported.
	if got := (FlorySchulz{A: 0.25}).Mode(); got != 3 {
		t.Errorf("FlorySchulz{0.25}.Mode() = %v, want 3", got)
	}
	testDiscreteCDF(t, "FlorySchulz{0.3}.CDF", d)

	d.Src = rand.NewSource(1)
	checkDist(t, "FlorySchulz{0.3}", d)
	d2 := FlorySchulz{A: 0.85, Src: rand.NewSource(2)}
	checkDist(t, "FlorySchulz{0.85}", d2)
}

func TestNewFlorySchulz(t *testing.T) {
	if _, err := NewFlorySchulz(0.3); err != nil {
		t.Errorf("NewFlorySchulz(0.3) = %v", err)
	}
	for _, a := range []float64{0, 1, -0.2, 1.5, math.NaN()} {
		if _, err := NewFlorySchulz(a); !errors.Is(err, ErrParam) {
			t.Errorf("NewFlorySchulz(%v) = %v, want ErrParam", a, err)
		}
	}
}
