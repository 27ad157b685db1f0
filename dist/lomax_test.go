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

func TestLomax(t *testing.T) {
	d := Lomax{Lambda: 2, Alpha: 2.5}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		0: 1.25, 0.5: 0.5724334022399462, 1: 0.302406141084343,
		2: 0.11048543456039805, 5: 0.015583745884106378, 10: 0.0023625479772214296})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		0: 0, 0.5: 0.4275665977600538, 1: 0.6371126306987884,
		2: 0.8232233047033631, 5: 0.9563655115245021, 10: 0.9886597697093371})
	if got := d.Median(); !aeq(0.6390158215457884, got) {
		t.Errorf("Median() = %v, want 0.6390158215457884", got)
	}
	if got := d.Entropy(); !aeq(1.1768564486857902, got) {
		t.Errorf("Entropy() = %v, want 1.1768564486857902", got)
	}
	if got := d.Mode(); got != 0 {
		t.Errorf("Mode() = %v, want 0", got)
	}

	// The tail index controls which moments exist.
	testMoments(t, "Lomax{2, 2.5}", d, 4.0/3, 8.88888888888889, math.Inf(1), math.Inf(1))
	testMoments(t, "Lomax{2, 4.5}", Lomax{Lambda: 2, Alpha: 4.5},
		0.5714285714285715, 0.5877551020408167, 5.4659439449994816, 146.44444444444426)
	testMoments(t, "Lomax{2, 1.5}", Lomax{Lambda: 2, Alpha: 1.5},
		4, math.Inf(1), math.NaN(), math.NaN())
	testMoments(t, "Lomax{1, 1}", Lomax{Lambda: 1, Alpha: 1},
		math.NaN(), math.NaN(), math.NaN(), math.NaN())

	d.Src = rand.NewSource(1)
	checkDist(t, "Lomax{2, 2.5}", d)
	checkDist(t, "Lomax{2, 4.5}", Lomax{Lambda: 2, Alpha: 4.5, Src: rand.NewSource(2)})
}

func TestNewLomax(t *testing.T) {
	d, err := NewLomax(2, 2.5)
	if err != nil || d.Lambda != 2 || d.Alpha != 2.5 {
		t.Errorf("NewLomax(2, 2.5) = %+v, %v", d, err)
	}
	for _, c := range [][2]float64{{0, 1}, {-1, 1}, {1, 0}, {1, -2}, {math.NaN(), 1}, {1, math.Inf(1)}} {
		if _, err := NewLomax(c[0], c[1]); !errors.Is(err, ErrParam) {
			t.Errorf("NewLomax(%v, %v) = %v, want ErrParam", c[0], c[1], err)
		}
	}
}
