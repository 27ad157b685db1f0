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

func TestBirnbaumSaunders(t *testing.T) {
	d := BirnbaumSaunders{Alpha: 0.5, Beta: 2, Mu: 1}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		1.5: 0.022159242059690037, 2: 0.3113306230654462, 2.5: 0.454929196686396,
		3: 0.3989422804014327, 4: 0.19449944344635825, 6: 0.029194970050796208})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		1.5: 0.0013498980316301035, 2: 0.07864960352514261, 2.5: 0.2818514308253864,
		3: 0.5, 4: 0.7928919108787373, 6: 0.9711102144382013})
	testMoments(t, "BirnbaumSaunders{0.5, 2, 1}", d,
		3.25, 1.3125, 1.454785934906616, 3.442176870748299)
	// The median is exactly Mu + Beta.
	if got := d.Median(); got != 3 {
		t.Errorf("Median() = %v, want 3", got)
	}
	if got := d.CDF(3); got != 0.5 {
		t.Errorf("CDF(Mu+Beta) = %v, want 0.5", got)
	}
	if got := d.Quantile(0.5); !aeq(3, got) {
		t.Errorf("Quantile(0.5) = %v, want 3", got)
	}
	// Quantile(0) is exactly Mu; naively t = -Inf would leave
	// -Inf + Inf in the closed form.
	if got := d.Quantile(0); got != 1 {
		t.Errorf("Quantile(0) = %v, want Mu", got)
	}
	if got := (BirnbaumSaunders{Alpha: 0.5, Beta: 1, Mu: 0}).Quantile(0); got != 0 {
		t.Errorf("BirnbaumSaunders{0.5, 1, 0}.Quantile(0) = %v, want 0", got)
	}

	d.Src = rand.NewSource(1)
	checkDist(t, "BirnbaumSaunders{0.5, 2, 1}", d)
	checkDist(t, "BirnbaumSaunders{2, 1, 0}",
		BirnbaumSaunders{Alpha: 2, Beta: 1, Mu: 0, Src: rand.NewSource(2)})
}

func TestNewBirnbaumSaunders(t *testing.T) {
	if _, err := NewBirnbaumSaunders(0.5, 2, 1); err != nil {
		t.Errorf("NewBirnbaumSaunders(0.5, 2, 1) = %v", err)
	}
	if _, err := NewBirnbaumSaunders(0.5, 2, -3); err != nil {
		t.Errorf("NewBirnbaumSaunders(0.5, 2, -3) = %v", err)
	}
	for _, c := range [][3]float64{
		{0, 2, 1}, {-1, 2, 1}, {0.5, 0, 1}, {0.5, 2, math.Inf(-1)}, {math.NaN(), 2, 1},
	} {
		if _, err := NewBirnbaumSaunders(c[0], c[1], c[2]); !errors.Is(err, ErrParam) {
			t.Errorf("NewBirnbaumSaunders(%v, %v, %v) = %v, want ErrParam", c[0], c[1], c[2], err)
		}
	}
}
