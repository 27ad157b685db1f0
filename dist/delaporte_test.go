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

func TestDelaporte(t *testing.T) {
	d := Delaporte{Alpha: 2, Beta: 1.5, Lambda: 3}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		0: 0.00796593093885823, 1: 0.03345690994320457, 2: 0.07312724601871856,
		3: 0.11155489686777065, 5: 0.13728134879066967, 8: 0.08050157387295712,
		12: 0.020590615466937093})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		0: 0.00796593093885823, 1: 0.0414228408820628, 2: 0.11455008690078136,
		3: 0.226104983768552, 5: 0.49781141715245436, 8: 0.8060505554690022,
		12: 0.9594667908435686})
	testMoments(t, "Delaporte{2, 1.5, 3}", d,
		6, 10.5, 0.9699067711902919, 1.6258503401360545)
	if got := d.Median(); got != 6 {
		t.Errorf("Median() = %v, want 6", got)
	}
	if got := d.Mode(); got != 5 {
		t.Errorf("Mode() = %v, want 5", got)
	}
	testDiscreteCDF(t, "Delaporte{2, 1.5, 3}.CDF", d)

	d.Src = rand.NewSource(1)
	checkDist(t, "Delaporte{2, 1.5, 3}", d)
	d2 := Delaporte{Alpha: 0.8, Beta: 0.5, Lambda: 1, Src: rand.NewSource(2)}
	checkDist(t, "Delaporte{0.8, 0.5, 1}", d2)
}

func TestNewDelaporte(t *testing.T) {
	if _, err := NewDelaporte(2, 1.5, 3); err != nil {
		t.Errorf("NewDelaporte(2, 1.5, 3) = %v", err)
	}
	bad := []struct{ alpha, beta, lambda float64 }{
		{0, 1.5, 3},
		{-2, 1.5, 3},
		{2, 0, 3},
		{2, -1, 3},
		{2, 1.5, 0},
		{2, 1.5, -3},
		{math.NaN(), 1.5, 3},
		{2, math.NaN(), 3},
		{2, 1.5, math.NaN()},
	}
	for _, c := range bad {
		if _, err := NewDelaporte(c.alpha, c.beta, c.lambda); !errors.Is(err, ErrParam) {
			t.Errorf("NewDelaporte(%v, %v, %v) = %v, want ErrParam",
				c.alpha, c.beta, c.lambda, err)
		}
	}
}
